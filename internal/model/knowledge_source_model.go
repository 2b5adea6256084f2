package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// KnowledgeSource is one embedded chunk of the cultivation guidebook.
// Title is the uniqueness key: re-ingesting a document replaces records
// chunk by chunk instead of accumulating duplicates.
type KnowledgeSource struct {
	Id         uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title      string            `gorm:"type:text;not null;uniqueIndex"`
	SourceType string            `gorm:"type:text;not null;index"`
	Content    string            `gorm:"type:text"`
	Embedding  pgvector.Vector   `gorm:"type:vector(1536)"` // text-embedding-3-small dimensions
	Metadata   datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt  time.Time         `gorm:"autoCreateTime"`
}

func (KnowledgeSource) TableName() string {
	return "knowledge_sources"
}
