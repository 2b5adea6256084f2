package entity

import (
	"time"

	"github.com/google/uuid"
)

// Knowledge record categories. Chapter documents are the canonical guidebook;
// the rest come from categorized PDF folders.
const (
	SourceTypeChapter = "chapter"
	SourceTypePdf     = "pdf"

	CategoryChapter    = "chapter"
	CategoryCommercial = "commercial"
	CategoryHome       = "home"
	CategoryGeneral    = "general"
)

type KnowledgeSource struct {
	Id         uuid.UUID
	Title      string
	SourceType string
	Content    string
	Embedding  []float32
	Metadata   map[string]interface{}
	CreatedAt  time.Time
}

// ScoredKnowledgeSource wraps a knowledge record with its cosine similarity
// to a query vector (1.0 = identical direction).
type ScoredKnowledgeSource struct {
	Source     *KnowledgeSource
	Similarity float64
}
