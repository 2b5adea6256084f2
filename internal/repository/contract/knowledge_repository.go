package contract

import (
	"context"

	"grow-coach-be/internal/entity"
)

type KnowledgeRepository interface {
	// Upsert deletes any record with the same title, then inserts. The two
	// statements run inside one transaction so re-ingestion is idempotent.
	Upsert(ctx context.Context, source *entity.KnowledgeSource) error
	FindByTitle(ctx context.Context, title string) (*entity.KnowledgeSource, error)
	// SearchSimilarWithScore returns the limit nearest records by cosine
	// similarity to the query embedding, descending.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*entity.ScoredKnowledgeSource, error)
	Count(ctx context.Context) (int64, error)
	CountBySourceType(ctx context.Context, sourceType string) (int64, error)
	DeleteBySourceType(ctx context.Context, sourceType string) error
}
