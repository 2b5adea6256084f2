package implementation

import (
	"context"
	"errors"

	"grow-coach-be/internal/entity"
	"grow-coach-be/internal/mapper"
	"grow-coach-be/internal/model"
	"grow-coach-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type KnowledgeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewKnowledgeRepository(db *gorm.DB) contract.KnowledgeRepository {
	return &KnowledgeRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *KnowledgeRepositoryImpl) Upsert(ctx context.Context, source *entity.KnowledgeSource) error {
	m := r.mapper.ToModel(source)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("title = ?", m.Title).Delete(&model.KnowledgeSource{}).Error; err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return err
	}

	*source = *r.mapper.ToEntity(m)
	return nil
}

func (r *KnowledgeRepositoryImpl) FindByTitle(ctx context.Context, title string) (*entity.KnowledgeSource, error) {
	var m model.KnowledgeSource
	err := r.db.WithContext(ctx).Where("title = ?", title).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

// SearchSimilarWithScore uses pgvector's cosine distance operator.
// Similarity is 1 - distance, so results land in [-1, 1].
func (r *KnowledgeRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*entity.ScoredKnowledgeSource, error) {
	if limit <= 0 {
		limit = 3
	}

	type result struct {
		model.KnowledgeSource
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("knowledge_sources").
		Select("knowledge_sources.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*entity.ScoredKnowledgeSource, len(results))
	for i, res := range results {
		scored[i] = &entity.ScoredKnowledgeSource{
			Source:     r.mapper.ToEntity(&res.KnowledgeSource),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}

func (r *KnowledgeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.KnowledgeSource{}).Count(&count).Error
	return count, err
}

func (r *KnowledgeRepositoryImpl) CountBySourceType(ctx context.Context, sourceType string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.KnowledgeSource{}).
		Where("source_type = ?", sourceType).
		Count(&count).Error
	return count, err
}

func (r *KnowledgeRepositoryImpl) DeleteBySourceType(ctx context.Context, sourceType string) error {
	return r.db.WithContext(ctx).
		Where("source_type = ?", sourceType).
		Delete(&model.KnowledgeSource{}).Error
}
