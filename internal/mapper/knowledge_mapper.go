package mapper

import (
	"grow-coach-be/internal/entity"
	"grow-coach-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) ToEntity(k *model.KnowledgeSource) *entity.KnowledgeSource {
	if k == nil {
		return nil
	}

	return &entity.KnowledgeSource{
		Id:         k.Id,
		Title:      k.Title,
		SourceType: k.SourceType,
		Content:    k.Content,
		Embedding:  k.Embedding.Slice(),
		Metadata:   map[string]interface{}(k.Metadata),
		CreatedAt:  k.CreatedAt,
	}
}

func (m *KnowledgeMapper) ToModel(k *entity.KnowledgeSource) *model.KnowledgeSource {
	if k == nil {
		return nil
	}

	return &model.KnowledgeSource{
		Id:         k.Id,
		Title:      k.Title,
		SourceType: k.SourceType,
		Content:    k.Content,
		Embedding:  pgvector.NewVector(k.Embedding),
		Metadata:   datatypes.JSONMap(k.Metadata),
		CreatedAt:  k.CreatedAt,
	}
}

func (m *KnowledgeMapper) ToEntities(models []*model.KnowledgeSource) []*entity.KnowledgeSource {
	entities := make([]*entity.KnowledgeSource, len(models))
	for i, k := range models {
		entities[i] = m.ToEntity(k)
	}
	return entities
}
