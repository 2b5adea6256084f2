package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"grow-coach-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredChunk(title string, similarity float64) *entity.ScoredKnowledgeSource {
	return &entity.ScoredKnowledgeSource{
		Source: &entity.KnowledgeSource{
			Id:         uuid.New(),
			Title:      title,
			SourceType: entity.SourceTypeChapter,
			Content:    "content of " + title,
			CreatedAt:  time.Now(),
		},
		Similarity: similarity,
	}
}

func TestRetrieveMapsScoredResults(t *testing.T) {
	repo := newFakeKnowledgeRepo()
	repo.searchRes = []*entity.ScoredKnowledgeSource{
		scoredChunk("Veg Week 3 (Part 1/4)", 0.91),
		scoredChunk("Flower Transition (Part 2/6)", 0.84),
	}
	embedder := &fakeEmbedder{vector: []float32{0.1, 0.2, 0.3}}

	svc := NewKnowledgeService(repo, embedder, testLogger, 3)
	chunks := svc.Retrieve(context.Background(), "when do I flip to flower?", 0)

	require.Len(t, chunks, 2)
	assert.Equal(t, "Veg Week 3 (Part 1/4)", chunks[0].Title)
	assert.Equal(t, 0.91, chunks[0].Similarity)
	assert.Equal(t, "content of Flower Transition (Part 2/6)", chunks[1].Content)
}

func TestRetrieveDegradesOnEmbeddingError(t *testing.T) {
	repo := newFakeKnowledgeRepo()
	repo.searchRes = []*entity.ScoredKnowledgeSource{scoredChunk("x", 0.9)}
	embedder := &fakeEmbedder{err: fmt.Errorf("api down")}

	svc := NewKnowledgeService(repo, embedder, testLogger, 3)
	chunks := svc.Retrieve(context.Background(), "anything", 3)

	assert.Empty(t, chunks)
}

func TestRetrieveDegradesOnEmptyVector(t *testing.T) {
	// Disabled embedding provider returns a zero-length vector.
	repo := newFakeKnowledgeRepo()
	repo.searchRes = []*entity.ScoredKnowledgeSource{scoredChunk("x", 0.9)}
	embedder := &fakeEmbedder{vector: nil}

	svc := NewKnowledgeService(repo, embedder, testLogger, 3)
	chunks := svc.Retrieve(context.Background(), "anything", 3)

	assert.Empty(t, chunks)
}

func TestRetrieveDegradesOnStoreError(t *testing.T) {
	repo := newFakeKnowledgeRepo()
	repo.searchErr = fmt.Errorf("connection refused")
	embedder := &fakeEmbedder{vector: []float32{0.5}}

	svc := NewKnowledgeService(repo, embedder, testLogger, 3)
	chunks := svc.Retrieve(context.Background(), "anything", 3)

	assert.Empty(t, chunks)
}

func TestRetrieveUsesDefaultMatchCount(t *testing.T) {
	repo := newFakeKnowledgeRepo()
	repo.searchRes = []*entity.ScoredKnowledgeSource{
		scoredChunk("a", 0.9),
		scoredChunk("b", 0.8),
		scoredChunk("c", 0.7),
	}
	embedder := &fakeEmbedder{vector: []float32{0.5}}

	svc := NewKnowledgeService(repo, embedder, testLogger, 2)
	chunks := svc.Retrieve(context.Background(), "q", 0)

	assert.Len(t, chunks, 2)
}

func TestStatsCountsBySourceType(t *testing.T) {
	repo := newFakeKnowledgeRepo()
	require.NoError(t, repo.Upsert(context.Background(), &entity.KnowledgeSource{
		Title: "ch1", SourceType: entity.SourceTypeChapter,
	}))
	require.NoError(t, repo.Upsert(context.Background(), &entity.KnowledgeSource{
		Title: "ch2", SourceType: entity.SourceTypeChapter,
	}))
	require.NoError(t, repo.Upsert(context.Background(), &entity.KnowledgeSource{
		Title: "pdf1", SourceType: entity.SourceTypePdf,
	}))

	svc := NewKnowledgeService(repo, &fakeEmbedder{}, testLogger, 3)
	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalRecords)
	assert.Equal(t, int64(2), stats.ChapterRecords)
}
