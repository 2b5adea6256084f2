package service

import (
	"context"

	"grow-coach-be/internal/dto"
	"grow-coach-be/internal/entity"
	"grow-coach-be/internal/pkg/logger"
	"grow-coach-be/internal/repository/contract"
	"grow-coach-be/pkg/embedding"
	"grow-coach-be/pkg/rag/prompt"
)

type IKnowledgeService interface {
	// Retrieve returns the matchCount most similar knowledge chunks for the
	// query. It degrades gracefully: embedding or store failures yield an
	// empty slice, never an error, so chat keeps working without context.
	Retrieve(ctx context.Context, query string, matchCount int) []prompt.RetrievedChunk
	Search(ctx context.Context, req *dto.SearchKnowledgeRequest) ([]*dto.KnowledgeChunkResponse, error)
	Stats(ctx context.Context) (*dto.KnowledgeStatsResponse, error)
}

type knowledgeService struct {
	knowledgeRepo     contract.KnowledgeRepository
	embeddingProvider embedding.EmbeddingProvider
	logger            logger.ILogger
	defaultMatchCount int
}

func NewKnowledgeService(
	knowledgeRepo contract.KnowledgeRepository,
	embeddingProvider embedding.EmbeddingProvider,
	sysLogger logger.ILogger,
	defaultMatchCount int,
) IKnowledgeService {
	if defaultMatchCount <= 0 {
		defaultMatchCount = 3
	}
	return &knowledgeService{
		knowledgeRepo:     knowledgeRepo,
		embeddingProvider: embeddingProvider,
		logger:            sysLogger,
		defaultMatchCount: defaultMatchCount,
	}
}

func (s *knowledgeService) Retrieve(ctx context.Context, query string, matchCount int) []prompt.RetrievedChunk {
	if matchCount <= 0 {
		matchCount = s.defaultMatchCount
	}

	embeddingRes, err := s.embeddingProvider.Generate(query, embedding.TaskRetrievalQuery)
	if err != nil {
		s.logger.Warn("knowledge", "Query embedding failed, skipping retrieval", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	vector := embeddingRes.Embedding.Values
	if len(vector) == 0 {
		// Embeddings disabled; answer without knowledge context.
		return nil
	}

	scored, err := s.knowledgeRepo.SearchSimilarWithScore(ctx, vector, matchCount)
	if err != nil {
		s.logger.Warn("knowledge", "Similarity search failed, skipping retrieval", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	chunks := make([]prompt.RetrievedChunk, 0, len(scored))
	for _, sc := range scored {
		chunks = append(chunks, prompt.RetrievedChunk{
			Id:         sc.Source.Id.String(),
			Title:      sc.Source.Title,
			Content:    sc.Source.Content,
			Similarity: sc.Similarity,
		})
	}
	return chunks
}

func (s *knowledgeService) Search(ctx context.Context, req *dto.SearchKnowledgeRequest) ([]*dto.KnowledgeChunkResponse, error) {
	chunks := s.Retrieve(ctx, req.Query, req.MatchCount)

	res := make([]*dto.KnowledgeChunkResponse, 0, len(chunks))
	for _, c := range chunks {
		res = append(res, &dto.KnowledgeChunkResponse{
			Id:         c.Id,
			Title:      c.Title,
			Content:    c.Content,
			Similarity: c.Similarity,
		})
	}
	return res, nil
}

func (s *knowledgeService) Stats(ctx context.Context) (*dto.KnowledgeStatsResponse, error) {
	total, err := s.knowledgeRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	chapters, err := s.knowledgeRepo.CountBySourceType(ctx, entity.SourceTypeChapter)
	if err != nil {
		return nil, err
	}
	return &dto.KnowledgeStatsResponse{
		TotalRecords:   total,
		ChapterRecords: chapters,
	}, nil
}
