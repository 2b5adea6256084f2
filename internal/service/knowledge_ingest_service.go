package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"grow-coach-be/internal/dto"
	"grow-coach-be/internal/entity"
	"grow-coach-be/internal/pkg/logger"
	"grow-coach-be/internal/repository/contract"
	"grow-coach-be/pkg/embedding"
	"grow-coach-be/pkg/knowledge/chunker"
	"grow-coach-be/pkg/knowledge/extract"

	"github.com/google/uuid"
)

const (
	chaptersDirName = "chapters"
	pdfsDirName     = "pdfs"
)

type IKnowledgeIngestService interface {
	// Ingest walks rootDir, chunks and embeds every source document, and
	// upserts the knowledge records. Best-effort per chunk: individual
	// failures are logged and counted, never aborting the run.
	Ingest(ctx context.Context, rootDir string) (*dto.IngestSummary, error)
}

type knowledgeIngestService struct {
	knowledgeRepo     contract.KnowledgeRepository
	embeddingProvider embedding.EmbeddingProvider
	logger            logger.ILogger
	chunkSize         int
	overlap           int
	embedDelay        time.Duration
}

func NewKnowledgeIngestService(
	knowledgeRepo contract.KnowledgeRepository,
	embeddingProvider embedding.EmbeddingProvider,
	sysLogger logger.ILogger,
	chunkSize, overlap int,
	embedDelay time.Duration,
) IKnowledgeIngestService {
	if chunkSize <= 0 {
		chunkSize = chunker.DefaultChunkSize
	}
	if overlap < 0 {
		overlap = chunker.DefaultOverlap
	}
	return &knowledgeIngestService{
		knowledgeRepo:     knowledgeRepo,
		embeddingProvider: embeddingProvider,
		logger:            sysLogger,
		chunkSize:         chunkSize,
		overlap:           overlap,
		embedDelay:        embedDelay,
	}
}

// sourceDocument pairs an extracted document with its resolved category and
// source type, ready for chunking.
type sourceDocument struct {
	doc        *extract.Document
	sourceType string
	category   string
}

func (s *knowledgeIngestService) Ingest(ctx context.Context, rootDir string) (*dto.IngestSummary, error) {
	docs, err := s.discover(rootDir)
	if err != nil {
		return nil, err
	}

	summary := &dto.IngestSummary{}
	for _, src := range docs {
		s.ingestDocument(ctx, src, summary)
	}

	s.logger.Info("ingest", "Ingestion run complete", map[string]interface{}{
		"documents": len(docs),
		"total":     summary.TotalChunks,
		"succeeded": summary.SucceededChunks,
	})
	return summary, nil
}

// discover collects the canonical chapter markdown files plus categorized
// PDFs. Unreadable documents are logged and skipped so one bad file cannot
// sink the run.
func (s *knowledgeIngestService) discover(rootDir string) ([]*sourceDocument, error) {
	if _, err := os.Stat(rootDir); err != nil {
		return nil, fmt.Errorf("knowledge root %s: %w", rootDir, err)
	}

	var docs []*sourceDocument

	chaptersDir := filepath.Join(rootDir, chaptersDirName)
	if entries, err := os.ReadDir(chaptersDir); err == nil {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)

		for _, name := range names {
			doc, err := extract.Markdown(filepath.Join(chaptersDir, name))
			if err != nil {
				s.logger.Error("ingest", "Failed to read chapter", map[string]interface{}{
					"file":  name,
					"error": err.Error(),
				})
				continue
			}
			docs = append(docs, &sourceDocument{
				doc:        doc,
				sourceType: entity.SourceTypeChapter,
				category:   entity.CategoryChapter,
			})
		}
	}

	pdfsDir := filepath.Join(rootDir, pdfsDirName)
	if _, err := os.Stat(pdfsDir); err == nil {
		walkErr := filepath.WalkDir(pdfsDir, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".pdf") {
				return nil
			}

			doc, err := extract.PDF(path)
			if err != nil {
				s.logger.Error("ingest", "Failed to extract PDF", map[string]interface{}{
					"file":  path,
					"error": err.Error(),
				})
				return nil
			}

			docs = append(docs, &sourceDocument{
				doc:        doc,
				sourceType: entity.SourceTypePdf,
				category:   categoryForPath(pdfsDir, path),
			})
			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}

	return docs, nil
}

// categoryForPath maps a PDF's subdirectory to its category: a directory
// name containing "commercial" or "home" tags the category, loose files
// directly under the pdfs root are "general".
func categoryForPath(pdfsDir, path string) string {
	rel, err := filepath.Rel(pdfsDir, path)
	if err != nil {
		return entity.CategoryGeneral
	}
	dir := filepath.Dir(rel)
	if dir == "." {
		return entity.CategoryGeneral
	}

	lower := strings.ToLower(dir)
	switch {
	case strings.Contains(lower, "commercial"):
		return entity.CategoryCommercial
	case strings.Contains(lower, "home"):
		return entity.CategoryHome
	default:
		return entity.CategoryGeneral
	}
}

func (s *knowledgeIngestService) ingestDocument(ctx context.Context, src *sourceDocument, summary *dto.IngestSummary) {
	chunks := chunker.Split(src.doc.Content, s.chunkSize, s.overlap)
	if len(chunks) == 0 {
		s.logger.Warn("ingest", "Document produced no chunks", map[string]interface{}{
			"file": src.doc.File,
		})
		return
	}

	s.logger.Info("ingest", "Ingesting document", map[string]interface{}{
		"title":    src.doc.Title,
		"category": src.category,
		"chunks":   len(chunks),
	})

	for i, chunk := range chunks {
		summary.TotalChunks++
		chunkTitle := fmt.Sprintf("%s (Part %d/%d)", src.doc.Title, i+1, len(chunks))

		embeddingRes, err := s.embeddingProvider.Generate(chunk, embedding.TaskRetrievalDocument)
		if err != nil {
			s.logger.Error("ingest", "Embedding failed for chunk", map[string]interface{}{
				"title": chunkTitle,
				"error": err.Error(),
			})
			s.pause(ctx)
			continue
		}

		metadata := map[string]interface{}{
			"source_category": src.category,
			"chunk_index":     i,
			"total_chunks":    len(chunks),
			"file":            src.doc.File,
		}
		if src.sourceType == entity.SourceTypeChapter {
			metadata["chapter_number"] = src.doc.ChapterNumber
		}

		record := &entity.KnowledgeSource{
			Id:         uuid.New(),
			Title:      chunkTitle,
			SourceType: src.sourceType,
			Content:    chunk,
			Embedding:  embeddingRes.Embedding.Values,
			Metadata:   metadata,
			CreatedAt:  time.Now(),
		}

		if err := s.knowledgeRepo.Upsert(ctx, record); err != nil {
			s.logger.Error("ingest", "Upsert failed for chunk", map[string]interface{}{
				"title": chunkTitle,
				"error": err.Error(),
			})
		} else {
			summary.SucceededChunks++
		}

		// Fixed inter-call delay keeps the serial loop under the embedding
		// service's rate limit.
		s.pause(ctx)
	}
}

func (s *knowledgeIngestService) pause(ctx context.Context) {
	if s.embedDelay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(s.embedDelay):
	}
}
