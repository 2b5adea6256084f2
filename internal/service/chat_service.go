package service

import (
	"context"
	"strings"

	"grow-coach-be/internal/constant"
	"grow-coach-be/internal/dto"
	"grow-coach-be/internal/pkg/logger"
	"grow-coach-be/pkg/llm"
	"grow-coach-be/pkg/rag/prompt"
)

type IChatService interface {
	// ChatStream runs one coaching turn, invoking onDelta per text token.
	ChatStream(ctx context.Context, req *dto.ChatRequest, onDelta llm.StreamFunc) error
}

type chatService struct {
	knowledgeService IKnowledgeService
	llmProvider      llm.LLMProvider
	logger           logger.ILogger
	matchCount       int
}

func NewChatService(
	knowledgeService IKnowledgeService,
	llmProvider llm.LLMProvider,
	sysLogger logger.ILogger,
	matchCount int,
) IChatService {
	return &chatService{
		knowledgeService: knowledgeService,
		llmProvider:      llmProvider,
		logger:           sysLogger,
		matchCount:       matchCount,
	}
}

func (s *chatService) ChatStream(ctx context.Context, req *dto.ChatRequest, onDelta llm.StreamFunc) error {
	system := s.buildSystemPrompt(ctx, req)

	history := make([]llm.Message, 0, len(req.Messages)+1)
	history = append(history, llm.Message{Role: "system", Content: system})
	for _, m := range req.Messages {
		history = append(history, llm.Message{Role: m.Role, Content: m.Content})
	}

	return s.llmProvider.ChatStream(ctx, history, onDelta)
}

// buildSystemPrompt assembles the coach persona plus retrieved knowledge and
// the user's grow context. Retrieval keys off the latest user message.
func (s *chatService) buildSystemPrompt(ctx context.Context, req *dto.ChatRequest) string {
	var sb strings.Builder
	sb.WriteString(constant.CoachSystemPrompt)

	query := latestUserMessage(req.Messages)
	if query != "" {
		chunks := s.knowledgeService.Retrieve(ctx, query, s.matchCount)
		sb.WriteString(prompt.FormatKnowledgeContext(chunks))
		if len(chunks) > 0 {
			s.logger.Debug("chat", "Injected knowledge context", map[string]interface{}{
				"chunks": len(chunks),
			})
		}
	}

	if gc := req.GrowContext; gc != nil {
		sb.WriteString(prompt.FormatGrowContext(gc.Stage, gc.Week, gc.StrainType))
	}

	return sb.String()
}

func latestUserMessage(messages []dto.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return messages[i].Content
		}
	}
	return ""
}
