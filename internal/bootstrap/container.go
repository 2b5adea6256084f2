package bootstrap

import (
	"log"

	"grow-coach-be/internal/config"
	"grow-coach-be/internal/controller"
	"grow-coach-be/internal/pkg/logger"
	"grow-coach-be/internal/pkg/mailer"
	"grow-coach-be/internal/repository/implementation"
	"grow-coach-be/internal/repository/memory"
	"grow-coach-be/internal/service"
	"grow-coach-be/pkg/embedding"
	"grow-coach-be/pkg/llm/factory"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController      controller.IChatController
	CalendarController  controller.ICalendarController
	KnowledgeController controller.IKnowledgeController
	BillingController   controller.IBillingController

	// Exposed for cmd/ingest and graceful shutdown
	KnowledgeIngestService service.IKnowledgeIngestService
	Logger                 logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// Repositories
	knowledgeRepo := implementation.NewKnowledgeRepository(db)
	profileRepo := implementation.NewProfileRepository(db)
	calendarRepo := implementation.NewCalendarRepository(db)
	demoTokens := memory.NewDemoTokenRepository(cfg.App.DemoTokenTTL)

	// AI providers
	embeddingProvider := newEmbeddingProvider(cfg, sysLogger)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.Anthropic,
	)
	if err != nil {
		log.Fatalf("LLM provider init failed: %v", err)
	}

	// Services
	knowledgeService := service.NewKnowledgeService(knowledgeRepo, embeddingProvider, sysLogger, cfg.Knowledge.MatchCount)
	ingestService := service.NewKnowledgeIngestService(
		knowledgeRepo,
		embeddingProvider,
		sysLogger,
		cfg.Knowledge.ChunkSize,
		cfg.Knowledge.Overlap,
		cfg.Knowledge.EmbedDelay,
	)
	chatService := service.NewChatService(knowledgeService, llmProvider, sysLogger, cfg.Knowledge.MatchCount)
	calendarService := service.NewCalendarService(calendarRepo, profileRepo, llmProvider, emailService, sysLogger, cfg.Ai.CalendarModel)
	billingService := service.NewBillingService(
		profileRepo,
		demoTokens,
		sysLogger,
		cfg.Keys.MidtransServer,
		cfg.Keys.MidtransProduction,
		cfg.App.ClientURL+"/app?payment=success",
	)

	return &Container{
		ChatController:         controller.NewChatController(chatService, billingService, sysLogger),
		CalendarController:     controller.NewCalendarController(calendarService),
		KnowledgeController:    controller.NewKnowledgeController(knowledgeService),
		BillingController:      controller.NewBillingController(billingService),
		KnowledgeIngestService: ingestService,
		Logger:                 sysLogger,
	}
}

// newEmbeddingProvider selects the configured embedding backend. A missing
// credential degrades to the disabled provider so chat still answers, just
// without knowledge retrieval.
func newEmbeddingProvider(cfg *config.Config, sysLogger logger.ILogger) embedding.EmbeddingProvider {
	switch cfg.Ai.EmbeddingProvider {
	case "ollama":
		return embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	case "openai":
		if cfg.Keys.OpenAI != "" {
			return embedding.NewOpenAIProvider(cfg.Keys.OpenAI)
		}
		sysLogger.Warn("bootstrap", "OPENAI_API_KEY not set, embeddings disabled", nil)
		return embedding.NewDisabledProvider()
	default:
		sysLogger.Warn("bootstrap", "Unknown embedding provider, embeddings disabled", map[string]interface{}{
			"provider": cfg.Ai.EmbeddingProvider,
		})
		return embedding.NewDisabledProvider()
	}
}
