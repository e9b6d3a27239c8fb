package bootstrap

import (
	"log"
	"time"

	"career-companion-be/internal/config"
	"career-companion-be/internal/controller"
	"career-companion-be/internal/pkg/logger"
	"career-companion-be/internal/repository/memory"
	"career-companion-be/internal/service"
	"career-companion-be/pkg/advisor"
	"career-companion-be/pkg/clarify"
	"career-companion-be/pkg/llm"
	"career-companion-be/pkg/llm/factory"
	"career-companion-be/pkg/lookup"
	"career-companion-be/pkg/records"
)

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	WebhookController controller.IWebhookController

	// Exposed for shutdown and tests
	Logger  logger.ILogger
	Lookup  *lookup.Service
	Advisor service.IAdvisorService
}

func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Record stores, one per entity kind. Loading is lazy; a broken source
	// surfaces as a per-request error message instead of a startup failure.
	careers := records.NewStore(records.KindCareer, cfg.Data.CareersPath)
	courses := records.NewStore(records.KindCourse, cfg.Data.CoursesPath)
	pathways := records.NewStore(records.KindPathway, cfg.Data.PathwaysPath)
	lookupSvc := lookup.NewService(careers, courses, pathways)

	// LLM provider is optional: without a key the clarify gateway answers
	// with its fixed instructional message and never calls out.
	var provider llm.Provider
	if cfg.Keys.OpenAI != "" {
		p, err := factory.NewProvider(cfg.Ai.LLMProvider, cfg.Ai.LLMModel, cfg.Ai.BaseURL, cfg.Keys.OpenAI)
		if err != nil {
			log.Fatalf("[FATAL] Failed to initialize LLM provider: %v", err)
		}
		provider = p
		log.Printf("[INFO] Using LLM provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	} else {
		log.Printf("[WARN] OPENAI_API_KEY not set; clarify replies with setup instructions")
	}

	gateway := clarify.NewGateway(
		provider,
		time.Duration(cfg.Ai.ClarifyTimeoutSeconds)*time.Second,
		cfg.Ai.ClarifyRetries,
		sysLogger,
	)

	sessionRepo := memory.NewSessionRepository()
	resolver := advisor.NewResolver(lookupSvc, gateway, sysLogger)
	advisorSvc := service.NewAdvisorService(resolver, sessionRepo, sysLogger)

	return &Container{
		ChatController:    controller.NewChatController(advisorSvc),
		WebhookController: controller.NewWebhookController(advisorSvc, cfg.Webhook.PlainText),
		Logger:            sysLogger,
		Lookup:            lookupSvc,
		Advisor:           advisorSvc,
	}
}
