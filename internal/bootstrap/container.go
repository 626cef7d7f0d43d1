package bootstrap

import (
	"context"
	"log"

	"triponic-be/internal/config"
	"triponic-be/internal/controller"
	"triponic-be/internal/pkg/limiter"
	"triponic-be/internal/pkg/logger"
	"triponic-be/internal/pkg/mailer"
	"triponic-be/internal/repository/unitofwork"
	"triponic-be/internal/service"
	"triponic-be/pkg/assistant/intent"
	"triponic-be/pkg/assistant/pipeline"
	"triponic-be/pkg/assistant/planner"
	"triponic-be/pkg/llm/factory"

	pktNats "triponic-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	ClientController    controller.IClientController
	LeadController      controller.ILeadController
	ItineraryController controller.IItineraryController
	InvoiceController   controller.IInvoiceController
	AgencyController    controller.IAgencyController
	AssistantController controller.IAssistantController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Logger, exposed for Sync on shutdown
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM Provider
	llmProvider, err := factory.NewProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)

	var usageLimiter limiter.IUsageLimiter
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v (AI usage cap disabled)", err)
		usageLimiter = limiter.NoopLimiter{}
	} else {
		usageLimiter = limiter.NewRedisUsageLimiter(rdb, int64(cfg.App.AiDailyCap))
	}

	// 5. Assistant Pipeline
	classifier := intent.NewClassifier(llmProvider)
	generator := planner.NewGenerator(llmProvider)

	publisherService := service.NewPublisherService(cfg.App.ConversationLogTopic, pubSub)
	conversationSink := service.NewConversationSink(publisherService, sysLogger)

	assistantPipeline := pipeline.NewPipeline(
		classifier,
		generator,
		llmProvider,
		uowFactory,
		conversationSink,
		sysLogger,
	)

	// 6. Services
	authService := service.NewAuthService(uowFactory, emailService)
	clientService := service.NewClientService(uowFactory)
	leadService := service.NewLeadService(uowFactory, llmProvider, natsPub, sysLogger)
	itineraryService := service.NewItineraryService(uowFactory, generator, natsPub, sysLogger)
	invoiceService := service.NewInvoiceService(uowFactory, emailService, natsPub, sysLogger)
	agencyService := service.NewAgencyService(uowFactory)
	assistantService := service.NewAssistantService(assistantPipeline, uowFactory, usageLimiter)

	consumerService := service.NewConsumerService(pubSub, cfg.App.ConversationLogTopic, uowFactory)

	// 7. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		ClientController:    controller.NewClientController(clientService),
		LeadController:      controller.NewLeadController(leadService),
		ItineraryController: controller.NewItineraryController(itineraryService),
		InvoiceController:   controller.NewInvoiceController(invoiceService),
		AgencyController:    controller.NewAgencyController(agencyService),
		AssistantController: controller.NewAssistantController(assistantService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
