package bootstrap

import (
	"context"
	"log"

	"faq-chat-be/internal/config"
	"faq-chat-be/internal/controller"
	"faq-chat-be/internal/handler"
	"faq-chat-be/internal/pkg/logger"
	"faq-chat-be/internal/repository/distributed"
	"faq-chat-be/internal/repository/memory"
	"faq-chat-be/internal/repository/unitofwork"
	"faq-chat-be/internal/service"
	"faq-chat-be/internal/websocket"
	"faq-chat-be/pkg/faq"

	pktNats "faq-chat-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController  controller.IChatController
	AdminController controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService  service.IConsumerService
	AnalyticsService service.IAnalyticsService
	Provider         *faq.Provider

	// WebSockets
	WebSocketHub *websocket.Hub

	closers []func() error
}

// NewContainer wires every dependency. db may be nil when the knowledge base
// is served from a file or URL; admin login is unavailable in that case.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	var uowFactory unitofwork.RepositoryFactory
	if db != nil {
		uowFactory = unitofwork.NewRepositoryFactory(db)
	}
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Knowledge Base
	source := service.NewKnowledgeSource(cfg.KnowledgeBase.Source, uowFactory, cfg.KnowledgeBase.LoadTimeout)
	provider := faq.NewProvider(source, sysLogger)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.KnowledgeBase.LoadTimeout)
	provider.Start(loadCtx)
	go func() {
		<-provider.Ready()
		cancelLoad()
	}()
	log.Printf("[INFO] Loading knowledge base from %s", provider.SourceName())

	// In-Memory Session Cache
	localSessions := memory.NewSessionRepository(cfg.Session.TTL, cfg.Session.CleanupPeriod)
	localSessions.OnEvicted(func(id string) {
		sysLogger.Debug("CHAT", "Session evicted from local cache", map[string]interface{}{"session_id": id})
	})

	// 4. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	var subscriber service.EventSubscriber
	if natsSub != nil {
		subscriber = natsSub
	}
	analyticsService := service.NewAnalyticsService(subscriber, sysLogger)

	// Without a bus the analytics service records turns directly.
	var turnPublisher service.ITurnPublisher = analyticsService
	if natsPub != nil && natsSub != nil {
		turnPublisher = service.NewNatsTurnPublisher(natsPub, sysLogger)
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
	redisUp := true
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		redisUp = false
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// Session Storage
	var sessionRepo service.SessionStore = localSessions
	if cfg.Session.Store == "redis" {
		if redisUp {
			sessionRepo = distributed.NewSessionRepository(rdb, localSessions, cfg.Session.TTL, provider.Current)
		} else {
			log.Printf("[WARN] Redis unavailable, sessions stay local to this instance")
		}
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	var broker websocket.Broker
	if redisUp {
		broker = websocket.NewRedisBroker(rdb)
	}
	wsHub := websocket.NewHub(broker, wsLogger)
	go wsHub.Run()

	// 5. Services
	publisherService := service.NewPublisherService(cfg.KnowledgeBase.ReloadTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.KnowledgeBase.ReloadTopic,
		provider,
		cfg.KnowledgeBase.LoadTimeout,
		sysLogger,
	)

	chatService := service.NewChatService(
		provider,
		sessionRepo,
		turnPublisher,
		cfg.Session.WaitTimeout,
		sysLogger,
	)
	knowledgeBaseService := service.NewKnowledgeBaseService(provider, publisherService, sessionRepo)
	adminAuthService := service.NewAdminAuthService(uowFactory, cfg.Auth.TokenTTL, sysLogger)
	logService := service.NewLogService(sysLogger)

	// FAQ edits only reach the matcher when it reads from postgres.
	var faqReloader service.ReloadRequester
	if cfg.KnowledgeBase.Source == service.PostgresSource {
		faqReloader = knowledgeBaseService
	}
	faqEntryService := service.NewFaqEntryService(uowFactory, faqReloader, sysLogger)

	chatWsHandler := handler.NewChatWsHandler(chatService, wsHub, wsLogger)

	closers := []func() error{pubSub.Close, rdb.Close, sysLogger.Sync}
	if natsPub != nil {
		closers = append(closers, func() error { natsPub.Close(); return nil })
	}
	if natsSub != nil {
		closers = append(closers, func() error { natsSub.Close(); return nil })
	}

	// 6. Controllers
	return &Container{
		ChatController: controller.NewChatController(chatService, chatWsHandler),
		AdminController: controller.NewAdminController(
			adminAuthService,
			knowledgeBaseService,
			analyticsService,
			logService,
			faqEntryService,
		),

		ConsumerService:  consumerService,
		AnalyticsService: analyticsService,
		Provider:         provider,
		WebSocketHub:     wsHub,

		closers: closers,
	}
}

// Close releases the bus, redis and NATS connections.
func (c *Container) Close() {
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			log.Printf("[WARN] Shutdown: %v", err)
		}
	}
}
