package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"giftcard-register-be/internal/config"
	"giftcard-register-be/internal/controller"
	"giftcard-register-be/internal/pkg/logger"
	"giftcard-register-be/internal/pkg/mailer"
	"giftcard-register-be/internal/repository/unitofwork"
	"giftcard-register-be/internal/service"
	"giftcard-register-be/pkg/audit"
	"giftcard-register-be/pkg/giftcard/lifecycle"
	"giftcard-register-be/pkg/giftcard/numbering"
	pktNats "giftcard-register-be/pkg/nats"
)

// publicViewTTL bounds how stale the unauthenticated card lookup may be.
const publicViewTTL = 30 * time.Second

type Container struct {
	// Controllers
	GiftCardController controller.IGiftCardController
	ActivityController controller.IActivityController
	AuthController     controller.IAuthController
	PublicController   controller.IPublicController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

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
		cfg.SMTP.Email,
		cfg.App.StudioName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
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
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 3. Domain Components
	recorder := audit.NewRecorder(uowFactory, natsPub, sysLogger)
	generator := numbering.New()
	engine := lifecycle.New(nil)
	publicCache := gocache.New(publicViewTTL, time.Minute)

	publisherService := service.NewEventPublisherService(cfg.Topics.GiftCardDelivered, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Topics.GiftCardDelivered,
		uowFactory,
		emailService,
	)

	giftCardService := service.NewGiftCardService(
		uowFactory,
		generator,
		engine,
		recorder,
		publisherService,
		publicCache,
		sysLogger,
	)
	activityService := service.NewActivityService(uowFactory)
	authService := service.NewAuthService(uowFactory, recorder, sysLogger)

	// 4. Controllers
	return &Container{
		GiftCardController: controller.NewGiftCardController(giftCardService),
		ActivityController: controller.NewActivityController(activityService),
		AuthController:     controller.NewAuthController(authService),
		PublicController:   controller.NewPublicController(giftCardService, rdb),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
