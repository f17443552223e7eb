package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/handlers"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vishalpatil-45/Adventour/config"
	"github.com/vishalpatil-45/Adventour/consumers"
	"github.com/vishalpatil-45/Adventour/controllers"
	"github.com/vishalpatil-45/Adventour/domain"
	"github.com/vishalpatil-45/Adventour/jobs"
	"github.com/vishalpatil-45/Adventour/logging"
	"github.com/vishalpatil-45/Adventour/mailer"
	"github.com/vishalpatil-45/Adventour/middleware"
	"github.com/vishalpatil-45/Adventour/repositories"
	"github.com/vishalpatil-45/Adventour/services"
	"github.com/vishalpatil-45/Adventour/storage"
	"github.com/vishalpatil-45/Adventour/utils"
)

func main() {
	// 1. Configuration and logging
	cfg := config.LoadConfig()
	logging.Setup(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	log.WithFields(log.Fields{
		"port":          cfg.Port,
		"db":            cfg.DBHost + ":" + cfg.DBPort + "/" + cfg.DBName,
		"mail_delivery": cfg.MailDelivery,
	}).Info("Starting Adventour")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. MySQL
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Booking{}, &domain.WishlistItem{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database handle: %v", err)
	}
	log.Info("MySQL connected and migrated")

	healthChecks := map[string]controllers.HealthCheck{"mysql": sqlDB.PingContext}

	// 3. Optional stores
	var tokenRepo repositories.TokenRepository
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()
		tokenRepo = repositories.NewTokenRepository(rdb)
		healthChecks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	var inboxRepo repositories.InboxRepository
	if cfg.MongoURI != "" {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mongoClient.Disconnect(dctx)
		}()
		inboxRepo = repositories.NewInboxRepository(mongoClient.Database(cfg.MongoDatabase))
		healthChecks["mongo"] = func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }
	}

	var avatars storage.AvatarStore
	if cfg.MinioEndpoint != "" {
		avatars, err = storage.NewMinioStore(ctx, storage.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
			PublicURL: cfg.MinioPublicURL,
		})
		if err != nil {
			log.Fatalf("Failed to set up avatar storage: %v", err)
		}
	}

	// 4. Mail delivery
	sender := mailer.NewSMTPSender(mailer.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.EmailUser,
		Password: cfg.EmailPass,
		From:     cfg.MailFrom,
	})

	var notifier mailer.Notifier = mailer.NewDirectNotifier(sender)
	var consumer *consumers.MailConsumer
	if cfg.MailDelivery == config.MailDeliveryQueue {
		publisher, err := mailer.NewQueueNotifier(cfg.RabbitMQURL, cfg.MailQueue)
		if err != nil {
			log.Fatalf("Failed to create mail publisher: %v", err)
		}
		defer publisher.Close()
		notifier = publisher

		consumer, err = consumers.NewMailConsumer(cfg.RabbitMQURL, cfg.MailQueue, sender)
		if err != nil {
			log.Fatalf("Failed to create mail consumer: %v", err)
		}
		defer consumer.Close()
	}

	// 5. Repositories, services, controllers
	catalogRepo := repositories.NewDefaultCatalogRepository()
	cacheRepo := repositories.NewCacheRepository(cfg.MemcachedHost)
	userRepo := repositories.NewUserRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	wishlistRepo := repositories.NewWishlistRepository(db)

	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	catalogService := services.NewCatalogService(catalogRepo, cacheRepo)
	bookingService := services.NewBookingService(bookingRepo, catalogRepo, notifier)
	userService := services.NewUserService(userRepo, tokens, tokenRepo, avatars)
	wishlistService := services.NewWishlistService(wishlistRepo, catalogRepo)
	inboxService := services.NewInboxService(inboxRepo, notifier, cfg.MailFrom)
	exportService := services.NewExportService(bookingService)

	h := controllers.Handlers{
		Packages: controllers.NewPackageController(catalogService),
		Bookings: controllers.NewBookingController(bookingService),
		Users:    controllers.NewUserController(userService, bookingService, exportService),
		Wishlist: controllers.NewWishlistController(wishlistService),
		Contact:  controllers.NewContactController(inboxService),
		Health:   controllers.NewHealthController(healthChecks),
		Static:   controllers.NewStaticController(cfg.StaticDir),
	}

	// 6. Router
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := utils.RegisterValidators(v); err != nil {
			log.Fatalf("Failed to register validators: %v", err)
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.Recovery(), middleware.RequestLogger(), middleware.Metrics())
	controllers.RegisterRoutes(router, h, userService)

	handler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(handlers.CompressHandler(router))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 7. Scheduler
	scheduler := jobs.NewScheduler()
	if err := scheduler.AddBookingCompletion(cfg.CompletionSchedule, bookingService); err != nil {
		log.Fatalf("Failed to schedule jobs: %v", err)
	}

	// 8. Run until a signal arrives or something fails
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("Adventour listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down Adventour...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	g.Go(func() error { return scheduler.Run(gctx) })

	if consumer != nil {
		g.Go(func() error { return consumer.Run(gctx) })
	}

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Adventour stopped with error")
		os.Exit(1)
	}
	log.Info("Adventour shut down complete")
}
