package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"slices"
	"sync"
	"syscall"
	"time"

	"github.com/Ozioma45/MusicHub-sub000/config"
	"github.com/Ozioma45/MusicHub-sub000/internal/consumer"
	"github.com/Ozioma45/MusicHub-sub000/internal/handler"
	"github.com/Ozioma45/MusicHub-sub000/internal/middleware"
	"github.com/Ozioma45/MusicHub-sub000/internal/repository"
	"github.com/Ozioma45/MusicHub-sub000/internal/service"
	"github.com/Ozioma45/MusicHub-sub000/pkg/auth"
	"github.com/Ozioma45/MusicHub-sub000/pkg/cache"
	"github.com/Ozioma45/MusicHub-sub000/pkg/database"
	"github.com/Ozioma45/MusicHub-sub000/pkg/mailer"
	"github.com/Ozioma45/MusicHub-sub000/pkg/rabbitmq"
	"github.com/Ozioma45/MusicHub-sub000/pkg/realtime"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	serveMigrate bool
	serveWorker  bool
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the email worker",
		RunE:  runServe,
	}
	addServeFlags(cmd)
	return cmd
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&serveMigrate, "migrate", false, "run schema migrations before serving")
	cmd.Flags().BoolVar(&serveWorker, "worker", true, "consume the email queue in this process")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := database.NewPostgresDB(cfg.DSN())
	if serveMigrate {
		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		return fmt.Errorf("connect to RabbitMQ: %w", err)
	}
	defer publisher.Close()

	var (
		workerDone  <-chan struct{}
		closeWorker = func() {}
	)
	if serveWorker {
		done, closeFn, err := startEmailWorker(ctx, cfg)
		if err != nil {
			return err
		}
		workerDone, closeWorker = done, sync.OnceFunc(closeFn)
		defer closeWorker()
	}

	redisClient, err := cache.NewRedisClient(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connect to Redis: %w", err)
	}
	defer redisClient.Close()

	verifier, err := auth.NewProviderVerifier(cfg.AuthPublicKey, cfg.AuthSecret, cfg.AuthIssuer)
	if err != nil {
		return fmt.Errorf("auth verifier: %w", err)
	}
	adminTokens := auth.NewAdminTokens(cfg.AdminSecret, cfg.AdminTokenTTL)
	pubnub := realtime.NewPublisher(cfg.PubNubPublishKey, cfg.PubNubSubscribeKey)
	if pubnub == nil {
		log.Println("[Realtime] PubNub keys not set, live updates disabled")
	}

	// Repositories
	tx := repository.NewTxRunner(db)
	userRepo := repository.NewUserRepository(db)
	musicianRepo := repository.NewMusicianRepository(db)
	bookerRepo := repository.NewBookerRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	conversationRepo := repository.NewConversationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	marketingRepo := repository.NewMarketingRepository(db)

	// Services
	dispatcher := service.NewNotificationDispatcher(userRepo, publisher, pubnub, cfg.AppBaseURL)
	userSvc := service.NewUserService(userRepo)
	profileSvc := service.NewProfileService(tx, userRepo, musicianRepo, bookerRepo)
	bookingSvc := service.NewBookingService(tx, bookingRepo, musicianRepo, notificationRepo, dispatcher)
	conversationSvc := service.NewConversationService(conversationRepo, userRepo, pubnub)
	reviewSvc := service.NewReviewService(tx, reviewRepo, musicianRepo, notificationRepo, dispatcher)
	notificationSvc := service.NewNotificationService(notificationRepo)
	announcementSvc := service.NewAnnouncementService(announcementRepo)
	marketingSvc := service.NewMarketingService(marketingRepo, musicianRepo, announcementRepo)
	adminSvc := service.NewAdminService(adminRepo, adminTokens, cache.NewTokenRevocations(redisClient), service.StatsSources{
		Users:     userRepo,
		Musicians: musicianRepo,
		Bookers:   bookerRepo,
		Bookings:  bookingRepo,
		Marketing: marketingRepo,
	})

	e := newServer(cfg, db)

	requireUser := middleware.RequireUser(verifier, userSvc)
	requireAdmin := middleware.RequireAdmin(adminSvc)
	rateLimit := middleware.RateLimit(cache.NewRateLimitStore(redisClient, "ratelimit:", cfg.RateLimitPerMinute, time.Minute))

	api := e.Group("/api/v1")
	handler.NewUserHandler(userSvc).RegisterRoutes(api, requireUser)
	handler.NewMusicianHandler(profileSvc).RegisterRoutes(api, requireUser)
	handler.NewBookerHandler(profileSvc).RegisterRoutes(api, requireUser)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(api, requireUser)
	handler.NewConversationHandler(conversationSvc).RegisterRoutes(api, requireUser)
	handler.NewReviewHandler(reviewSvc).RegisterRoutes(api, requireUser)
	handler.NewNotificationHandler(notificationSvc).RegisterRoutes(api, requireUser)
	handler.NewAdminHandler(adminSvc, announcementSvc).RegisterRoutes(api, requireAdmin, rateLimit)
	handler.NewMarketingHandler(marketingSvc, announcementSvc).RegisterRoutes(api, rateLimit)

	go func() {
		log.Printf("MusiConnect API starting on :%s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[HTTP] server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("[HTTP] shutdown: %v", err)
	}
	// closing the broker connection ends the delivery stream
	closeWorker()
	if workerDone != nil {
		select {
		case <-workerDone:
		case <-shutdownCtx.Done():
			log.Println("[EmailConsumer] did not drain before shutdown deadline")
		}
	}
	return nil
}

// startEmailWorker returns a channel closed once the consumer has drained and
// a func that closes the broker connection, which ends the delivery stream.
func startEmailWorker(ctx context.Context, cfg *config.Config) (<-chan struct{}, func(), error) {
	if cfg.MailerSendAPIKey == "" {
		log.Println("[EmailConsumer] MAILERSEND_API_KEY not set, email worker disabled")
		return nil, func() {}, nil
	}

	mq, err := rabbitmq.NewConsumer(cfg.RabbitURL, rabbitmq.EmailQueueName, rabbitmq.RoutingKeyEmail)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to RabbitMQ: %w", err)
	}
	msgs, err := mq.Consume()
	if err != nil {
		mq.Close()
		return nil, nil, fmt.Errorf("start consuming: %w", err)
	}

	sender := mailer.New(cfg.MailerSendAPIKey, cfg.MailFromName, cfg.MailFromEmail)
	return consumer.NewEmailConsumer(sender).Start(ctx, msgs), mq.Close, nil
}

func newServer(cfg *config.Config, db *gorm.DB) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(echoMw.RequestIDWithConfig(echoMw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echoMw.CORSWithConfig(echoMw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: !slices.Contains(cfg.CORSOrigins, "*"),
	}))
	e.Use(middleware.Metrics())

	e.GET("/health", func(c echo.Context) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded", "service": "musiconnect"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "musiconnect"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
