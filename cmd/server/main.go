package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"marhaba_app_echo/internal/config"
	"marhaba_app_echo/internal/handlers"
	"marhaba_app_echo/internal/i18n"
	"marhaba_app_echo/internal/jwtutil"
	"marhaba_app_echo/internal/logger"
	"marhaba_app_echo/internal/metrics"
	authMiddleware "marhaba_app_echo/internal/middleware"
	"marhaba_app_echo/internal/models"
	"marhaba_app_echo/internal/services"
	"marhaba_app_echo/internal/store"
	"marhaba_app_echo/internal/tasks"
)

func main() {
	cfg, err := config.Load("marhaba-api")
	if err != nil {
		// structured logger is not up yet
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Env,
		ServiceName: cfg.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting marhaba-api", cfg.LogFields()...)

	metrics.Register(cfg.MetricsPrefix)

	defaultLang := models.ParseLanguage(cfg.DefaultLang, models.LanguageArabic)
	tr, err := i18n.New(defaultLang)
	if err != nil {
		log.Fatal("Failed to load translations", zap.Error(err))
	}

	// Search cache: Redis when configured, in-process otherwise
	var cache services.Cache = services.NewMemoryCache()
	if cfg.Cache.RedisURL != "" {
		redisCache, err := services.NewRedisCache(cfg.Cache.RedisURL)
		if err != nil {
			log.Warn("Redis unavailable, using in-memory cache", zap.Error(err))
		} else {
			defer redisCache.Close()
			cache = redisCache
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := store.NewSeeded()
	jwtUtil := jwtutil.New(jwtutil.Config{
		SigningKey:      cfg.JWT.SigningKey,
		ExpirationHours: cfg.JWT.ExpirationHours,
	})

	// Background tasks
	scheduler := tasks.NewScheduler(tasks.GlobalRegistry, cfg.Scheduler.Tick)
	dispatcher := tasks.NewDispatcher(scheduler)

	authService := services.NewAuthService(db)
	offerService := services.NewOfferService(db, cache, cfg.Cache.TTL)
	paymentService := services.NewPaymentService(db, services.NewSimulatedGateway(cfg.Payment.Delay))
	bookingService := services.NewBookingService(db, paymentService, dispatcher)
	dashboardService := services.NewDashboardService(db, dispatcher)
	notificationService := services.NewNotificationService(cfg.Notification)

	tasks.DefineTasks(tasks.GlobalRegistry, tasks.Deps{
		Store:      db,
		Dashboard:  dashboardService,
		Sender:     notificationService,
		Translator: tr,
	})

	if cfg.Scheduler.DigestRRule != "" {
		digest, err := tasks.InquiryDigestTask.CreateTask(cfg.Scheduler.DigestRRule, time.Now())
		if err != nil {
			log.Fatal("Failed to build digest task", zap.Error(err))
		}
		// first run is the rule's next occurrence, not startup
		digest.Due = digest.NextDue(time.Now())
		scheduler.Schedule(digest)
		log.Info("Inquiry digest scheduled", zap.Time("due", digest.Due))
	}

	go scheduler.Run(ctx)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = authMiddleware.NewErrorHandler(tr)

	e.Use(middleware.Recover())
	e.Use(authMiddleware.RequestID())
	e.Use(logger.Middleware())
	e.Use(metrics.Middleware())
	e.Use(authMiddleware.Language(defaultLang))

	handlers.RegisterRoutes(e, handlers.Handlers{
		Auth:      handlers.NewAuthHandler(authService, jwtUtil, cfg.Server.Env == "production"),
		Offers:    handlers.NewOfferHandler(offerService, bookingService, dashboardService, tr),
		Dashboard: handlers.NewDashboardHandler(dashboardService, offerService),
		I18n:      handlers.NewI18nHandler(tr),
		JWT:       jwtUtil,
		Users:     authService,
	})

	go func() {
		log.Info("Server starting", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
}
