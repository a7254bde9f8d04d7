package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/CMPUT301F25quartz/quartz-events-sub000/api/swagger"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/handler"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/middleware"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/repository"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/service"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/cache"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/config"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/database"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/jobs"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/logger"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/middleware/cors"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/middleware/requestid"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer db.Close() //nolint:errcheck

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		// The service degrades to direct reads without Redis.
		log.Warn("redis unavailable, caching disabled", zap.Error(err))
		redisClient = nil
	}

	// Repositories.
	broadcastRepo := repository.NewBroadcastRepository(db)
	waitingListRepo := repository.NewWaitingListRepository(db)
	inboxRepo := repository.NewInboxRepository(db)
	logRepo := repository.NewNotificationLogRepository(db)
	eventRepo := repository.NewEventRepository(db)
	userRepo := repository.NewUserRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, log)

	validate := validator.New()
	metrics := service.NewMetricsService()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	auditWorker := service.NewAuditWorker(logRepo, jobs.QueueConfig{
		Workers:    cfg.Notifier.AuditLogWorkers,
		BufferSize: cfg.Notifier.AuditLogBuffer,
	}, log)
	auditWorker.Start(ctx)
	defer auditWorker.Stop()

	// Services.
	eventSvc := service.NewEventService(eventRepo, cacheRepo, cfg.Inbox.EventCacheTTL, validate, log)
	notifierSvc := service.NewNotifierService(
		broadcastRepo, waitingListRepo, inboxRepo, eventSvc, userRepo,
		auditWorker, metrics, validate, log, cfg.Notifier.BatchLimit,
	)
	drawSvc := service.NewDrawService(waitingListRepo, notifierSvc, metrics, validate, log)
	waitingListSvc := service.NewWaitingListService(waitingListRepo, eventSvc, log)
	inboxSvc := service.NewInboxService(inboxRepo, cacheRepo, cfg.Inbox.UnreadCacheTTL, log)
	authSvc := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration, validate, log)

	exportStore, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		return fmt.Errorf("init export storage: %w", err)
	}
	signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)
	logSvc := service.NewLogService(logRepo, exportStore, signer, validate, log)

	// Expired exports are useless once their tokens lapse; sweep them.
	go func() {
		ticker := time.NewTicker(cfg.Exports.CleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				deleted, err := exportStore.CleanupOlderThan(cfg.Exports.SignedURLTTL)
				if err != nil {
					log.Warn("export cleanup failed", zap.Error(err))
				} else if len(deleted) > 0 {
					log.Info("expired exports removed", zap.Int("count", len(deleted)))
				}
			}
		}
	}()

	router := buildRouter(cfg, log, metrics, routerDeps{
		auth:        handler.NewAuthHandler(authSvc),
		events:      handler.NewEventHandler(eventSvc),
		notify:      handler.NewNotificationHandler(notifierSvc),
		draws:       handler.NewDrawHandler(drawSvc),
		waitingList: handler.NewWaitingListHandler(waitingListSvc),
		inbox:       handler.NewInboxHandler(inboxSvc),
		logs:        handler.NewLogHandler(logSvc, exportStore),
		health:      handler.NewHealthHandler(db, redisClient),
		authSvc:     authSvc,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.Int("port", cfg.Port), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

type routerDeps struct {
	auth        *handler.AuthHandler
	events      *handler.EventHandler
	notify      *handler.NotificationHandler
	draws       *handler.DrawHandler
	waitingList *handler.WaitingListHandler
	inbox       *handler.InboxHandler
	logs        *handler.LogHandler
	health      *handler.HealthHandler
	authSvc     *service.AuthService
}

func buildRouter(cfg *config.Config, log *zap.Logger, metrics *service.MetricsService, deps routerDeps) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.Middleware())
	router.Use(logger.GinMiddleware(log))
	router.Use(cors.New(cfg.CORS.AllowedOrigins))
	router.Use(middleware.Metrics(metrics))

	router.GET("/health", deps.health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})))
	if cfg.Env != config.EnvProduction {
		router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := router.Group(cfg.APIPrefix)
	api.POST("/auth/login", deps.auth.Login)
	// Download links are pre-authorized by their signed token.
	api.GET("/admin/notification-logs/export/download", deps.logs.Download)

	authed := api.Group("", middleware.Auth(deps.authSvc))

	organizer := authed.Group("", middleware.RequireRoles(models.RoleOrganizer, models.RoleAdmin))
	organizer.POST("/events", deps.events.Create)
	organizer.GET("/events", deps.events.ListMine)
	organizer.GET("/events/:id/waiting-list", deps.waitingList.List)
	organizer.POST("/events/:id/notifications", deps.notify.NotifyAudience)
	organizer.POST("/events/:id/notifications/single", deps.notify.NotifySingle)
	organizer.POST("/events/:id/draw", deps.draws.RunDraw)
	organizer.POST("/events/:id/draw/replacement", deps.draws.DrawReplacement)

	admin := authed.Group("/admin", middleware.RequireRoles(models.RoleAdmin))
	admin.GET("/notification-logs", deps.logs.List)
	admin.POST("/notification-logs/export", deps.logs.Export)

	authed.GET("/events/:id", deps.events.Get)
	authed.POST("/events/:id/waiting-list", deps.waitingList.Join)
	authed.DELETE("/events/:id/waiting-list", deps.waitingList.Leave)
	authed.POST("/events/:id/waiting-list/accept", deps.waitingList.Accept)
	authed.POST("/events/:id/waiting-list/decline", deps.waitingList.Decline)
	authed.GET("/inbox", deps.inbox.List)
	authed.GET("/inbox/unread", deps.inbox.UnreadCount)
	authed.POST("/inbox/:id/read", deps.inbox.MarkRead)

	return router
}
