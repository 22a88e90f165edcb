package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/eventdesk/audit"
	"github.com/dev-mohitbeniwal/eventdesk/config"
	"github.com/dev-mohitbeniwal/eventdesk/controller"
	"github.com/dev-mohitbeniwal/eventdesk/dao"
	"github.com/dev-mohitbeniwal/eventdesk/db"
	logger "github.com/dev-mohitbeniwal/eventdesk/logging"
	"github.com/dev-mohitbeniwal/eventdesk/metrics"
	"github.com/dev-mohitbeniwal/eventdesk/router"
	"github.com/dev-mohitbeniwal/eventdesk/service"
	"github.com/dev-mohitbeniwal/eventdesk/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	cfg := config.GetConfig()

	// Initialize logger
	logger.InitLogger(cfg.Log.Dir)
	defer logger.Sync()

	if cfg.Auth.JWTSecret == "" {
		logger.Fatal("auth.jwtSecret must be set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize Neo4j
	graph, err := db.InitNeo4j(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize Neo4j", zap.Error(err))
	}
	defer graph.Close(context.Background())

	if failed := dao.EnsureConstraints(ctx, graph); failed > 0 {
		logger.Warn("Some graph constraints could not be created", zap.Int("failed", failed))
	}

	// Initialize Redis
	redisCache, err := db.InitRedis(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer redisCache.Close()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	eventBus.Start(ctx)
	metrics.Subscribe(eventBus)

	auditRepository, err := audit.NewElasticsearchRepository(cfg.Elasticsearch.URL, cfg.Elasticsearch.Index)
	if err != nil {
		logger.Fatal("Failed to initialize audit repository", zap.Error(err))
	}
	tokenService := util.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	services, err := service.InitializeServices(graph, service.Collaborators{
		Audit:        audit.NewService(auditRepository),
		Cache:        util.NewCacheService(redisCache),
		Validation:   util.NewValidationUtil(),
		Mailer:       util.NewNotificationService(cfg.Email),
		Spreadsheet:  util.NewSpreadsheet(),
		ImageCodec:   util.NewImageCodec(cfg.QR.Size),
		Tokens:       tokenService,
		Hasher:       util.NewPasswordHasher(0),
		EventBus:     eventBus,
		AuthSettings: cfg.Auth,
	})
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := controller.InitializeControllers(services)

	gin.SetMode(gin.ReleaseMode)
	handler := router.SetupRouter(controllers, tokenService, redisCache, cfg.RateLimit.Requests, cfg.RateLimit.Window)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: handler,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	cancel()
	eventBus.Wait()

	logger.Info("Server exiting")
}
