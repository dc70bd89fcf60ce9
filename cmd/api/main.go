package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httphandlers "github.com/rafabene/cuidar-backend/internal/handlers/http"
	"github.com/rafabene/cuidar-backend/internal/handlers/middleware"
	"github.com/rafabene/cuidar-backend/internal/infrastructure/config"
	"github.com/rafabene/cuidar-backend/internal/infrastructure/i18n"
	"github.com/rafabene/cuidar-backend/internal/infrastructure/logging"
	"github.com/rafabene/cuidar-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/cuidar-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting cuidar backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados e garantir o schema
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n (pt-BR padrão)
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "pt-BR")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	routineRepo := postgres.NewRoutineRepository(db)
	adherenceRepo := postgres.NewAdherenceRepository(db)
	symptomRepo := postgres.NewSymptomRepository(db)
	sheetRepo := postgres.NewMedicalSheetRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	userService := services.NewUserService(userRepo, uow, logger)
	routineService := services.NewRoutineService(routineRepo, adherenceRepo, userRepo, uow, logger)
	healthService := services.NewHealthService(symptomRepo, sheetRepo, uow, logger)
	notificationService := services.NewNotificationService(notificationRepo, uow, logger)

	// Inicializar handlers
	handlers := httphandlers.Handlers{
		User:         httphandlers.NewUserHandler(userService, logger),
		Routine:      httphandlers.NewRoutineHandler(routineService, logger),
		Health:       httphandlers.NewHealthHandler(healthService, logger),
		Notification: httphandlers.NewNotificationHandler(notificationService, logger),
	}

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	// Métricas
	registry := prometheus.NewRegistry()
	httpMetrics := middleware.NewHTTPMetrics(registry)
	router.Use(httpMetrics.Handler())

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Health check e métricas
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Rotas da API
	httphandlers.RegisterRoutes(router, handlers)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
