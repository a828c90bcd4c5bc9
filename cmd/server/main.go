package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	kpiapp "github.com/visionassist/backend/internal/application/analytics"
	catalogapp "github.com/visionassist/backend/internal/application/catalog"
	"github.com/visionassist/backend/internal/application/export"
	identityapp "github.com/visionassist/backend/internal/application/identity"
	partnerapp "github.com/visionassist/backend/internal/application/partner"
	reportapp "github.com/visionassist/backend/internal/application/report"
	tradeapp "github.com/visionassist/backend/internal/application/trade"
	zoneapp "github.com/visionassist/backend/internal/application/zone"
	"github.com/visionassist/backend/internal/infrastructure/config"
	"github.com/visionassist/backend/internal/infrastructure/logger"
	"github.com/visionassist/backend/internal/infrastructure/persistence"
	"github.com/visionassist/backend/internal/infrastructure/telemetry"
	"github.com/visionassist/backend/internal/interfaces/http/handler"
	"github.com/visionassist/backend/internal/interfaces/http/middleware"
	"github.com/visionassist/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

//	@title			VisionAssist Backend API
//	@version		1.0
//	@description	Administration and reporting backend for the VisionAssist device platform

//	@contact.name	API Support
//	@contact.email	support@visionassist.example.com

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting VisionAssist Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Initialize database connection
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, logger.MapGormLogLevel(cfg.Log.Level))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Register database query tracing
	dbTracingConfig := telemetry.DefaultDBTracingConfig()
	dbTracingConfig.Enabled = cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled
	dbTracing := telemetry.NewDBTracingPlugin(dbTracingConfig, log)
	if err := dbTracing.RegisterOtelGorm(db.DB); err != nil {
		log.Warn("Failed to register database tracing", zap.Error(err))
	}

	// Initialize repositories
	deviceRepo := persistence.NewGormDeviceRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	zoneRepo := persistence.NewGormZoneRepository(db.DB)
	environmentRepo := persistence.NewGormEnvironmentRepository(db.DB)
	analyticsRepo := persistence.NewGormAnalyticsRepository(db.DB)
	usageDataRepo := persistence.NewGormUsageDataRepository(db.DB)
	salesDataRepo := persistence.NewGormSalesDataRepository(db.DB)
	zoneDataRepo := persistence.NewGormZoneDataRepository(db.DB)
	userDataRepo := persistence.NewGormUserDataRepository(db.DB)

	// Initialize application services
	deviceService := catalogapp.NewDeviceService(deviceRepo)
	clientService := partnerapp.NewClientService(clientRepo, deviceRepo)
	userService := identityapp.NewUserService(userRepo)
	saleService := tradeapp.NewSaleService(saleRepo, deviceRepo, clientRepo)
	zoneService := zoneapp.NewZoneService(zoneRepo, environmentRepo)
	kpiService := kpiapp.NewKPIService(analyticsRepo,
		kpiapp.WithCostFallbackRatio(decimal.NewFromFloat(cfg.Report.CostFallbackRatio)),
	)
	reportService := reportapp.NewReportService(usageDataRepo, salesDataRepo, zoneDataRepo, userDataRepo)
	exporter := export.NewExporter(cfg.Report.ExportDir)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		System:    handler.NewSystemHandler(db),
		Device:    handler.NewDeviceHandler(deviceService),
		Client:    handler.NewClientHandler(clientService),
		Sale:      handler.NewSaleHandler(saleService),
		Zone:      handler.NewZoneHandler(zoneService),
		User:      handler.NewUserHandler(userService),
		Dashboard: handler.NewDashboardHandler(kpiService),
		Report:    handler.NewReportHandler(reportService, exporter),
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Tracing - Start the request span before logging so the access
	//    log carries trace IDs
	// 4. Logger - Log requests
	// 5. Security - Add security headers
	// 6. CORS - Handle cross-origin requests
	// 7. BodyLimit - Limit request body size
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit shares the header budget default (1MB)
	engine.Use(middleware.BodyLimit(int64(cfg.HTTP.MaxHeaderBytes)))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	router.BuildRoutes(r, handlers)

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
