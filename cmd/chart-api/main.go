package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/core/audit"
	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/core/export"
	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/core/refresh"
	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/modules/registry/handlers"
	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/modules/registry/repositories"
	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/modules/registry/services"
	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/shared/config"
	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/shared/database"
	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/shared/utils"

	_ "github.com/MuhamadAgungGumelar/registry-chart-api/cmd/chart-api/docs"
)

// @title Registry Chart API
// @version 1.0
// @description Chart configuration, rendering and export over the cardiovascular registry
// @contact.name Registry Engineering
// @license.name MIT
// @host localhost:3001
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env, cfg.LogLevel)
	utils.LogInfo("🚀 Starting chart-api", map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	})

	// Init database
	db, err := database.NewDB(cfg.DatabaseURL, !cfg.IsProduction() && cfg.LogLevel == "debug")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	aggregator := analytics.NewAggregator(db.GORM)

	// Init audit trail
	var recorder services.AuditRecorder
	if cfg.AuditEnabled {
		recorder = audit.NewService(db.GORM)
		log.Info().Msg("📝 Chart render audit enabled")
	} else {
		log.Warn().Msg("⚠️  Chart render audit disabled")
	}

	// Init services
	chartRepo := repositories.NewChartDataRepo(aggregator)
	chartService := services.NewChartService(chartRepo, recorder, export.NewService(), services.Limits{
		PointRows:     cfg.MaxPointRows,
		AggregateRows: cfg.MaxAggregateRows,
	})

	// Summary view refresh
	scheduler := refresh.NewScheduler()
	refresher := refresh.NewSummaryRefresher(aggregator)
	if err := scheduler.Add("patient-summary", cfg.SummaryRefreshCron, refresher.Job()); err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule summary refresh")
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Init handlers
	chartHandler := handlers.NewChartHandler(chartService)
	healthHandler := handlers.NewHealthHandler(chartService)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Registry Chart API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
	}))

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	handlers.RegisterRoutes(app, chartHandler, healthHandler)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info().Msg("🛑 Shutting down chart-api...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("Graceful shutdown failed")
		}
	}()

	log.Info().Msgf("✅ chart-api running at :%s", cfg.Port)
	log.Info().Msgf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("Server stopped")
	}
}
