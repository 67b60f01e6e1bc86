package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"ondoctor-server/internal/ai"
	"ondoctor-server/internal/alarms"
	"ondoctor-server/internal/auth"
	"ondoctor-server/internal/cache"
	"ondoctor-server/internal/config"
	"ondoctor-server/internal/directory"
	"ondoctor-server/internal/handlers"
	"ondoctor-server/internal/routes"
	"ondoctor-server/internal/scheduling"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load environment variables; a missing .env is fine in production.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("no .env file found, relying on environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("error loading config")
	}
	if cfg.Environment == "development" {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		gin.SetMode(gin.ReleaseMode)
		logger = logger.Level(zerolog.InfoLevel)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Reference data and in-memory stores.
	registry := directory.NewRegistry()
	store := scheduling.NewStore(registry, cfg.AppURL, logger.With().Str("component", "scheduling").Logger(), nil)
	if cfg.SeedDemoData {
		store.SeedDemoData()
		logger.Info().Int("appointments", store.Len()).Msg("seeded demo appointments")
	}
	slots := scheduling.NewGenerator(nil)
	users := auth.NewRegistry(nil)
	alarmStore := alarms.NewStore()

	// Optional Redis response cache for generated meal plans.
	responseCache, err := cache.New(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("error connecting to redis")
	}
	if responseCache == nil {
		logger.Info().Msg("redis not configured, meal plan caching disabled")
	} else {
		defer responseCache.Close()
	}

	// Generative AI flows.
	aiClient := ai.NewClient(cfg.GoogleAI, logger.With().Str("component", "ai").Logger())
	if !aiClient.Configured() {
		logger.Warn().Msg("GOOGLE_API_KEY not set, AI endpoints will report service unavailable")
	}
	planner := ai.NewMealPlanner(aiClient, responseCache, time.Duration(cfg.Redis.TTLHours)*time.Hour)
	prescriber := ai.NewPrescriber(aiClient)
	assistant := ai.NewAssistant(aiClient)

	// Medicine alarm dispatcher (simulated delivery).
	dispatcher := alarms.NewDispatcher(alarmStore, logger.With().Str("component", "alarms").Logger())
	go dispatcher.Run(ctx)

	// Initialize Gin router
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	routes.SetupRoutes(router, routes.Handlers{
		Auth:        handlers.NewAuthHandler(users, cfg),
		Directory:   handlers.NewDirectoryHandler(registry),
		Appointment: handlers.NewAppointmentHandler(store, slots, registry),
		AI:          handlers.NewAIHandler(planner, prescriber, assistant),
		Alarm:       handlers.NewAlarmHandler(alarmStore),
		Device:      handlers.NewDeviceHandler(),
	}, cfg)

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info().Str("addr", serverAddr).Msg("server starting")
	if err := router.Run(serverAddr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
