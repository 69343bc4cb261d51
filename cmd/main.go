package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/yungbote/swipegen-backend/internal/catalog"
	"github.com/yungbote/swipegen-backend/internal/clients/redis"
	"github.com/yungbote/swipegen-backend/internal/generator"
	"github.com/yungbote/swipegen-backend/internal/handlers"
	"github.com/yungbote/swipegen-backend/internal/jobs"
	"github.com/yungbote/swipegen-backend/internal/logger"
	"github.com/yungbote/swipegen-backend/internal/selector"
	"github.com/yungbote/swipegen-backend/internal/server"
	"github.com/yungbote/swipegen-backend/internal/services"
	"github.com/yungbote/swipegen-backend/internal/utils"
)

func main() {
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	port := utils.GetEnv("PORT", "8080", log)
	jobTTL := utils.GetEnvAsSeconds("JOB_TTL_SECONDS", jobs.DefaultTTL, log)
	allowOrigins := utils.GetEnv("CORS_ALLOW_ORIGINS", "", log)

	// Job store: Redis when configured, in-process otherwise
	var store jobs.Store
	if os.Getenv("REDIS_ADDR") != "" {
		redisStore, err := redis.NewJobStore(log, jobTTL)
		if err != nil {
			log.Error("Could not init Redis job store", "error", err)
			os.Exit(1)
		}
		defer redisStore.Close()
		store = redisStore
	} else {
		log.Warn("REDIS_ADDR not set, using in-memory job store")
		store = jobs.NewMemoryStore(jobTTL)
	}

	// Services
	log.Info("Setting up Services from main...")
	openaiClient, err := services.NewOpenAIClient(log)
	if err != nil {
		log.Warn("Could not init OpenAIClient, generation will use fallback content", "error", err)
		openaiClient = nil
	}

	sel := selector.New(catalog.Templates)
	gen := generator.New(openaiClient, log)

	generationService, err := services.NewGenerationService(log, store, sel, gen)
	if err != nil {
		log.Error("Could not init GenerationService", "error", err)
		os.Exit(1)
	}

	// Handlers
	log.Info("Setting up Handlers from main...")
	generationHandler := handlers.NewGenerationHandler(log, generationService)
	catalogHandler := handlers.NewCatalogHandler()
	healthcheckHandler := handlers.NewHealthcheckHandler()

	// Router
	var origins []string
	if allowOrigins != "" {
		for _, o := range strings.Split(allowOrigins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	router := server.NewRouter(server.RouterConfig{
		GenerationHandler:  generationHandler,
		CatalogHandler:     catalogHandler,
		HealthcheckHandler: healthcheckHandler,
		AllowOrigins:       origins,
	})

	log.Info("Starting server", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
