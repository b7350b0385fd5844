package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/musewave/musewave-api/internal/api/handlers"
	apimiddleware "github.com/musewave/musewave-api/internal/api/middleware"
	"github.com/musewave/musewave-api/internal/config"
	"github.com/musewave/musewave-api/internal/database"
	"github.com/musewave/musewave-api/internal/llm"
	"github.com/musewave/musewave-api/internal/logger"
	"github.com/musewave/musewave-api/internal/lyrics"
	"github.com/musewave/musewave-api/internal/metrics"
	"github.com/musewave/musewave-api/internal/observability"
	"github.com/musewave/musewave-api/internal/suggest"
)

func SetupRouter(db *gorm.DB, cfg *config.Config, version string) *gin.Engine {
	router := gin.New()

	ctx := context.Background()

	// CloudWatch metrics (no-op outside production)
	cwMetrics, err := metrics.NewClient(ctx, cfg.Environment)
	if err != nil {
		logger.Warn("⚠️ CloudWatch metrics unavailable", logger.Fields{"error": err.Error()})
	}

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking, structured logging, and request metrics
	router.Use(apimiddleware.RequestTracking(cwMetrics))

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// LLM observability and the provider chain. A nil chain means no API keys
	// are configured; the engine runs offline on the fallback pools.
	langfuse := observability.NewLangfuseClient(ctx, cfg.LangfuseEnabled, cfg.LangfuseSecretKey, cfg.LangfuseHost)
	factory := llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.GeminiAPIKey, cfg.OpenAIModel, cfg.GeminiModel, langfuse)
	chain := factory.BuildChain(ctx, cfg.ProviderOrder)

	var generator suggest.Generator
	var lyricsProvider llm.Provider
	if chain != nil {
		generator = chain
		lyricsProvider = chain
	}

	// Suggestion engine
	store := database.NewSuggestionStore(db)
	tracker := suggest.NewTracker(store)
	engine := suggest.NewEngine(generator, tracker, suggest.Options{
		MaxAttempts: cfg.SuggestMaxAttempts,
		CallTimeout: cfg.SuggestTimeout,
	})

	// Health check
	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Check)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Static vocabulary for pickers and autocomplete
	libraryHandler := handlers.NewLibraryHandler()
	library := router.Group("/api/library")
	{
		library.GET("/genres", libraryHandler.Genres)
		library.GET("/languages", libraryHandler.Languages)
		library.GET("/artists", libraryHandler.Artists)
	}

	// Creative endpoints. Gateway auth is optional: anonymous requests share
	// the global suggestion scope.
	creative := router.Group("/api")
	creative.Use(apimiddleware.OptionalGatewayAuth())
	{
		suggestHandler := handlers.NewSuggestHandler(engine, cwMetrics)
		creative.POST("/suggest", suggestHandler.Suggest)

		assetsHandler := handlers.NewAssetsHandler(cwMetrics)
		creative.POST("/assets/select", assetsHandler.Select)

		lyricsHandler := handlers.NewLyricsHandler(lyrics.NewService(lyricsProvider))
		creative.POST("/lyrics", lyricsHandler.Generate)
	}

	return router
}
