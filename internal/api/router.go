package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/matchlens/pitchtrack/internal/analysis"
	"github.com/matchlens/pitchtrack/internal/config"
	"github.com/matchlens/pitchtrack/internal/database"
	"github.com/matchlens/pitchtrack/internal/handler"
	"github.com/matchlens/pitchtrack/internal/middleware"
	"github.com/matchlens/pitchtrack/internal/render"
	"github.com/matchlens/pitchtrack/internal/repository"
	"github.com/matchlens/pitchtrack/internal/service"
)

// SetupRouter wires repositories, services and handlers into the gin engine
func SetupRouter(cfg *config.Config) *gin.Engine {
	db := database.GetDB()

	sessionsRepo := repository.NewSessionRepository(db)
	samplesRepo := repository.NewSampleRepository(db)
	metricsRepo := repository.NewMetricsRepository(db)

	analyzer := analysis.NewTrajectoryAnalyzer(cfg.AnalysisConfig())
	renderCfg := render.DefaultConfig()
	renderCfg.Pitch = cfg.AnalysisConfig().Pitch
	renderer := render.New(renderCfg)

	sessionService := service.NewSessionService(sessionsRepo, samplesRepo, metricsRepo, analyzer)
	vizService := service.NewVisualizationService(samplesRepo, analyzer, renderer)

	sessionHandler := handler.NewSessionHandler(sessionService)
	metricsHandler := handler.NewMetricsHandler(sessionService)
	vizHandler := handler.NewVisualizationHandler(vizService)
	authHandler := handler.NewAuthHandler(cfg.JWTSecret, cfg.AdminSecret)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "pitchtrack API is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(120, time.Minute))
	{
		auth := api.Group("/auth")
		{
			auth.POST("/token", authHandler.Token)
		}

		sessions := api.Group("/sessions")
		{
			sessions.GET("", sessionHandler.List)
			sessions.GET("/:id", sessionHandler.Get)
			sessions.GET("/:id/samples", sessionHandler.Samples)
			sessions.GET("/:id/metrics", metricsHandler.Get)
			sessions.GET("/:id/heatmap", vizHandler.Heatmap)
			sessions.GET("/:id/heatmap.png", vizHandler.HeatmapPNG)
			sessions.GET("/:id/vectormap.png", vizHandler.VectorMapPNG)
			sessions.GET("/:id/speedchart.png", vizHandler.SpeedChartPNG)

			protected := sessions.Group("")
			protected.Use(middleware.Auth(cfg.JWTSecret))
			{
				protected.POST("", sessionHandler.Create)
				protected.DELETE("/:id", sessionHandler.Delete)
			}
		}
	}

	return r
}
