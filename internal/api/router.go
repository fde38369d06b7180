package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/antarcticsurvey/amlr-backend-go/internal/config"
	"github.com/antarcticsurvey/amlr-backend-go/internal/handler"
	"github.com/antarcticsurvey/amlr-backend-go/internal/middleware"
	"github.com/antarcticsurvey/amlr-backend-go/internal/repository"
	"github.com/antarcticsurvey/amlr-backend-go/internal/service"
	"github.com/antarcticsurvey/amlr-backend-go/internal/spatial"
)

// SetupRouter wires repositories, services and handlers onto a gin engine
func SetupRouter(cfg *config.Config, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "AMLR Survey Backend API is running",
		})
	})

	// Repositories
	stationRepo := repository.NewStationRepository(db)
	sightingRepo := repository.NewSightingRepository(db)
	towRepo := repository.NewTowRepository(db)
	iceRepo := repository.NewIceRepository(db)
	rasterRepo := repository.NewRasterRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Shared projection and extent: every raster layer must bin against
	// the same grid
	projection := spatial.NewEqualAreaProjection(cfg.CenterLat, cfg.CenterLon)
	extent := spatial.NewCenteredExtent(cfg.ExtentRadiusMeters)

	// Services
	stationService := service.NewStationService(stationRepo)
	rasterService := service.NewRasterService(sightingRepo, towRepo, rasterRepo, taskRepo,
		projection, extent, cfg.RasterResolutionMeters)
	iceModeService := service.NewIceModeService(stationRepo, iceRepo)
	effortService := service.NewEffortService(stationRepo, iceRepo)

	// Handlers
	stationHandler := handler.NewStationHandler(stationService)
	rasterHandler := handler.NewRasterHandler(rasterService)
	iceModeHandler := handler.NewIceModeHandler(iceModeService)
	effortHandler := handler.NewEffortHandler(effortService)

	limiter := middleware.NewRateLimiter(120, time.Minute)

	api := r.Group("/api/v1")
	api.Use(limiter.Middleware())
	{
		api.GET("/stations", stationHandler.ListStations)
		api.GET("/raster/cells", rasterHandler.GetCells)
		api.GET("/ice/modes", iceModeHandler.GetModes)
		api.GET("/effort/summary", effortHandler.GetSummary)

		analysis := api.Group("/analysis")
		analysis.Use(middleware.JWTAuth(cfg.JWTSecret))
		{
			analysis.POST("/raster", rasterHandler.Recompute)
			analysis.GET("/tasks/:id", rasterHandler.GetTask)
		}
	}

	return r
}
