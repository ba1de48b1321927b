package router

import (
	"net/http"
	"time"

	"amora/config"
	"amora/internal/handler"
	"amora/internal/middleware"
	"amora/internal/repository"
	"amora/internal/service"
	"amora/pkg/geocode"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, geocoder *geocode.Client, log zerolog.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	limiter := middleware.NewInMemoryRateLimiter(100, 60*time.Second)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)

	// Services
	privacySvc := service.NewPrivacyService(matchRepo)
	discoverySvc := service.NewDiscoveryService(userRepo, matchRepo, privacySvc, cfg.Matching.MaxRadiusKm, cfg.Matching.NearbyLimit, cfg.Matching.MinAge)
	matchSvc := service.NewMatchService(userRepo, matchRepo, log)
	locationSvc := service.NewLocationService(userRepo, historyRepo, geocoder, log)

	// Handlers
	locationHandler := handler.NewLocationHandler(locationSvc, userRepo, historyRepo)
	discoveryHandler := handler.NewDiscoveryHandler(discoverySvc, userRepo)
	matchHandler := handler.NewMatchHandler(matchSvc, matchRepo)
	permissionHandler := handler.NewPermissionHandler(permissionRepo)
	settingsHandler := handler.NewSettingsHandler(userRepo)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiting sits after auth so the limiter can key by user ID.
	authMw := middleware.AuthRequired(&cfg.JWT)
	api := r.Group("/api/v1")
	api.Use(authMw, middleware.RateLimit(limiter))
	{
		api.PUT("/location", locationHandler.UpdateLocation)
		api.GET("/location", locationHandler.GetMyLocation)
		api.POST("/location/address", locationHandler.UpdateAddress)
		api.GET("/location/history", locationHandler.GetHistory)
		api.GET("/location/permissions", permissionHandler.Get)
		api.PUT("/location/permissions", permissionHandler.Update)

		api.GET("/nearby", discoveryHandler.Nearby)

		api.POST("/matches/:user_id/like", matchHandler.Like)
		api.POST("/matches/:user_id/dislike", matchHandler.Dislike)
		api.POST("/matches/:user_id/block", matchHandler.Block)
		api.GET("/matches", matchHandler.ListMatches)
		api.GET("/interactions", matchHandler.ListInteractions)

		api.PATCH("/me/settings", settingsHandler.Update)
	}

	return r
}
