package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avolkov/linkstats/internal/config"
	"github.com/avolkov/linkstats/internal/controllers/middlewares"
	"github.com/avolkov/linkstats/internal/services"
)

// RouterParams зависимости маршрутизатора.
type RouterParams struct {
	Services *services.Services
	Config   *config.Config
	Logger   *zap.Logger
}

func SetupRouter(params RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware(params.Logger))
	r.Use(middlewares.GzipMiddleware())

	jwtSecret := []byte(params.Config.JWTSecret)

	authController := NewAuthController(params.Services.AccountService, jwtSecret, params.Config.JWTExpire)
	mappingController := NewMappingController(
		params.Services.MappingService,
		params.Services.AnalyticsService,
		params.Config.BaseURL,
	)
	redirectController := NewRedirectController(params.Services.MappingService)
	pingController := NewPingController(params.Services.PingService)

	r.GET("/ping", pingController.Ping)
	r.GET("/:shortCode", redirectController.Redirect)

	public := r.Group("/api/auth/public")
	public.POST("/register", authController.Register)
	public.POST("/login", authController.Login)

	urls := r.Group("/api/urls")
	urls.Use(middlewares.AuthMiddleware(params.Services.AccountService, jwtSecret))
	urls.POST("/shorten", mappingController.Shorten)
	urls.GET("/myUrls", mappingController.MyURLs)
	urls.GET("/analytics/:shortCode", mappingController.Analytics)
	urls.GET("/totalClicks", mappingController.TotalClicks)

	return r
}
