package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"poems-backend/internal/shared/middleware"
	"poems-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(api, c)
		setupPoemRoutes(api, c)
		setupRatingRoutes(api, c)
		setupAIRatingRoutes(api, c)
	}

	return router
}

func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/logout", c.UserHandler.Logout)
		// Me never 401s: it reports "user": null for anonymous callers.
		auth.GET("/me", middleware.OptionalSession(c.JWTManager), c.UserHandler.Me)
	}
}

func setupPoemRoutes(api *gin.RouterGroup, c *container.Container) {
	poems := api.Group("/poems")
	{
		// Same path serves the recent feed and the cursor walk; the
		// handler branches on the presence of ?cursor.
		poems.GET("", c.PoemHandler.List)
		poems.POST("", middleware.OptionalSession(c.JWTManager), c.PoemHandler.Create)
	}
}

func setupRatingRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/ratings", middleware.RequireSession(c.JWTManager), c.RatingHandler.Submit)
}

func setupAIRatingRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/ai-rate", c.AIRatingHandler.Annotate)
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if err := appCtx.DB.HealthCheck(c.Request.Context()); err != nil {
			dbStatus = fmt.Sprintf("error: %v", err)
		}

		redisStatus := "disabled"
		if appCtx.Cache != nil {
			redisStatus = "ok"
			if err := appCtx.Cache.Ping(c.Request.Context()); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
