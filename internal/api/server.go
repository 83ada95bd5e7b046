package api

import (
	"net/http"
	"time"

	"github.com/crossplay/wfc/internal/auth"
	"github.com/crossplay/wfc/internal/config"
	"github.com/crossplay/wfc/internal/middleware"
	"github.com/crossplay/wfc/internal/realtime"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the full Gin router: health/metrics endpoints plus
// the session API, mirroring the route-group layout the original
// server used for auth/rooms/puzzles.
func NewRouter(cfg config.Config, hub *realtime.Hub, authService *auth.AuthService) *gin.Engine {
	authMiddleware := middleware.NewAuthMiddleware(authService)
	handlers := NewHandlers(hub, authService)

	router := gin.Default()
	router.Use(middleware.CORS())
	router.Use(middleware.PerformanceMonitor())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
	})

	router.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, middleware.GetMetrics())
	})

	apiGroup := router.Group("/api")
	{
		sessionsGroup := apiGroup.Group("/sessions")
		{
			sessionsGroup.POST("", handlers.CreateSession)
			sessionsGroup.GET("/:id/ws", handlers.ServeSessionWS)

			protected := sessionsGroup.Group("")
			protected.Use(authMiddleware.RequireAuth())
			protected.DELETE("/:id", handlers.CloseSession)
		}

		apiGroup.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Not Found",
				"message": "API endpoint does not exist",
				"path":    c.Request.URL.Path,
			})
		})
	}

	return router
}
