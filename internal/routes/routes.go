package routes

import (
	"io"
	"net/http"
	"time"

	"github.com/maramilod/alx-backend/internal/cache"
	"github.com/maramilod/alx-backend/internal/handlers"
	"github.com/maramilod/alx-backend/internal/i18n"
	"github.com/maramilod/alx-backend/internal/middleware"
	"github.com/maramilod/alx-backend/internal/realtime"

	"github.com/gin-gonic/gin"
)

// Dependencies are the long-lived values the routes are served from.
type Dependencies struct {
	Caches     *cache.Registry[string, string]
	Hub        *realtime.Hub
	Negotiator *i18n.Negotiator
	Now        func() time.Time // nil means time.Now
	AccessLog  io.Writer        // nil means gin.DefaultWriter
}

func SetupRoutes(deps Dependencies) *gin.Engine {
	// Create a new GIN Router
	ginRouter := gin.New()
	ginRouter.Use(middleware.RequestLogger(deps.AccessLog), gin.Recovery())

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept-Language, Authorization, accept, origin, locale, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, PUT, DELETE, POST, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
	ginRouter.Use(middleware.UserMiddleware(), middleware.LocaleMiddleware(deps.Negotiator))

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Cache API is running",
		})
	})

	ginRouter.GET("/", handlers.HomeHandler(deps.Negotiator, deps.Now))

	cacheHandler := handlers.NewCacheHandler(deps.Caches)

	// Public routes (no authentication required)
	api := ginRouter.Group("/api")
	{
		api.POST("/login", handlers.Login)
		api.GET("/caches", cacheHandler.ListCaches)
		api.GET("/caches/:name", cacheHandler.GetCache)
		api.GET("/caches/:name/items", cacheHandler.ListItems)
		api.GET("/caches/:name/items/:key", cacheHandler.GetItem)
	}

	// Protected routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware())
	{
		protectedRoutes.PUT("/caches/:name/items/:key", cacheHandler.PutItem)
		protectedRoutes.DELETE("/caches/:name/items/:key", cacheHandler.DeleteItem)
	}

	// Websocket routes also take the token as ?token=
	socketRoutes := api.Group("")
	socketRoutes.Use(middleware.WebSocketAuthMiddleware())
	{
		socketRoutes.GET("/caches/:name/events", handlers.EventsHandler(deps.Hub, deps.Caches))
	}

	return ginRouter
}
