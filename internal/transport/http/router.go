package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/connect4-minimax/internal/transport/http/middleware"
)

// NewRouter wires the REST routes. ws serves the WebSocket endpoint and may
// be nil.
func NewRouter(games *GameHandler, ws gin.HandlerFunc, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(allowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	router.POST("/api/games", games.CreateGame)

	protected := router.Group("/api/games/:id")
	protected.Use(middleware.GameAuth(games.Tokens))
	{
		protected.GET("", games.GetGame)
		protected.GET("/board", games.GetBoard)
		protected.POST("/moves", games.MakeMove)
		protected.DELETE("", games.DeleteGame)
	}

	if ws != nil {
		router.GET("/ws", ws)
	}

	return router
}
