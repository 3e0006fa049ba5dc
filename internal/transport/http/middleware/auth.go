package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/connect4-minimax/pkg/auth"
	"github.com/iamasit07/connect4-minimax/pkg/uid"
)

// TokenFromRequest extracts a game token from the Authorization header,
// falling back to the "token" query parameter.
func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return r.URL.Query().Get("token")
}

// GameAuth allows the request only when its token was issued for the game
// named by the :id path parameter.
func GameAuth(issuer *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !uid.IsGameID(c.Param("id")) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}

		tokenString := TokenFromRequest(c.Request)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing game token"})
			return
		}

		if err := issuer.AuthorizeGame(tokenString, c.Param("id")); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid game token"})
			return
		}

		c.Next()
	}
}
