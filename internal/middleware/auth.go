package middleware

import (
	"net/http"
	"strings"

	"github.com/maramilod/alx-backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// Gin context keys set by the middleware in this package.
const (
	ContextUserID   = "user_id"
	ContextUser     = "user"
	ContextLocale   = "locale"
	ContextTimezone = "timezone"
	ContextLocation = "location"
)

// TokenQueryParam carries a JWT on websocket upgrade requests.
const TokenQueryParam = "token"

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(c *gin.Context) string {
	if parts := strings.Fields(c.GetHeader("Authorization")); len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// socketToken also accepts the token query parameter, since browser websocket
// clients cannot set headers on the upgrade request.
func socketToken(c *gin.Context) string {
	if token := bearerToken(c); token != "" {
		return token
	}
	return c.Query(TokenQueryParam)
}

// JWTAuthMiddleware rejects requests without a valid token
func JWTAuthMiddleware() gin.HandlerFunc {
	return requireToken(bearerToken)
}

// WebSocketAuthMiddleware is JWTAuthMiddleware for websocket routes: the
// token may also arrive as ?token=. RequestLogger redacts that parameter.
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return requireToken(socketToken)
}

func requireToken(extract func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extract(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization token is required",
			})
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}
