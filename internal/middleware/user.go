package middleware

import (
	"log"
	"strconv"

	"github.com/maramilod/alx-backend/internal/auth"
	"github.com/maramilod/alx-backend/internal/database"
	"github.com/maramilod/alx-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// UserMiddleware resolves the current user, if any, before the handler runs.
// The login_as query parameter takes precedence over a bearer token. Unknown
// or malformed identities leave the request anonymous.
func UserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		db := database.GetDB()
		if id, ok := requestedUserID(c); ok && db != nil {
			user, err := database.FindUser(db, id)
			if err != nil {
				log.Printf("lookup user %d: %v", id, err)
			} else if user != nil {
				c.Set(ContextUser, user)
			}
		}
		c.Next()
	}
}

func requestedUserID(c *gin.Context) (uint, bool) {
	if raw := c.Query("login_as"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 0)
		if err != nil {
			return 0, false
		}
		return uint(id), true
	}
	if token := bearerToken(c); token != "" {
		if claims, err := auth.ValidateToken(token); err == nil {
			return claims.UserID, true
		}
	}
	return 0, false
}

// CurrentUser returns the user resolved by UserMiddleware, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(ContextUser); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
