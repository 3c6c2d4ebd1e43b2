package handlers

import (
	"net/http"

	"github.com/maramilod/alx-backend/internal/auth"
	"github.com/maramilod/alx-backend/internal/database"

	"github.com/gin-gonic/gin"
)

// LoginRequest represents the login request payload
type LoginRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	Token   string `json:"token"`
	UserID  uint   `json:"user_id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Login handles the login endpoint for users of the directory
// POST /api/login
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request. user_id is required.",
		})
		return
	}

	user, err := database.FindUser(database.GetDB(), req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch user",
		})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Unknown user",
		})
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:   token,
		UserID:  user.ID,
		Name:    user.Name,
		Message: "Login successful",
	})
}
