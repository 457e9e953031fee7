// controllers/auth.go
package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"invoice-dashboard/models"
	"invoice-dashboard/repository"
	"invoice-dashboard/utils"

	"github.com/gin-gonic/gin"
)

type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type AuthController struct {
	users UserFinder
	auth  *utils.Authenticator
}

func NewAuthController(users UserFinder, auth *utils.Authenticator) *AuthController {
	return &AuthController{users: users, auth: auth}
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	user, err := ac.users.FindByEmail(c.Request.Context(), strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := ac.auth.GenerateToken(user.ID.String(), user.Email)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.SetCookie("token", token, int(ac.auth.Expiry().Seconds()), "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// Me echoes the identity carried by the session token.
func (ac *AuthController) Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    userID,
			"email": c.GetString("email"),
		},
	})
}
