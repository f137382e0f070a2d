package controllers

import (
	"errors"
	"gin-ratings/constants"
	"gin-ratings/dto"
	"gin-ratings/middlewares"
	"gin-ratings/services"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	Profile(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

// Login はセッションを開始し、アクセストークンを返す
func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if !bindJSON(ctx, &input) {
		return
	}

	user, token, err := c.service.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": constants.ErrInvalidCredentials})
			return
		}
		log.Printf("Login error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	session := sessions.Default(ctx)
	session.Clear()
	session.Set(constants.SessionKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		log.Printf("Session save error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Message:     "Logged in successfully",
		AccessToken: *token,
	})
}

// Logout はセッションを破棄する（トークンは失効させない）
func (c *AuthController) Logout(ctx *gin.Context) {
	if _, ok := middlewares.BearerToken(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": constants.ErrTokenMissing})
		return
	}

	session := sessions.Default(ctx)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		log.Printf("Session save error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to logout"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (c *AuthController) Profile(ctx *gin.Context) {
	user, ok := middlewares.CurrentUser(ctx)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": constants.ErrLoginRequired})
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfileResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Roles:    user.RoleNames(),
	})
}
