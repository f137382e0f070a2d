package controllers

import (
	"fmt"
	"gin-ratings/constants"
	"gin-ratings/dto"
	"gin-ratings/services"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IUserController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	FindReviews(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type UserController struct {
	service       services.IUserService
	reviewService services.IReviewService
}

func NewUserController(service services.IUserService, reviewService services.IReviewService) IUserController {
	return &UserController{service: service, reviewService: reviewService}
}

func (c *UserController) FindAll(ctx *gin.Context) {
	users, err := c.service.FindAll()
	if err != nil {
		log.Printf("Find users error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponses(*users))
}

func (c *UserController) FindById(ctx *gin.Context) {
	userID, ok := parseID(ctx)
	if !ok {
		return
	}

	user, err := c.service.FindById(userID)
	if err != nil {
		respondError(ctx, err, constants.ErrUserExists)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// FindReviews はユーザーが投稿したレビューの一覧を返す
func (c *UserController) FindReviews(ctx *gin.Context) {
	userID, ok := parseID(ctx)
	if !ok {
		return
	}

	reviews, err := c.reviewService.FindByUserId(userID)
	if err != nil {
		respondError(ctx, err, constants.ErrUserExists)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewReviewResponses(*reviews))
}

func (c *UserController) Create(ctx *gin.Context) {
	var input dto.CreateUserInput
	if !bindJSON(ctx, &input) {
		return
	}

	newUser, err := c.service.Create(input)
	if err != nil {
		respondError(ctx, err, constants.ErrUserExists)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("User %s created successfully.", newUser.Username),
		"user":    dto.NewUserResponse(newUser),
	})
}

func (c *UserController) Update(ctx *gin.Context) {
	userID, ok := parseID(ctx)
	if !ok {
		return
	}

	var input dto.UpdateUserInput
	if !bindJSON(ctx, &input) {
		return
	}
	if input.IsEmpty() {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidInput})
		return
	}

	updatedUser, err := c.service.Update(userID, input)
	if err != nil {
		respondError(ctx, err, constants.ErrUserExists)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    dto.NewUserResponse(updatedUser),
	})
}

func (c *UserController) Delete(ctx *gin.Context) {
	userID, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(userID); err != nil {
		respondError(ctx, err, constants.ErrUserHasReviews)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
