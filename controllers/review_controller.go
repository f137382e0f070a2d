package controllers

import (
	"gin-ratings/constants"
	"gin-ratings/dto"
	"gin-ratings/services"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IReviewController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ReviewController struct {
	service services.IReviewService
}

func NewReviewController(service services.IReviewService) IReviewController {
	return &ReviewController{service: service}
}

func (c *ReviewController) FindAll(ctx *gin.Context) {
	reviews, err := c.service.FindAll()
	if err != nil {
		log.Printf("Find reviews error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.NewReviewResponses(*reviews))
}

func (c *ReviewController) FindById(ctx *gin.Context) {
	reviewID, ok := parseID(ctx)
	if !ok {
		return
	}

	review, err := c.service.FindById(reviewID)
	if err != nil {
		respondError(ctx, err, constants.ErrUnexpected)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewReviewResponse(review))
}

func (c *ReviewController) Create(ctx *gin.Context) {
	var input dto.CreateReviewInput
	if !bindJSON(ctx, &input) {
		return
	}

	newReview, err := c.service.Create(input)
	if err != nil {
		respondError(ctx, err, constants.ErrUnexpected)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Review created successfully.",
		"review":  dto.NewReviewResponse(newReview),
	})
}

func (c *ReviewController) Update(ctx *gin.Context) {
	reviewID, ok := parseID(ctx)
	if !ok {
		return
	}

	var input dto.UpdateReviewInput
	if !bindJSON(ctx, &input) {
		return
	}

	updatedReview, err := c.service.Update(reviewID, input)
	if err != nil {
		respondError(ctx, err, constants.ErrUnexpected)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Review updated successfully.",
		"review":  dto.NewReviewResponse(updatedReview),
	})
}

func (c *ReviewController) Delete(ctx *gin.Context) {
	reviewID, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(reviewID); err != nil {
		respondError(ctx, err, constants.ErrUnexpected)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully."})
}
