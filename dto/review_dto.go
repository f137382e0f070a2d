package dto

import (
	"gin-ratings/models"
	"time"
)

type CreateReviewInput struct {
	Content string `json:"content" binding:"required"`
	UserID  *uint  `json:"user_id" binding:"required"`
}

type UpdateReviewInput struct {
	Content string `json:"content" binding:"required"`
}

type ReviewAuthor struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type ReviewResponse struct {
	ID        uint         `json:"id"`
	Content   string       `json:"content"`
	UserID    uint         `json:"user_id"`
	User      ReviewAuthor `json:"user"`
	CreatedAt time.Time    `json:"created_at"`
}

func NewReviewResponse(review *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:      review.ID,
		Content: review.Content,
		UserID:  review.UserID,
		User: ReviewAuthor{
			ID:       review.User.ID,
			Username: review.User.Username,
		},
		CreatedAt: review.CreatedAt,
	}
}

func NewReviewResponses(reviews []models.Review) []ReviewResponse {
	responses := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, NewReviewResponse(&reviews[i]))
	}
	return responses
}
