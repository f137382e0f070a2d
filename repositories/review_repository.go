package repositories

import (
	"gin-ratings/models"

	"gorm.io/gorm"
)

type IReviewRepository interface {
	FindAll() (*[]models.Review, error)
	FindById(reviewID uint) (*models.Review, error)
	FindByUserId(userID uint) (*[]models.Review, error)
	Create(newReview models.Review) (*models.Review, error)
	Update(reviewID uint, content string) (*models.Review, error)
	Delete(reviewID uint) error
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) IReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) FindAll() (*[]models.Review, error) {
	var reviews []models.Review
	result := r.db.Preload("User").Order("id").Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}
	return &reviews, nil
}

func (r *ReviewRepository) FindById(reviewID uint) (*models.Review, error) {
	var review models.Review
	result := r.db.Preload("User").First(&review, "id = ?", reviewID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &review, nil
}

func (r *ReviewRepository) FindByUserId(userID uint) (*[]models.Review, error) {
	var reviews []models.Review
	result := r.db.Preload("User").Where("user_id = ?", userID).Order("id").Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}
	return &reviews, nil
}

func (r *ReviewRepository) Create(newReview models.Review) (*models.Review, error) {
	result := r.db.Omit("User").Create(&newReview)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.FindById(newReview.ID)
}

func (r *ReviewRepository) Update(reviewID uint, content string) (*models.Review, error) {
	result := r.db.Model(&models.Review{}).
		Where("id = ?", reviewID).
		Update("content", content)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.FindById(reviewID)
}

func (r *ReviewRepository) Delete(reviewID uint) error {
	result := r.db.Delete(&models.Review{}, "id = ?", reviewID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
