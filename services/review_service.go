package services

import (
	"gin-ratings/dto"
	"gin-ratings/models"
	"gin-ratings/repositories"
)

type IReviewService interface {
	FindAll() (*[]models.Review, error)
	FindById(reviewID uint) (*models.Review, error)
	FindByUserId(userID uint) (*[]models.Review, error)
	Create(createReviewInput dto.CreateReviewInput) (*models.Review, error)
	Update(reviewID uint, updateReviewInput dto.UpdateReviewInput) (*models.Review, error)
	Delete(reviewID uint) error
}

type ReviewService struct {
	repository     repositories.IReviewRepository
	userRepository repositories.IUserRepository
}

func NewReviewService(repository repositories.IReviewRepository, userRepository repositories.IUserRepository) IReviewService {
	return &ReviewService{
		repository:     repository,
		userRepository: userRepository,
	}
}

func (s *ReviewService) FindAll() (*[]models.Review, error) {
	return s.repository.FindAll()
}

func (s *ReviewService) FindById(reviewID uint) (*models.Review, error) {
	review, err := s.repository.FindById(reviewID)
	if err != nil {
		return nil, translate(err, ErrReviewNotFound)
	}
	return review, nil
}

func (s *ReviewService) FindByUserId(userID uint) (*[]models.Review, error) {
	if _, err := s.userRepository.FindById(userID); err != nil {
		return nil, translate(err, ErrUserNotFound)
	}
	return s.repository.FindByUserId(userID)
}

// Create はレビューの投稿者が存在することを確認してから作成する
func (s *ReviewService) Create(createReviewInput dto.CreateReviewInput) (*models.Review, error) {
	userID := *createReviewInput.UserID
	if _, err := s.userRepository.FindById(userID); err != nil {
		return nil, translate(err, ErrUserNotFound)
	}

	newReview := models.Review{
		Content: createReviewInput.Content,
		UserID:  userID,
	}
	review, err := s.repository.Create(newReview)
	if err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Update(reviewID uint, updateReviewInput dto.UpdateReviewInput) (*models.Review, error) {
	review, err := s.repository.Update(reviewID, updateReviewInput.Content)
	if err != nil {
		return nil, translate(err, ErrReviewNotFound)
	}
	return review, nil
}

func (s *ReviewService) Delete(reviewID uint) error {
	return translate(s.repository.Delete(reviewID), ErrReviewNotFound)
}
