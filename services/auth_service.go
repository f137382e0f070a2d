package services

import (
	"errors"
	"gin-ratings/models"
	"gin-ratings/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type IAuthService interface {
	Login(email string, password string) (*models.User, *string, error)
	GetPrincipal(userID uint) (*models.User, error)
	GetClaimsFromToken(tokenString string) (*Claims, error)
}

type AuthService struct {
	repository   repositories.IUserRepository
	tokenService ITokenService
}

func NewAuthService(repository repositories.IUserRepository, tokenService ITokenService) IAuthService {
	return &AuthService{
		repository:   repository,
		tokenService: tokenService,
	}
}

// Login はメールアドレスとパスワードを検証し、ユーザーとアクセストークンを返す
func (s *AuthService) Login(email string, password string) (*models.User, *string, error) {
	foundUser, err := s.repository.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(foundUser.ID, foundUser.PrimaryRole())
	if err != nil {
		return nil, nil, err
	}

	return foundUser, &token, nil
}

// GetPrincipal はセッションに保存されたユーザーIDからユーザーを読み込む
func (s *AuthService) GetPrincipal(userID uint) (*models.User, error) {
	user, err := s.repository.FindById(userID)
	if err != nil {
		return nil, translate(err, ErrUserNotFound)
	}
	return user, nil
}

func (s *AuthService) GetClaimsFromToken(tokenString string) (*Claims, error) {
	return s.tokenService.ParseToken(tokenString)
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}
