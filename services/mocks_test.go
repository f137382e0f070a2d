package services

import (
	"gin-ratings/models"

	"github.com/stretchr/testify/mock"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindAll() (*[]models.User, error) {
	args := m.Called()
	users, _ := args.Get(0).(*[]models.User)
	return users, args.Error(1)
}

func (m *mockUserRepository) FindById(userID uint) (*models.User, error) {
	args := m.Called(userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) Create(newUser models.User) (*models.User, error) {
	args := m.Called(newUser)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) Update(user *models.User, updates map[string]interface{}, roles []models.Role) (*models.User, error) {
	args := m.Called(user, updates, roles)
	updated, _ := args.Get(0).(*models.User)
	return updated, args.Error(1)
}

func (m *mockUserRepository) Delete(userID uint) error {
	return m.Called(userID).Error(0)
}

func (m *mockUserRepository) CountReviews(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockRoleRepository struct {
	mock.Mock
}

func (m *mockRoleRepository) FindAll() (*[]models.Role, error) {
	args := m.Called()
	roles, _ := args.Get(0).(*[]models.Role)
	return roles, args.Error(1)
}

func (m *mockRoleRepository) FindById(roleID uint) (*models.Role, error) {
	args := m.Called(roleID)
	role, _ := args.Get(0).(*models.Role)
	return role, args.Error(1)
}

func (m *mockRoleRepository) FindByName(name string) (*models.Role, error) {
	args := m.Called(name)
	role, _ := args.Get(0).(*models.Role)
	return role, args.Error(1)
}

func (m *mockRoleRepository) FindByNames(names []string) ([]models.Role, error) {
	args := m.Called(names)
	roles, _ := args.Get(0).([]models.Role)
	return roles, args.Error(1)
}

func (m *mockRoleRepository) Create(newRole models.Role) (*models.Role, error) {
	args := m.Called(newRole)
	role, _ := args.Get(0).(*models.Role)
	return role, args.Error(1)
}

func (m *mockRoleRepository) Update(roleID uint, name string) (*models.Role, error) {
	args := m.Called(roleID, name)
	role, _ := args.Get(0).(*models.Role)
	return role, args.Error(1)
}

func (m *mockRoleRepository) Delete(roleID uint) error {
	return m.Called(roleID).Error(0)
}

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) FindAll() (*[]models.Review, error) {
	args := m.Called()
	reviews, _ := args.Get(0).(*[]models.Review)
	return reviews, args.Error(1)
}

func (m *mockReviewRepository) FindById(reviewID uint) (*models.Review, error) {
	args := m.Called(reviewID)
	review, _ := args.Get(0).(*models.Review)
	return review, args.Error(1)
}

func (m *mockReviewRepository) FindByUserId(userID uint) (*[]models.Review, error) {
	args := m.Called(userID)
	reviews, _ := args.Get(0).(*[]models.Review)
	return reviews, args.Error(1)
}

func (m *mockReviewRepository) Create(newReview models.Review) (*models.Review, error) {
	args := m.Called(newReview)
	review, _ := args.Get(0).(*models.Review)
	return review, args.Error(1)
}

func (m *mockReviewRepository) Update(reviewID uint, content string) (*models.Review, error) {
	args := m.Called(reviewID, content)
	review, _ := args.Get(0).(*models.Review)
	return review, args.Error(1)
}

func (m *mockReviewRepository) Delete(reviewID uint) error {
	return m.Called(reviewID).Error(0)
}
