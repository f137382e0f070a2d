package services

import (
	"errors"
	"gin-ratings/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func hashForTest(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Login(t *testing.T) {
	tokenService := NewTokenService("test-secret", time.Hour)
	user := &models.User{
		ID:           7,
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: hashForTest(t, "adminpassword"),
		Roles:        []models.Role{{ID: 1, Name: "Admin"}, {ID: 2, Name: "User"}},
	}

	repository := new(mockUserRepository)
	repository.On("FindByEmail", "admin@example.com").Return(user, nil)
	service := NewAuthService(repository, tokenService)

	loggedIn, token, err := service.Login("admin@example.com", "adminpassword")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	require.NotNil(t, token)

	claims, err := service.GetClaimsFromToken(*token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "Admin", claims.Role)
	repository.AssertExpectations(t)
}

func TestAuthService_LoginInvalidCredentials(t *testing.T) {
	user := &models.User{ID: 1, Email: "user@example.com", PasswordHash: hashForTest(t, "userpassword")}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(*mockUserRepository)
	}{
		{
			name:     "wrong password",
			email:    "user@example.com",
			password: "nope",
			setup: func(m *mockUserRepository) {
				m.On("FindByEmail", "user@example.com").Return(user, nil)
			},
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: "userpassword",
			setup: func(m *mockUserRepository) {
				m.On("FindByEmail", "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository := new(mockUserRepository)
			tt.setup(repository)
			service := NewAuthService(repository, NewTokenService("test-secret", time.Hour))

			_, token, err := service.Login(tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Nil(t, token)
		})
	}
}

func TestAuthService_LoginRepositoryFailure(t *testing.T) {
	repository := new(mockUserRepository)
	dbErr := errors.New("connection refused")
	repository.On("FindByEmail", "user@example.com").Return(nil, dbErr)
	service := NewAuthService(repository, NewTokenService("test-secret", time.Hour))

	_, _, err := service.Login("user@example.com", "userpassword")
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LoginWithoutRoles(t *testing.T) {
	user := &models.User{ID: 3, Email: "norole@example.com", PasswordHash: hashForTest(t, "password")}
	repository := new(mockUserRepository)
	repository.On("FindByEmail", "norole@example.com").Return(user, nil)
	service := NewAuthService(repository, NewTokenService("test-secret", time.Hour))

	_, token, err := service.Login("norole@example.com", "password")
	require.NoError(t, err)

	claims, err := service.GetClaimsFromToken(*token)
	require.NoError(t, err)
	assert.Empty(t, claims.Role)
}

func TestAuthService_GetPrincipal(t *testing.T) {
	repository := new(mockUserRepository)
	repository.On("FindById", uint(1)).Return(&models.User{ID: 1, Username: "admin"}, nil)
	repository.On("FindById", uint(2)).Return(nil, gorm.ErrRecordNotFound)
	service := NewAuthService(repository, NewTokenService("test-secret", time.Hour))

	user, err := service.GetPrincipal(1)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	_, err = service.GetPrincipal(2)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
