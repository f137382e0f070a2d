package services

import (
	"gin-ratings/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRoleService_Create(t *testing.T) {
	roles := new(mockRoleRepository)
	roles.On("Create", models.Role{Name: "Editor"}).Return(&models.Role{ID: 3, Name: "Editor"}, nil).Once()
	roles.On("Create", models.Role{Name: "Admin"}).Return(nil, gorm.ErrDuplicatedKey).Once()

	service := NewRoleService(roles)

	created, err := service.Create("Editor")
	require.NoError(t, err)
	assert.Equal(t, uint(3), created.ID)

	_, err = service.Create("Admin")
	assert.ErrorIs(t, err, ErrAlreadyExists)
	roles.AssertExpectations(t)
}

func TestRoleService_UpdateAndDelete(t *testing.T) {
	roles := new(mockRoleRepository)
	roles.On("Update", uint(3), "Moderator").Return(&models.Role{ID: 3, Name: "Moderator"}, nil)
	roles.On("Update", uint(9), "Ghost").Return(nil, gorm.ErrRecordNotFound)
	roles.On("Update", uint(3), "Admin").Return(nil, gorm.ErrDuplicatedKey)
	roles.On("Delete", uint(9)).Return(gorm.ErrRecordNotFound)

	service := NewRoleService(roles)

	updated, err := service.Update(3, "Moderator")
	require.NoError(t, err)
	assert.Equal(t, "Moderator", updated.Name)

	_, err = service.Update(9, "Ghost")
	assert.ErrorIs(t, err, ErrRoleNotFound)

	_, err = service.Update(3, "Admin")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	assert.ErrorIs(t, service.Delete(9), ErrRoleNotFound)
}
