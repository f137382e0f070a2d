package services

import (
	"gin-ratings/models"
	"gin-ratings/repositories"
)

type IRoleService interface {
	FindAll() (*[]models.Role, error)
	FindById(roleID uint) (*models.Role, error)
	Create(name string) (*models.Role, error)
	Update(roleID uint, name string) (*models.Role, error)
	Delete(roleID uint) error
}

type RoleService struct {
	repository repositories.IRoleRepository
}

func NewRoleService(repository repositories.IRoleRepository) IRoleService {
	return &RoleService{repository: repository}
}

func (s *RoleService) FindAll() (*[]models.Role, error) {
	return s.repository.FindAll()
}

func (s *RoleService) FindById(roleID uint) (*models.Role, error) {
	role, err := s.repository.FindById(roleID)
	if err != nil {
		return nil, translate(err, ErrRoleNotFound)
	}
	return role, nil
}

func (s *RoleService) Create(name string) (*models.Role, error) {
	role, err := s.repository.Create(models.Role{Name: name})
	if err != nil {
		return nil, translate(err, ErrRoleNotFound)
	}
	return role, nil
}

func (s *RoleService) Update(roleID uint, name string) (*models.Role, error) {
	role, err := s.repository.Update(roleID, name)
	if err != nil {
		return nil, translate(err, ErrRoleNotFound)
	}
	return role, nil
}

func (s *RoleService) Delete(roleID uint) error {
	return translate(s.repository.Delete(roleID), ErrRoleNotFound)
}
