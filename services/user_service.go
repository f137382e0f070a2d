package services

import (
	"gin-ratings/dto"
	"gin-ratings/models"
	"gin-ratings/repositories"
)

type IUserService interface {
	FindAll() (*[]models.User, error)
	FindById(userID uint) (*models.User, error)
	Create(createUserInput dto.CreateUserInput) (*models.User, error)
	Update(userID uint, updateUserInput dto.UpdateUserInput) (*models.User, error)
	Delete(userID uint) error
}

type UserService struct {
	repository     repositories.IUserRepository
	roleRepository repositories.IRoleRepository
}

func NewUserService(repository repositories.IUserRepository, roleRepository repositories.IRoleRepository) IUserService {
	return &UserService{
		repository:     repository,
		roleRepository: roleRepository,
	}
}

func (s *UserService) FindAll() (*[]models.User, error) {
	return s.repository.FindAll()
}

func (s *UserService) FindById(userID uint) (*models.User, error) {
	user, err := s.repository.FindById(userID)
	if err != nil {
		return nil, translate(err, ErrUserNotFound)
	}
	return user, nil
}

func (s *UserService) Create(createUserInput dto.CreateUserInput) (*models.User, error) {
	hashedPassword, err := HashPassword(createUserInput.Password)
	if err != nil {
		return nil, err
	}

	roles, err := s.roleRepository.FindByNames(createUserInput.Roles)
	if err != nil {
		return nil, err
	}

	newUser := models.User{
		Username:     createUserInput.Username,
		Email:        createUserInput.Email,
		PasswordHash: hashedPassword,
		Roles:        roles,
	}
	user, err := s.repository.Create(newUser)
	if err != nil {
		return nil, translate(err, ErrUserNotFound)
	}
	return user, nil
}

// Update は指定されたフィールドのみ更新する。roles が空でなければロールを置き換える
func (s *UserService) Update(userID uint, updateUserInput dto.UpdateUserInput) (*models.User, error) {
	targetUser, err := s.FindById(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if updateUserInput.Username != nil && *updateUserInput.Username != "" {
		updates["username"] = *updateUserInput.Username
	}
	if updateUserInput.Email != nil && *updateUserInput.Email != "" {
		updates["email"] = *updateUserInput.Email
	}
	if updateUserInput.Password != nil && *updateUserInput.Password != "" {
		hashedPassword, err := HashPassword(*updateUserInput.Password)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = hashedPassword
	}

	var roles []models.Role
	if len(updateUserInput.Roles) > 0 {
		roles, err = s.roleRepository.FindByNames(updateUserInput.Roles)
		if err != nil {
			return nil, err
		}
	}

	user, err := s.repository.Update(targetUser, updates, roles)
	if err != nil {
		return nil, translate(err, ErrUserNotFound)
	}
	return user, nil
}

// Delete はレビューを持つユーザーの削除を拒否する
func (s *UserService) Delete(userID uint) error {
	if _, err := s.FindById(userID); err != nil {
		return err
	}

	count, err := s.repository.CountReviews(userID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrInUse
	}

	return translate(s.repository.Delete(userID), ErrUserNotFound)
}
