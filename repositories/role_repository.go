package repositories

import (
	"gin-ratings/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IRoleRepository interface {
	FindAll() (*[]models.Role, error)
	FindById(roleID uint) (*models.Role, error)
	FindByName(name string) (*models.Role, error)
	FindByNames(names []string) ([]models.Role, error)
	Create(newRole models.Role) (*models.Role, error)
	Update(roleID uint, name string) (*models.Role, error)
	Delete(roleID uint) error
}

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) IRoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) FindAll() (*[]models.Role, error) {
	var roles []models.Role
	result := r.db.Order("id").Find(&roles)
	if result.Error != nil {
		return nil, result.Error
	}
	return &roles, nil
}

func (r *RoleRepository) FindById(roleID uint) (*models.Role, error) {
	var role models.Role
	result := r.db.First(&role, "id = ?", roleID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &role, nil
}

func (r *RoleRepository) FindByName(name string) (*models.Role, error) {
	var role models.Role
	result := r.db.First(&role, "name = ?", name)
	if result.Error != nil {
		return nil, result.Error
	}
	return &role, nil
}

// FindByNames は存在するロールのみを返す（存在しない名前は無視）
func (r *RoleRepository) FindByNames(names []string) ([]models.Role, error) {
	roles := []models.Role{}
	if len(names) == 0 {
		return roles, nil
	}
	result := r.db.Where("name IN ?", names).Order("id").Find(&roles)
	if result.Error != nil {
		return nil, result.Error
	}
	return roles, nil
}

func (r *RoleRepository) Create(newRole models.Role) (*models.Role, error) {
	result := r.db.Create(&newRole)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newRole, nil
}

func (r *RoleRepository) Update(roleID uint, name string) (*models.Role, error) {
	result := r.db.Model(&models.Role{}).
		Where("id = ?", roleID).
		Update("name", name)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.FindById(roleID)
}

// Delete はロールと user_roles の紐付けを削除する
func (r *RoleRepository) Delete(roleID uint) error {
	role := models.Role{ID: roleID}
	result := r.db.Select(clause.Associations).Delete(&role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
