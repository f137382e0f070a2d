package repositories

import (
	"gin-ratings/models"

	"gorm.io/gorm"
)

type IUserRepository interface {
	FindAll() (*[]models.User, error)
	FindById(userID uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(newUser models.User) (*models.User, error)
	Update(user *models.User, updates map[string]interface{}, roles []models.Role) (*models.User, error)
	Delete(userID uint) error
	CountReviews(userID uint) (int64, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func preloadRoles(db *gorm.DB) *gorm.DB {
	return db.Preload("Roles", func(db *gorm.DB) *gorm.DB {
		return db.Order("roles.id")
	})
}

func (r *UserRepository) FindAll() (*[]models.User, error) {
	var users []models.User
	result := preloadRoles(r.db).Order("id").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return &users, nil
}

func (r *UserRepository) FindById(userID uint) (*models.User, error) {
	var user models.User
	result := preloadRoles(r.db).First(&user, "id = ?", userID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	result := preloadRoles(r.db).First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

// Create はユーザーとロールの紐付けを1トランザクションで作成する
func (r *UserRepository) Create(newUser models.User) (*models.User, error) {
	result := r.db.Create(&newUser)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.FindById(newUser.ID)
}

// Update は updates のカラムを更新し、roles が nil でなければロールを置き換える
func (r *UserRepository) Update(user *models.User, updates map[string]interface{}, roles []models.Role) (*models.User, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			result := tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		if roles != nil {
			if err := tx.Model(user).Association("Roles").Replace(roles); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindById(user.ID)
}

// Delete はユーザーと user_roles の紐付けを削除する（レビューは削除しない）
func (r *UserRepository) Delete(userID uint) error {
	user := models.User{ID: userID}
	result := r.db.Select("Roles").Delete(&user)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) CountReviews(userID uint) (int64, error) {
	var count int64
	result := r.db.Model(&models.Review{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
