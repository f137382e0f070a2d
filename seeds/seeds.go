package seeds

import (
	"gin-ratings/constants"
	"gin-ratings/models"
	"gin-ratings/services"
	"log"

	"gorm.io/gorm"
)

type seedUser struct {
	username string
	email    string
	password string
	role     string
}

var defaultUsers = []seedUser{
	{username: "admin", email: "admin@example.com", password: "adminpassword", role: constants.RoleAdmin},
	{username: "user", email: "user@example.com", password: "userpassword", role: constants.RoleUser},
}

// Seed は初期ロールとユーザーを作成する。既に存在するものはそのまま残す
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		roles := map[string]*models.Role{}
		for _, name := range []string{constants.RoleAdmin, constants.RoleUser} {
			role := models.Role{}
			if err := tx.Where(models.Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
				return err
			}
			roles[name] = &role
		}

		for _, u := range defaultUsers {
			var count int64
			if err := tx.Model(&models.User{}).Where("email = ? OR username = ?", u.email, u.username).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			hashedPassword, err := services.HashPassword(u.password)
			if err != nil {
				return err
			}
			user := models.User{
				Username:     u.username,
				Email:        u.email,
				PasswordHash: hashedPassword,
				Roles:        []models.Role{*roles[u.role]},
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			log.Printf("Seeded user: %s (%s)", u.email, u.role)
		}
		return nil
	})
}
