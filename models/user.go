package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"size:80;not null;unique"`
	Email        string    `gorm:"size:120;not null;unique"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time
	Roles        []Role   `gorm:"many2many:user_roles;"`
	Reviews      []Review `gorm:"constraint:OnDelete:RESTRICT;"`
}

// PrimaryRole はトークンに埋め込むロール名を返す（ID順で最初のロール）
func (u *User) PrimaryRole() string {
	if len(u.Roles) == 0 {
		return ""
	}
	first := u.Roles[0]
	for _, role := range u.Roles[1:] {
		if role.ID < first.ID {
			first = role
		}
	}
	return first.Name
}

func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		names = append(names, role.Name)
	}
	return names
}
