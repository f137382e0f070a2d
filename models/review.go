package models

import "time"

type Review struct {
	ID        uint   `gorm:"primaryKey"`
	Content   string `gorm:"type:text;not null"`
	UserID    uint   `gorm:"not null;index"`
	User      User
	CreatedAt time.Time
}
