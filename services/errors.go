package services

import (
	"errors"
	"gin-ratings/constants"
	"gin-ratings/repositories"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New(constants.ErrUserNotFound)
	ErrRoleNotFound       = errors.New(constants.ErrRoleNotFound)
	ErrReviewNotFound     = errors.New(constants.ErrReviewNotFound)
	ErrAlreadyExists      = errors.New("already exists")
	ErrInUse              = errors.New("still referenced")
	ErrInvalidCredentials = errors.New(constants.ErrInvalidCredentials)
)

// translate はリポジトリのエラーをサービスのエラーに変換する
func translate(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case repositories.IsDuplicateKey(err):
		return ErrAlreadyExists
	case repositories.IsForeignKeyViolation(err):
		return ErrInUse
	default:
		return err
	}
}
