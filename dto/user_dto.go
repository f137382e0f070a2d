package dto

import (
	"gin-ratings/models"
	"time"
)

type CreateUserInput struct {
	Username string   `json:"username" binding:"required"`
	Email    string   `json:"email" binding:"required"`
	Password string   `json:"password" binding:"required"`
	Roles    []string `json:"roles"`
}

// UpdateUserInput は指定されたフィールドのみ更新する
type UpdateUserInput struct {
	Username *string  `json:"username"`
	Email    *string  `json:"email"`
	Password *string  `json:"password"`
	Roles    []string `json:"roles"`
}

// IsEmpty は更新対象が無い場合に true を返す。空文字は未指定として扱う
func (in UpdateUserInput) IsEmpty() bool {
	return isBlank(in.Username) && isBlank(in.Email) && isBlank(in.Password) && len(in.Roles) == 0
}

func isBlank(value *string) bool {
	return value == nil || *value == ""
}

type UserResponse struct {
	ID        uint           `json:"id"`
	Username  string         `json:"username"`
	Email     string         `json:"email"`
	CreatedAt time.Time      `json:"created_at"`
	Roles     []RoleResponse `json:"roles"`
}

func NewUserResponse(user *models.User) UserResponse {
	roles := make([]RoleResponse, 0, len(user.Roles))
	for i := range user.Roles {
		roles = append(roles, NewRoleResponse(&user.Roles[i]))
	}
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		Roles:     roles,
	}
}

func NewUserResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, NewUserResponse(&users[i]))
	}
	return responses
}
