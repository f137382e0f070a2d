package dto

import "gin-ratings/models"

type RoleInput struct {
	Name string `json:"name" binding:"required"`
}

type RoleResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewRoleResponse(role *models.Role) RoleResponse {
	return RoleResponse{ID: role.ID, Name: role.Name}
}

func NewRoleResponses(roles []models.Role) []RoleResponse {
	responses := make([]RoleResponse, 0, len(roles))
	for i := range roles {
		responses = append(responses, NewRoleResponse(&roles[i]))
	}
	return responses
}
