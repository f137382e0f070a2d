package controllers

import (
	"fmt"
	"gin-ratings/constants"
	"gin-ratings/dto"
	"gin-ratings/services"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IRoleController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type RoleController struct {
	service services.IRoleService
}

func NewRoleController(service services.IRoleService) IRoleController {
	return &RoleController{service: service}
}

func (c *RoleController) FindAll(ctx *gin.Context) {
	roles, err := c.service.FindAll()
	if err != nil {
		log.Printf("Find roles error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.NewRoleResponses(*roles))
}

func (c *RoleController) FindById(ctx *gin.Context) {
	roleID, ok := parseID(ctx)
	if !ok {
		return
	}

	role, err := c.service.FindById(roleID)
	if err != nil {
		respondError(ctx, err, constants.ErrRoleExists)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewRoleResponse(role))
}

func (c *RoleController) Create(ctx *gin.Context) {
	var input dto.RoleInput
	if !bindJSON(ctx, &input) {
		return
	}

	newRole, err := c.service.Create(input.Name)
	if err != nil {
		respondError(ctx, err, constants.ErrRoleExists)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Role '%s' created successfully.", newRole.Name),
		"role":    dto.NewRoleResponse(newRole),
	})
}

func (c *RoleController) Update(ctx *gin.Context) {
	roleID, ok := parseID(ctx)
	if !ok {
		return
	}

	var input dto.RoleInput
	if !bindJSON(ctx, &input) {
		return
	}

	updatedRole, err := c.service.Update(roleID, input.Name)
	if err != nil {
		respondError(ctx, err, constants.ErrRoleExists)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Role '%s' updated successfully.", updatedRole.Name),
		"role":    dto.NewRoleResponse(updatedRole),
	})
}

func (c *RoleController) Delete(ctx *gin.Context) {
	roleID, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(roleID); err != nil {
		respondError(ctx, err, constants.ErrRoleExists)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Role deleted successfully."})
}
