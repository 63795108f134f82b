// controllers/admin_user.go
package controllers

import (
	"net/http"
	"strconv"

	"gyanpod-api/config"
	"gyanpod-api/models"
	"gyanpod-api/services"

	"github.com/gin-gonic/gin"
)

var adminRoleFilters = map[string]int{
	"student": models.RoleStudent,
	"teacher": models.RoleTeacher,
	"parent":  models.RoleParent,
	"admin":   models.RoleAdmin,
}

// AdminListUsers lists accounts, optionally filtered by ?role= and ?status=.
func AdminListUsers(c *gin.Context) {
	roleID := 0
	if role := c.Query("role"); role != "" {
		id, ok := adminRoleFilters[role]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role filter"})
			return
		}
		roleID = id
	}

	status := c.Query("status")
	if status != "" && status != models.UserStatusActive && status != models.UserStatusSuspended {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
		return
	}

	svc := services.NewUserService(config.DB)
	users, err := svc.List(roleID, status)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"total": len(users),
	})
}

// AdminUpdateUserStatus activates or suspends an account.
func AdminUpdateUserStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	actorID, ok := getCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	svc := services.NewUserService(config.DB)
	user, err := svc.SetStatus(id, actorID, req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Account status updated successfully",
		"user":    user,
	})
}
