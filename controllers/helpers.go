package controllers

import (
	"errors"
	"net/http"

	"gyanpod-api/services"

	"github.com/gin-gonic/gin"
)

func getCurrentUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

func getCurrentDisplayName(c *gin.Context) string {
	if v, exists := c.Get("displayName"); exists {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}

func getCurrentEmail(c *gin.Context) string {
	if v, exists := c.Get("email"); exists {
		if email, ok := v.(string); ok {
			return email
		}
	}
	return ""
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Validation problems are the caller's fault, state-transition conflicts
// tell the moderator to refresh, store failures get a retry affordance.
func writeServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Message,
			"field": validationErr.Field,
		})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, services.ErrInvalidStateTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Submission already received a decision; refresh and re-check its status",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage error, please retry"})
	}
}
