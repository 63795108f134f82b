package controllers

import (
	"net/http"
	"strconv"

	"gyanpod-api/config"
	"gyanpod-api/models"
	"gyanpod-api/services"
	"gyanpod-api/utils"

	"github.com/gin-gonic/gin"
)

// GetContent lists published content for students and parents. Filters
// combine with AND; omitted filters mean any.
func GetContent(c *gin.Context) {
	filter := services.ContentFilter{
		ClassLevel: c.Query("class"),
		Subject:    c.Query("subject"),
		Type:       c.Query("type"),
		Status:     models.ContentStatusPublished,
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		filter.Limit = v
	}

	if filter.ClassLevel != "" && !utils.ValidateClass(filter.ClassLevel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class filter"})
		return
	}
	if filter.Subject != "" && !utils.ValidateSubject(filter.Subject) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subject filter"})
		return
	}
	if filter.Type != "" && !utils.ValidateContentType(filter.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type filter"})
		return
	}

	svc := services.NewContentService(config.DB)
	contents, err := svc.Query(filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"content": contents,
		"total":   len(contents),
	})
}

// GetContentItem returns a single published content record.
func GetContentItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content ID"})
		return
	}

	svc := services.NewContentService(config.DB)
	content, err := svc.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": content})
}

// TrackContentView bumps the view counter. Lost increments under load are
// acceptable; the client fires and forgets.
func TrackContentView(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content ID"})
		return
	}

	svc := services.NewContentService(config.DB)
	if err := svc.IncrementViews(id); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ToggleContentLike flips the caller's like on a piece of content.
func ToggleContentLike(c *gin.Context) {
	userID, ok := getCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content ID"})
		return
	}

	svc := services.NewContentService(config.DB)
	liked, likes, err := svc.ToggleLike(id, userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"liked":   liked,
		"likes":   likes,
	})
}

// GetClasses returns the supported grade levels.
func GetClasses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"classes": utils.Classes})
}

// GetSubjects returns the supported subjects.
func GetSubjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"subjects": utils.Subjects})
}
