package controllers

import (
	"log"
	"net/http"

	"gyanpod-api/config"
	"gyanpod-api/models"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns moderation and content counters for the admin
// review screen.
func GetDashboardStats(c *gin.Context) {
	statusCounts := map[string]int64{}
	for _, status := range []string{
		models.SubmissionStatusPending,
		models.SubmissionStatusApproved,
		models.SubmissionStatusRejected,
	} {
		var count int64
		if err := config.DB.Model(&models.Submission{}).
			Where("status = ? AND delete_at IS NULL", status).
			Count(&count).Error; err != nil {
			log.Printf("[GetDashboardStats] count %s submissions: %v", status, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
			return
		}
		statusCounts[status] = count
	}

	typeCounts := map[string]int64{}
	for _, contentType := range []string{
		models.ContentTypeNotes,
		models.ContentTypeQuiz,
		models.ContentTypePaper,
		models.ContentTypeVideo,
	} {
		var count int64
		if err := config.DB.Model(&models.Content{}).
			Where("type = ? AND status = ? AND delete_at IS NULL", contentType, models.ContentStatusPublished).
			Count(&count).Error; err != nil {
			log.Printf("[GetDashboardStats] count %s content: %v", contentType, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
			return
		}
		typeCounts[contentType] = count
	}

	var totals struct {
		Views int64
		Likes int64
	}
	if err := config.DB.Model(&models.Content{}).
		Select("COALESCE(SUM(view_count),0) AS views, COALESCE(SUM(like_count),0) AS likes").
		Where("delete_at IS NULL").
		Scan(&totals).Error; err != nil {
		log.Printf("[GetDashboardStats] sum counters: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions":       statusCounts,
		"published_content": typeCounts,
		"total_views":       totals.Views,
		"total_likes":       totals.Likes,
	})
}
