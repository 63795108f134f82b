package controllers

import (
	"net/http"
	"strconv"

	"gyanpod-api/config"
	"gyanpod-api/services"

	"github.com/gin-gonic/gin"
)

type SubmissionRequest struct {
	Type       string `json:"type" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Topic      string `json:"topic"`
	Content    string `json:"content"`
	VideoURL   string `json:"video_url"`
	ClassLevel string `json:"class" binding:"required"`
	Subject    string `json:"subject" binding:"required"`
}

type DraftUpdateRequest struct {
	Title      *string `json:"title"`
	Topic      *string `json:"topic"`
	Content    *string `json:"content"`
	VideoURL   *string `json:"video_url"`
	ClassLevel *string `json:"class"`
	Subject    *string `json:"subject"`
}

// CreateSubmission lets a teacher propose new content for review.
func CreateSubmission(c *gin.Context) {
	userID, ok := getCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewSubmissionService(config.DB)
	submission, err := svc.Submit(services.Author{
		ID:    userID,
		Name:  getCurrentDisplayName(c),
		Email: getCurrentEmail(c),
	}, services.SubmitInput{
		Type:       req.Type,
		Title:      req.Title,
		Topic:      req.Topic,
		Body:       req.Content,
		VideoURL:   req.VideoURL,
		ClassLevel: req.ClassLevel,
		Subject:    req.Subject,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Content submitted successfully. It will be reviewed by an admin.",
		"submission": submission,
	})
}

// GetMySubmissions lists the calling teacher's submissions, newest first.
func GetMySubmissions(c *gin.Context) {
	userID, ok := getCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	svc := services.NewSubmissionService(config.DB)
	submissions, err := svc.ListByAuthor(userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": submissions,
		"total":       len(submissions),
	})
}

// GetSubmission returns one of the calling teacher's submissions.
func GetSubmission(c *gin.Context) {
	userID, ok := getCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	svc := services.NewSubmissionService(config.DB)
	submission, err := svc.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if submission.AuthorID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"submission": submission})
}

// UpdateSubmission edits a still-pending submission.
func UpdateSubmission(c *gin.Context) {
	userID, ok := getCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	var req DraftUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewSubmissionService(config.DB)
	submission, err := svc.UpdateDraft(id, userID, services.DraftUpdate{
		Title:      req.Title,
		Topic:      req.Topic,
		Body:       req.Content,
		VideoURL:   req.VideoURL,
		ClassLevel: req.ClassLevel,
		Subject:    req.Subject,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Submission updated successfully",
		"submission": submission,
	})
}

// DeleteSubmission withdraws a still-pending submission.
func DeleteSubmission(c *gin.Context) {
	userID, ok := getCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	svc := services.NewSubmissionService(config.DB)
	if err := svc.Withdraw(id, userID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Submission withdrawn successfully",
	})
}
