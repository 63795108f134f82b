// controllers/admin_submission.go
package controllers

import (
	"net/http"
	"strconv"

	"gyanpod-api/config"
	"gyanpod-api/models"
	"gyanpod-api/services"

	"github.com/gin-gonic/gin"
)

// AdminListSubmissions lists submissions for review, newest first. Defaults
// to the pending queue; ?status= selects another status, ?status=all lists
// everything.
func AdminListSubmissions(c *gin.Context) {
	status := c.DefaultQuery("status", models.SubmissionStatusPending)
	if status == "all" {
		status = ""
	}
	if status != "" &&
		status != models.SubmissionStatusPending &&
		status != models.SubmissionStatusApproved &&
		status != models.SubmissionStatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
		return
	}

	limit := 0
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}

	svc := services.NewSubmissionService(config.DB)
	submissions, err := svc.ListByStatus(status, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": submissions,
		"total":       len(submissions),
	})
}

// AdminGetSubmission returns full submission details for review.
func AdminGetSubmission(c *gin.Context) {
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

	// Attached documents, if any (paper submissions).
	files, err := svc.Documents(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if len(files) > 0 {
		c.JSON(http.StatusOK, gin.H{"submission": submission, "documents": files})
		return
	}

	c.JSON(http.StatusOK, gin.H{"submission": submission})
}

// ApproveSubmission records an approval decision on a pending submission.
func ApproveSubmission(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}
	reviewerID, ok := getCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	svc := services.NewSubmissionService(config.DB)
	submission, err := svc.Approve(id, reviewerID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	services.NewNotificationService(config.DB).NotifyDecision(submission)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Submission approved successfully",
		"submission": submission,
	})
}

// RejectSubmission records a rejection decision with a mandatory reason.
func RejectSubmission(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}
	reviewerID, ok := getCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		RejectionReason string `json:"rejection_reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rejection reason is required"})
		return
	}

	svc := services.NewSubmissionService(config.DB)
	submission, err := svc.Reject(id, reviewerID, req.RejectionReason)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	services.NewNotificationService(config.DB).NotifyDecision(submission)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Submission rejected successfully",
		"submission": submission,
	})
}

// PublishSubmission promotes an approved submission into published content.
// Approval and publication are deliberately separate steps.
func PublishSubmission(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	submissionSvc := services.NewSubmissionService(config.DB)
	submission, err := submissionSvc.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	contentSvc := services.NewContentService(config.DB)
	content, err := contentSvc.PublishSubmission(submission)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Submission published successfully",
		"content": content,
	})
}
