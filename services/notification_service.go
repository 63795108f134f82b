package services

import (
	"fmt"
	"log"
	"time"

	"gyanpod-api/config"
	"gyanpod-api/models"

	"gorm.io/gorm"
)

// NotificationService persists per-user notifications and sends best-effort
// decision emails. Business logic never depends on delivery succeeding.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Notify stores a notification row for the user.
func (s *NotificationService) Notify(userID int, title, message, kind string, submissionID *int) error {
	notification := models.Notification{
		UserID:              userID,
		Title:               title,
		Message:             message,
		Type:                kind,
		RelatedSubmissionID: submissionID,
		CreateAt:            time.Now(),
	}
	if err := s.db.Create(&notification).Error; err != nil {
		return persistenceErr("create notification", err)
	}
	return nil
}

// NotifyDecision informs the author about the review outcome, both in-app
// and by email. Failures are logged and swallowed: the decision itself has
// already been recorded.
func (s *NotificationService) NotifyDecision(submission *models.Submission) {
	if submission == nil {
		return
	}

	var title, message, kind string
	switch submission.Status {
	case models.SubmissionStatusApproved:
		title = "Content Approved"
		message = fmt.Sprintf("Your %s \"%s\" has been approved.", submission.Type, submission.Title)
		kind = "success"
	case models.SubmissionStatusRejected:
		reason := ""
		if submission.RejectionReason != nil {
			reason = *submission.RejectionReason
		}
		title = "Content Rejected"
		message = fmt.Sprintf("Your %s \"%s\" was rejected: %s", submission.Type, submission.Title, reason)
		kind = "error"
	default:
		return
	}

	submissionID := submission.SubmissionID
	if err := s.Notify(submission.AuthorID, title, message, kind, &submissionID); err != nil {
		log.Printf("[NotificationService] notify author %d: %v", submission.AuthorID, err)
	}

	if submission.AuthorEmail != "" {
		html := fmt.Sprintf("<p>Hi %s,</p><p>%s</p><p>Submission ref: %s</p>",
			submission.AuthorName, message, submission.SubmissionNumber)
		if err := config.SendMail([]string{submission.AuthorEmail}, title, html); err != nil {
			log.Printf("[NotificationService] email author %d: %v", submission.AuthorID, err)
		}
	}
}

// ListForUser returns the user's notifications, newest first.
func (s *NotificationService) ListForUser(userID int, unreadOnly bool, limit int) ([]models.Notification, error) {
	q := s.db.Where("user_id = ?", userID).Order("create_at DESC")
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var notifications []models.Notification
	if err := q.Find(&notifications).Error; err != nil {
		return nil, persistenceErr("list notifications", err)
	}
	return notifications, nil
}

// MarkRead flags one of the user's notifications as read.
func (s *NotificationService) MarkRead(id, userID int) error {
	now := time.Now()
	res := s.db.Model(&models.Notification{}).
		Where("notification_id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{"is_read": true, "update_at": now})
	if res.Error != nil {
		return persistenceErr("mark notification read", res.Error)
	}
	if res.RowsAffected == 0 {
		// Either absent or already read; re-check existence for the caller.
		var count int64
		if err := s.db.Model(&models.Notification{}).
			Where("notification_id = ? AND user_id = ?", id, userID).
			Count(&count).Error; err != nil {
			return persistenceErr("check notification", err)
		}
		if count == 0 {
			return ErrNotFound
		}
	}
	return nil
}
