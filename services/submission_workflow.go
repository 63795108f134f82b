package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gyanpod-api/models"
	"gyanpod-api/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionService enforces the submission lifecycle: a teacher submits
// content, an admin records exactly one approve/reject decision, and the
// record is terminal afterwards.
type SubmissionService struct {
	db *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{db: db}
}

// Author is the denormalized identity of the submitting teacher.
type Author struct {
	ID    int
	Name  string
	Email string
}

// SubmitInput carries the caller-supplied submission metadata.
type SubmitInput struct {
	Type       string
	Title      string
	Topic      string
	Body       string
	VideoURL   string
	ClassLevel string
	Subject    string
}

// DraftUpdate carries pending-only metadata edits. Nil fields are left
// unchanged.
type DraftUpdate struct {
	Title      *string
	Topic      *string
	Body       *string
	VideoURL   *string
	ClassLevel *string
	Subject    *string
}

func normalizeSubmitInput(in SubmitInput) SubmitInput {
	in.Type = strings.TrimSpace(in.Type)
	in.Title = utils.SanitizeInput(in.Title)
	in.Topic = utils.SanitizeInput(in.Topic)
	in.Body = utils.SanitizeInput(in.Body)
	in.VideoURL = strings.TrimSpace(in.VideoURL)
	in.ClassLevel = strings.TrimSpace(in.ClassLevel)
	in.Subject = strings.TrimSpace(in.Subject)
	return in
}

// validateSubmission checks author identity and type-appropriate metadata.
func validateSubmission(author Author, in SubmitInput) error {
	if author.ID <= 0 {
		return newValidationError("author_id", "author id is required")
	}
	if strings.TrimSpace(author.Name) == "" {
		return newValidationError("author_name", "author name is required")
	}
	if !utils.ValidateEmail(author.Email) {
		return newValidationError("author_email", "author email is invalid")
	}
	if !utils.ValidateContentType(in.Type) {
		return newValidationError("type", "type must be one of notes, quiz, paper, video")
	}
	if in.Title == "" {
		return newValidationError("title", "title is required")
	}
	if !utils.ValidateClass(in.ClassLevel) {
		return newValidationError("class", "class must be between 1 and 12")
	}
	if !utils.ValidateSubject(in.Subject) {
		return newValidationError("subject", "unknown subject")
	}

	switch in.Type {
	case models.ContentTypeNotes, models.ContentTypeQuiz:
		if in.Body == "" {
			return newValidationError("content", "content body is required")
		}
	case models.ContentTypeVideo:
		if !utils.ValidateURL(in.VideoURL) {
			return newValidationError("video_url", "a well-formed absolute URL is required")
		}
	}
	return nil
}

// newSubmissionNumber builds a human-readable unique reference.
func newSubmissionNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("SUB-%s-%s", now.Format("20060102"), suffix)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Submit validates the input and persists a new pending submission. The
// write is a single insert: either the full record exists or none of it.
func (s *SubmissionService) Submit(author Author, in SubmitInput) (*models.Submission, error) {
	in = normalizeSubmitInput(in)
	if err := validateSubmission(author, in); err != nil {
		return nil, err
	}

	now := time.Now()
	submission := models.Submission{
		SubmissionNumber: newSubmissionNumber(now),
		Type:             in.Type,
		Title:            in.Title,
		Topic:            optional(in.Topic),
		ClassLevel:       in.ClassLevel,
		Subject:          in.Subject,
		AuthorID:         author.ID,
		AuthorName:       strings.TrimSpace(author.Name),
		AuthorEmail:      strings.TrimSpace(author.Email),
		Status:           models.SubmissionStatusPending,
		SubmittedAt:      now,
	}
	switch in.Type {
	case models.ContentTypeVideo:
		submission.VideoURL = optional(in.VideoURL)
	default:
		submission.Body = optional(in.Body)
	}

	if err := s.db.Create(&submission).Error; err != nil {
		return nil, persistenceErr("create submission", err)
	}
	return &submission, nil
}

// Get returns a single submission by id.
func (s *SubmissionService) Get(id int) (*models.Submission, error) {
	var submission models.Submission
	err := s.db.Where("submission_id = ? AND delete_at IS NULL", id).First(&submission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistenceErr("load submission", err)
	}
	return &submission, nil
}

// ListPending returns submissions awaiting review, newest first. A limit of
// zero means no limit.
func (s *SubmissionService) ListPending(limit int) ([]models.Submission, error) {
	return s.ListByStatus(models.SubmissionStatusPending, limit)
}

// ListByStatus returns submissions with the given status, newest first. An
// empty status means any status.
func (s *SubmissionService) ListByStatus(status string, limit int) ([]models.Submission, error) {
	q := s.db.Where("delete_at IS NULL").Order("submitted_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var submissions []models.Submission
	if err := q.Find(&submissions).Error; err != nil {
		return nil, persistenceErr("list submissions", err)
	}
	return submissions, nil
}

// ListByAuthor returns the author's own submissions, newest first.
func (s *SubmissionService) ListByAuthor(authorID int) ([]models.Submission, error) {
	var submissions []models.Submission
	err := s.db.Where("author_id = ? AND delete_at IS NULL", authorID).
		Order("submitted_at DESC").
		Find(&submissions).Error
	if err != nil {
		return nil, persistenceErr("list author submissions", err)
	}
	return submissions, nil
}

// Documents lists the files attached to a submission.
func (s *SubmissionService) Documents(id int) ([]models.FileUpload, error) {
	var files []models.FileUpload
	err := s.db.Where("submission_id = ? AND delete_at IS NULL", id).Find(&files).Error
	if err != nil {
		return nil, persistenceErr("list documents", err)
	}
	return files, nil
}

// UpdateDraft applies metadata edits to the author's own pending submission.
// Submissions that already received a decision are immutable.
func (s *SubmissionService) UpdateDraft(id, authorID int, changes DraftUpdate) (*models.Submission, error) {
	submission, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if submission.AuthorID != authorID {
		return nil, ErrNotFound
	}
	if !submission.IsPending() {
		return nil, ErrInvalidStateTransition
	}

	updates := map[string]interface{}{}
	if changes.Title != nil {
		title := utils.SanitizeInput(*changes.Title)
		if title == "" {
			return nil, newValidationError("title", "title is required")
		}
		updates["title"] = title
	}
	if changes.Topic != nil {
		updates["topic"] = utils.SanitizeInput(*changes.Topic)
	}
	if changes.Body != nil {
		if submission.Type == models.ContentTypeVideo {
			return nil, newValidationError("content", "content body does not apply to video submissions")
		}
		body := utils.SanitizeInput(*changes.Body)
		if body == "" && (submission.Type == models.ContentTypeNotes || submission.Type == models.ContentTypeQuiz) {
			return nil, newValidationError("content", "content body is required")
		}
		updates["body"] = body
	}
	if changes.VideoURL != nil {
		if submission.Type != models.ContentTypeVideo {
			return nil, newValidationError("video_url", "video url applies only to video submissions")
		}
		if !utils.ValidateURL(*changes.VideoURL) {
			return nil, newValidationError("video_url", "a well-formed absolute URL is required")
		}
		updates["video_url"] = strings.TrimSpace(*changes.VideoURL)
	}
	if changes.ClassLevel != nil {
		if !utils.ValidateClass(*changes.ClassLevel) {
			return nil, newValidationError("class", "class must be between 1 and 12")
		}
		updates["class_level"] = *changes.ClassLevel
	}
	if changes.Subject != nil {
		if !utils.ValidateSubject(*changes.Subject) {
			return nil, newValidationError("subject", "unknown subject")
		}
		updates["subject"] = *changes.Subject
	}
	if len(updates) == 0 {
		return submission, nil
	}
	updates["update_at"] = time.Now()

	res := s.db.Model(&models.Submission{}).
		Where("submission_id = ? AND status = ? AND delete_at IS NULL", id, models.SubmissionStatusPending).
		Updates(updates)
	if res.Error != nil {
		return nil, persistenceErr("update draft", res.Error)
	}
	if res.RowsAffected == 0 {
		// A decision landed between the read and the write.
		return nil, ErrInvalidStateTransition
	}
	return s.Get(id)
}

// Withdraw soft-deletes the author's own pending submission.
func (s *SubmissionService) Withdraw(id, authorID int) error {
	submission, err := s.Get(id)
	if err != nil {
		return err
	}
	if submission.AuthorID != authorID {
		return ErrNotFound
	}
	if !submission.IsPending() {
		return ErrInvalidStateTransition
	}

	now := time.Now()
	res := s.db.Model(&models.Submission{}).
		Where("submission_id = ? AND status = ? AND delete_at IS NULL", id, models.SubmissionStatusPending).
		Updates(map[string]interface{}{"delete_at": now, "update_at": now})
	if res.Error != nil {
		return persistenceErr("withdraw submission", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrInvalidStateTransition
	}
	return nil
}

// Approve records an approval decision. Only pending submissions can be
// approved; concurrent decisions are arbitrated by the conditional update,
// so the loser observes ErrInvalidStateTransition rather than silently
// re-approving.
func (s *SubmissionService) Approve(id, reviewerID int) (*models.Submission, error) {
	return s.decide(id, reviewerID, models.SubmissionStatusApproved, nil)
}

// Reject records a rejection decision with a mandatory reason.
func (s *SubmissionService) Reject(id, reviewerID int, reason string) (*models.Submission, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, newValidationError("rejection_reason", "rejection reason is required")
	}
	return s.decide(id, reviewerID, models.SubmissionStatusRejected, &reason)
}

func (s *SubmissionService) decide(id, reviewerID int, newStatus string, reason *string) (*models.Submission, error) {
	submission, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !submission.IsPending() {
		return nil, ErrInvalidStateTransition
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":      newStatus,
		"reviewed_at": now,
		"reviewed_by": reviewerID,
		"update_at":   now,
	}
	if reason != nil {
		updates["rejection_reason"] = *reason
	}

	res := s.db.Model(&models.Submission{}).
		Where("submission_id = ? AND status = ? AND delete_at IS NULL", id, models.SubmissionStatusPending).
		Updates(updates)
	if res.Error != nil {
		return nil, persistenceErr("record decision", res.Error)
	}
	if res.RowsAffected == 0 {
		// Another reviewer won the race.
		return nil, ErrInvalidStateTransition
	}

	s.recordStatusChange(id, submission.Status, newStatus, reviewerID, reason, now)
	return s.Get(id)
}

// recordStatusChange appends an audit row. The decision already landed, so
// failures here are logged, not surfaced.
func (s *SubmissionService) recordStatusChange(id int, oldStatus, newStatus string, changedBy int, reason *string, at time.Time) {
	history := models.SubmissionStatusHistory{
		SubmissionID: id,
		OldStatus:    oldStatus,
		NewStatus:    newStatus,
		ChangedBy:    changedBy,
		Reason:       reason,
		CreatedAt:    at,
	}
	if err := s.db.Create(&history).Error; err != nil {
		log.Printf("[SubmissionService] record status history for %d: %v", id, err)
	}
}
