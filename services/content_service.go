package services

import (
	"errors"
	"time"

	"gyanpod-api/models"

	"gorm.io/gorm"
)

// ContentService answers read queries over published content and maintains
// its view/like counters.
type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

// ContentFilter narrows a content query. Empty fields mean "any"; filters
// combine with AND. Limit of zero means no limit.
type ContentFilter struct {
	ClassLevel string
	Subject    string
	Type       string
	Status     string
	Limit      int
}

// Query returns content matching the filter, newest first. No ranking, no
// relevance scoring.
func (s *ContentService) Query(filter ContentFilter) ([]models.Content, error) {
	q := s.db.Where("delete_at IS NULL")
	if filter.ClassLevel != "" {
		q = q.Where("class_level = ?", filter.ClassLevel)
	}
	if filter.Subject != "" {
		q = q.Where("subject = ?", filter.Subject)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	q = q.Order("created_at DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var contents []models.Content
	if err := q.Find(&contents).Error; err != nil {
		return nil, persistenceErr("query content", err)
	}
	return contents, nil
}

// Get returns a single content record by id.
func (s *ContentService) Get(id int) (*models.Content, error) {
	var content models.Content
	err := s.db.Where("content_id = ? AND delete_at IS NULL", id).First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistenceErr("load content", err)
	}
	return &content, nil
}

// IncrementViews bumps the view counter. Lost increments under concurrent
// writes are tolerated; this is not a correctness-critical counter.
func (s *ContentService) IncrementViews(id int) error {
	res := s.db.Model(&models.Content{}).
		Where("content_id = ? AND delete_at IS NULL", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if res.Error != nil {
		return persistenceErr("increment views", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleLike flips the user's membership in the liked-by set and adjusts the
// like counter accordingly. Returns the new liked state and like count.
// Concurrent toggles by the same user are last-writer-wins.
func (s *ContentService) ToggleLike(contentID, userID int) (bool, int, error) {
	if _, err := s.Get(contentID); err != nil {
		return false, 0, err
	}

	// The membership flip and the counter adjustment must land together: a
	// like row without its counter bump would never toggle back cleanly.
	liked := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var like models.ContentLike
		err := tx.Where("content_id = ? AND user_id = ?", contentID, userID).First(&like).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			like = models.ContentLike{ContentID: contentID, UserID: userID, CreatedAt: time.Now()}
			if err := tx.Create(&like).Error; err != nil {
				return persistenceErr("add like", err)
			}
			liked = true
			return adjustLikeCount(tx, contentID, 1)
		case err != nil:
			return persistenceErr("load like", err)
		default:
			if err := tx.Delete(&models.ContentLike{}, "like_id = ?", like.LikeID).Error; err != nil {
				return persistenceErr("remove like", err)
			}
			return adjustLikeCount(tx, contentID, -1)
		}
	})
	if err != nil {
		return false, 0, err
	}

	var count int
	err = s.db.Model(&models.Content{}).
		Select("like_count").
		Where("content_id = ?", contentID).
		Scan(&count).Error
	if err != nil {
		return liked, 0, persistenceErr("load like count", err)
	}
	return liked, count, nil
}

func adjustLikeCount(tx *gorm.DB, contentID, delta int) error {
	err := tx.Model(&models.Content{}).
		Where("content_id = ?", contentID).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", delta)).Error
	if err != nil {
		return persistenceErr("adjust like count", err)
	}
	return nil
}

// PublishSubmission promotes an approved submission into a published content
// record. Approval does not publish automatically; this is the explicit
// promotion step. Calling it again for the same submission returns the
// existing record.
func (s *ContentService) PublishSubmission(submission *models.Submission) (*models.Content, error) {
	if submission == nil {
		return nil, ErrNotFound
	}
	if submission.Status != models.SubmissionStatusApproved {
		return nil, ErrInvalidStateTransition
	}

	var existing models.Content
	err := s.db.Where("submission_id = ?", submission.SubmissionID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, persistenceErr("check published content", err)
	}

	sourceID := submission.SubmissionID
	content := models.Content{
		Type:         submission.Type,
		Title:        submission.Title,
		Topic:        submission.Topic,
		Body:         submission.Body,
		VideoURL:     submission.VideoURL,
		ClassLevel:   submission.ClassLevel,
		Subject:      submission.Subject,
		AuthorID:     submission.AuthorID,
		AuthorName:   submission.AuthorName,
		SubmissionID: &sourceID,
		Status:       models.ContentStatusPublished,
		CreatedAt:    time.Now(),
	}
	if err := s.db.Create(&content).Error; err != nil {
		return nil, persistenceErr("publish submission", err)
	}
	return &content, nil
}
