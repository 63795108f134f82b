package models

import "time"

// Published content statuses.
const (
	ContentStatusPublished = "published"
	ContentStatusArchived  = "archived"
)

// Content is a published record derived from an approved submission. It is
// what students and parents browse; counters on it are vanity metrics, not
// correctness-critical values.
type Content struct {
	ContentID  int     `gorm:"primaryKey;column:content_id" json:"content_id"`
	Type       string  `gorm:"column:type" json:"type"`
	Title      string  `gorm:"column:title" json:"title"`
	Topic      *string `gorm:"column:topic" json:"topic,omitempty"`
	Body       *string `gorm:"column:body" json:"body,omitempty"`
	VideoURL   *string `gorm:"column:video_url" json:"video_url,omitempty"`
	ClassLevel string  `gorm:"column:class_level" json:"class_level"`
	Subject    string  `gorm:"column:subject" json:"subject"`

	AuthorID   int    `gorm:"column:author_id" json:"author_id"`
	AuthorName string `gorm:"column:author_name" json:"author_name"`

	// Source submission this content was published from.
	SubmissionID *int `gorm:"column:submission_id;unique" json:"submission_id,omitempty"`

	Status    string     `gorm:"column:status" json:"status"`
	ViewCount int        `gorm:"column:view_count" json:"view_count"`
	LikeCount int        `gorm:"column:like_count" json:"like_count"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdateAt  *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// ContentLike marks that a user currently likes a piece of content. One row
// per (content, user); Content.LikeCount mirrors the row count.
type ContentLike struct {
	LikeID    int       `gorm:"primaryKey;column:like_id" json:"like_id"`
	ContentID int       `gorm:"column:content_id;uniqueIndex:idx_content_user" json:"content_id"`
	UserID    int       `gorm:"column:user_id;uniqueIndex:idx_content_user" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides
func (Content) TableName() string {
	return "contents"
}

func (ContentLike) TableName() string {
	return "content_likes"
}
