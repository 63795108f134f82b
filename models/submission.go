package models

import "time"

// Submission statuses. A submission starts pending and receives exactly one
// decision; approved and rejected are terminal.
const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusApproved = "approved"
	SubmissionStatusRejected = "rejected"
)

// Content types a teacher can submit.
const (
	ContentTypeNotes = "notes"
	ContentTypeQuiz  = "quiz"
	ContentTypePaper = "paper"
	ContentTypeVideo = "video"
)

// Submission represents one piece of proposed content awaiting or having
// received a moderation decision.
type Submission struct {
	SubmissionID     int     `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	SubmissionNumber string  `gorm:"column:submission_number;unique" json:"submission_number"`
	Type             string  `gorm:"column:type" json:"type"`
	Title            string  `gorm:"column:title" json:"title"`
	Topic            *string `gorm:"column:topic" json:"topic,omitempty"`
	Body             *string `gorm:"column:body" json:"body,omitempty"`
	VideoURL         *string `gorm:"column:video_url" json:"video_url,omitempty"`
	ClassLevel       string  `gorm:"column:class_level" json:"class_level"`
	Subject          string  `gorm:"column:subject" json:"subject"`

	// Denormalized author identity, fixed at creation.
	AuthorID    int    `gorm:"column:author_id" json:"author_id"`
	AuthorName  string `gorm:"column:author_name" json:"author_name"`
	AuthorEmail string `gorm:"column:author_email" json:"author_email"`

	Status          string     `gorm:"column:status" json:"status"`
	SubmittedAt     time.Time  `gorm:"column:submitted_at" json:"submitted_at"`
	ReviewedAt      *time.Time `gorm:"column:reviewed_at" json:"reviewed_at"`
	ReviewedBy      *int       `gorm:"column:reviewed_by" json:"reviewed_by"`
	RejectionReason *string    `gorm:"column:rejection_reason" json:"rejection_reason"`

	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Author   *User  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Reviewer *User  `gorm:"foreignKey:ReviewedBy" json:"reviewer,omitempty"`
}

// TableName specifies the table name for Submission.
func (Submission) TableName() string {
	return "submissions"
}

// IsPending reports whether the submission is still awaiting a decision.
func (s *Submission) IsPending() bool {
	return s.Status == SubmissionStatusPending
}

// IsTerminal reports whether a decision has been recorded.
func (s *Submission) IsTerminal() bool {
	return s.Status == SubmissionStatusApproved || s.Status == SubmissionStatusRejected
}

// SubmissionStatusHistory tracks historical status changes for submissions.
type SubmissionStatusHistory struct {
	HistoryID    int       `gorm:"primaryKey;column:history_id" json:"history_id"`
	SubmissionID int       `gorm:"column:submission_id" json:"submission_id"`
	OldStatus    string    `gorm:"column:old_status" json:"old_status"`
	NewStatus    string    `gorm:"column:new_status" json:"new_status"`
	ChangedBy    int       `gorm:"column:changed_by" json:"changed_by"`
	Reason       *string   `gorm:"column:reason" json:"reason"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName specifies the table for SubmissionStatusHistory.
func (SubmissionStatusHistory) TableName() string {
	return "submission_status_history"
}
