package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Complaint is the central entity: a trackable issue report filed by a
// student, routed to a department by an admin, and worked by faculty of that
// department.
type Complaint struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// StudentID is immutable after creation.
	StudentID   uint   `gorm:"not null;index" json:"student_id"`
	IsAnonymous bool   `gorm:"default:false" json:"is_anonymous"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Category    string `json:"category"`

	// Attachments holds public URLs of objects uploaded out-of-band; the list
	// is written back in a second update after the row already exists.
	Attachments pq.StringArray `gorm:"type:text[]" json:"attachments"`

	Priority string `gorm:"type:varchar(16);not null;default:'medium'" json:"priority"`
	Status   string `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`

	// Department and AssignedBy are set together, exactly once, by an admin.
	Department *string `gorm:"index" json:"department"`
	AssignedBy *uint   `json:"assigned_by"`

	FeedbackRating  *int   `json:"feedback_rating"`
	FeedbackComment string `json:"feedback_comment"`

	EstimatedCompletion *time.Time `json:"estimated_completion"`
	ResolvedAt          *time.Time `json:"resolved_at"`
	ReopenCount         int        `gorm:"default:0" json:"reopen_count"`
}

func (c *Complaint) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
