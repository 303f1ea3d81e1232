package models

import (
	"time"
)

// ComplaintHistory is an append-only audit record of a single field change.
// Rows are only ever inserted; there is no update or delete path.
type ComplaintHistory struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ChangedAt time.Time `gorm:"autoCreateTime" json:"changed_at"`

	ComplaintID  string `gorm:"type:uuid;not null;index" json:"complaint_id"`
	FieldChanged string `gorm:"not null" json:"field_changed"`
	OldValue     string `json:"old_value"`
	NewValue     string `json:"new_value"`
	ChangedBy    uint   `gorm:"not null" json:"changed_by"`
}
