package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback is an immutable post-swap rating. One row per (swap, giver).
type Feedback struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	SwapRequestID string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_feedback_swap_giver" json:"swap_request_id"`
	GiverID       string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_feedback_swap_giver" json:"giver_id"`
	ReceiverID    string    `gorm:"type:varchar(36);not null;index" json:"receiver_id"`
	Rating        int       `gorm:"not null" json:"rating"`
	Comment       string    `gorm:"type:text" json:"comment"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
}

func (Feedback) TableName() string { return "feedback" }

func (f *Feedback) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
