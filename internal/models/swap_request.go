package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SwapStatus is the lifecycle state of a SwapRequest.
type SwapStatus string

const (
	SwapPending   SwapStatus = "pending"
	SwapAccepted  SwapStatus = "accepted"
	SwapRejected  SwapStatus = "rejected"
	SwapCompleted SwapStatus = "completed"
)

// SwapRequest proposes exchanging the sender's offered skill for the receiver's.
// Participant names are captured at creation and never refreshed.
type SwapRequest struct {
	ID           string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	SenderID     string     `gorm:"type:varchar(36);not null;index" json:"sender_id"`
	SenderName   string     `gorm:"not null" json:"sender_name"`
	ReceiverID   string     `gorm:"type:varchar(36);not null;index" json:"receiver_id"`
	ReceiverName string     `gorm:"not null" json:"receiver_name"`
	SkillOffered string     `gorm:"not null" json:"skill_offered"`
	SkillWanted  string     `gorm:"not null" json:"skill_wanted"`
	Status       SwapStatus `gorm:"type:varchar(16);not null;index" json:"status"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
}

func (s *SwapRequest) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Status == "" {
		s.Status = SwapPending
	}
	return nil
}
