package models

import "time"

// PlatformMessage is an append-only admin announcement; the newest row is active.
type PlatformMessage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
