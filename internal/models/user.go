package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultTheme is assigned to every new profile.
const DefaultTheme = "purple"

// User is a marketplace member profile. The password hash never leaves the service layer.
type User struct {
	ID            string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name          string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	PasswordHash  string     `gorm:"not null" json:"-" swaggerignore:"true"`
	Location      string     `gorm:"type:text" json:"location"`
	SkillsOffered StringList `gorm:"type:text" json:"skills_offered"`
	SkillsWanted  StringList `gorm:"type:text" json:"skills_wanted"`
	Availability  StringList `gorm:"type:text" json:"availability"`
	IsPublic      bool       `gorm:"not null" json:"is_public"`
	IsAdmin       bool       `gorm:"not null" json:"is_admin"`
	IsBanned      bool       `gorm:"not null;index" json:"is_banned"`
	ProfilePhoto  *string    `gorm:"type:text" json:"profile_photo"`
	Bio           string     `gorm:"type:text" json:"bio"`
	Theme         string     `gorm:"type:varchar(64);not null" json:"theme"`
	AverageRating float64    `gorm:"type:double precision;not null;default:0" json:"average_rating"`
	RatingCount   int        `gorm:"not null;default:0" json:"rating_count"`
	CreatedAt     time.Time  `gorm:"index" json:"created_at"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Theme == "" {
		u.Theme = DefaultTheme
	}
	return nil
}
