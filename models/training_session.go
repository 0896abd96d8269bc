// models/training_session.go
package models

import (
	"time"
)

// TrainingSession is a logged workout, optionally linked to a challenge.
type TrainingSession struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	ChallengeID    *uint     `gorm:"index" json:"challenge_id"`
	Date           time.Time `gorm:"not null;index" json:"date"`
	Duration       int       `gorm:"not null" json:"duration"` // minutes
	CaloriesBurned int       `gorm:"default:0" json:"calories_burned"`
	Metrics        JSONMap   `gorm:"type:jsonb" json:"metrics"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Challenge *Challenge `gorm:"foreignKey:ChallengeID" json:"challenge,omitempty"`
}

func (TrainingSession) TableName() string {
	return "training_sessions"
}
