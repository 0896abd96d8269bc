// models/participation.go
package models

import (
	"time"
)

// Participation lifecycle states.
const (
	ParticipationInProgress = "in_progress"
	ParticipationCompleted  = "completed"
	ParticipationAbandoned  = "abandoned"
)

// ChallengeParticipation is a user's attempt record against one challenge.
// At most one row exists per (user, challenge).
type ChallengeParticipation struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ChallengeID uint       `gorm:"not null;uniqueIndex:idx_participation_user_challenge" json:"challenge_id"`
	UserID      uint       `gorm:"not null;uniqueIndex:idx_participation_user_challenge" json:"user_id"`
	Status      string     `gorm:"default:'in_progress';size:20;index" json:"status"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	Score       int        `gorm:"default:0" json:"score"`
	Notes       string     `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Challenge *Challenge `gorm:"foreignKey:ChallengeID" json:"challenge,omitempty"`
}

func (ChallengeParticipation) TableName() string {
	return "challenge_participations"
}
