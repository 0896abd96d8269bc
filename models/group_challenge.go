// models/group_challenge.go
package models

import (
	"time"
)

// GroupChallenge is a named group tied to one challenge. The creator joins
// automatically on creation.
type GroupChallenge struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ChallengeID uint      `gorm:"not null;index" json:"challenge_id"`
	GroupName   string    `gorm:"not null;size:100" json:"group_name"`
	CreatedBy   uint      `gorm:"not null;index" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Challenge    *Challenge                  `gorm:"foreignKey:ChallengeID" json:"challenge,omitempty"`
	Participants []GroupChallengeParticipant `gorm:"foreignKey:GroupChallengeID" json:"participants,omitempty"`
}

func (GroupChallenge) TableName() string {
	return "group_challenges"
}

type GroupChallengeParticipant struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	GroupChallengeID uint      `gorm:"not null;uniqueIndex:idx_group_participant" json:"group_challenge_id"`
	UserID           uint      `gorm:"not null;uniqueIndex:idx_group_participant" json:"user_id"`
	JoinedAt         time.Time `json:"joined_at"`
	CreatedAt        time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (GroupChallengeParticipant) TableName() string {
	return "group_challenge_participants"
}
