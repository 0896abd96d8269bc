// models/challenge.go
package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Challenge creator variants. A challenge belongs to exactly one of a user
// or a gym; the other foreign key must be null.
const (
	CreatorTypeUser = "user"
	CreatorTypeGym  = "gym"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

func ValidDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

type Challenge struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Name                 string    `gorm:"not null;size:200" json:"name"`
	Description          string    `gorm:"type:text" json:"description"`
	Objectives           string    `gorm:"type:text" json:"objectives"`
	RecommendedExercises string    `gorm:"type:text" json:"recommended_exercises"`
	Duration             int       `gorm:"default:0" json:"duration"` // days
	Difficulty           string    `gorm:"size:20" json:"difficulty"`
	Score                int       `gorm:"default:0" json:"score"`
	IsPublic             bool      `json:"is_public"`
	Type                 string    `gorm:"size:50" json:"type"`
	CreatorType          string    `gorm:"not null;size:10;index" json:"creator_type"`
	CreatorID            *uint     `gorm:"index" json:"creator_id"`
	GymID                *uint     `gorm:"index" json:"gym_id"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`

	Creator *User `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Gym     *Gym  `gorm:"foreignKey:GymID" json:"gym,omitempty"`
}

func (Challenge) TableName() string {
	return "challenges"
}

var (
	ErrGymChallengeWithoutGym    = errors.New("gym challenges must have a gym_id")
	ErrUserChallengeWithoutOwner = errors.New("user challenges must have a creator_id")
	ErrUnknownCreatorType        = errors.New("creator_type must be 'user' or 'gym'")
)

// BeforeCreate enforces the creator tagged union: exactly one of CreatorID or
// GymID is set, matching CreatorType. Updates never touch the creator columns
// (the services strip them), and the database carries the same rule as a
// check constraint for raw writers.
func (c *Challenge) BeforeCreate(_ *gorm.DB) error {
	switch c.CreatorType {
	case CreatorTypeGym:
		if c.GymID == nil {
			return ErrGymChallengeWithoutGym
		}
		c.CreatorID = nil
	case CreatorTypeUser:
		if c.CreatorID == nil {
			return ErrUserChallengeWithoutOwner
		}
		c.GymID = nil
	default:
		return ErrUnknownCreatorType
	}
	return nil
}
