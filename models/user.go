// models/user.go
package models

import (
	"time"
)

// User roles gate route groups and service-level permissions.
const (
	RoleAdmin    = "admin"
	RoleGymOwner = "gymOwner"
	RoleUser     = "user"
)

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleGymOwner || role == RoleUser
}

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"size:100" json:"full_name"`
	Email    string `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"default:'user';size:20" json:"role"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	// Gamification state
	TotalPoints          int     `gorm:"default:0" json:"total_points"`
	AvailablePoints      int     `gorm:"default:0" json:"available_points"`
	Level                int     `gorm:"default:1" json:"level"`
	ExperiencePoints     int     `gorm:"default:0" json:"experience_points"`
	AchievementsProgress JSONMap `gorm:"type:jsonb" json:"achievements_progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Gym              *Gym                `gorm:"foreignKey:OwnerID" json:"gym,omitempty"`
	Challenges       []Challenge         `gorm:"foreignKey:CreatorID" json:"challenges,omitempty"`
	TrainingSessions []TrainingSession   `gorm:"foreignKey:UserID" json:"training_sessions,omitempty"`
	Badges           []UserBadge         `gorm:"foreignKey:UserID" json:"badges,omitempty"`
	Rewards          []UserReward        `gorm:"foreignKey:UserID" json:"rewards,omitempty"`
}

func (User) TableName() string {
	return "users"
}
