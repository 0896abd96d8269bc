// models/badge.go
package models

import (
	"time"
)

const (
	BadgeTypeAchievement = "achievement"
	BadgeTypeMilestone   = "milestone"
	BadgeTypeSpecial     = "special"
)

func ValidBadgeType(t string) bool {
	return t == BadgeTypeAchievement || t == BadgeTypeMilestone || t == BadgeTypeSpecial
}

// Badge is an automatically-awarded achievement marker with a rule-based
// criterion evaluated against fresh user stats.
type Badge struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Name        string        `gorm:"not null;size:100" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	Icon        string        `gorm:"size:50" json:"icon"`
	Color       string        `gorm:"size:20" json:"color"`
	Type        string        `gorm:"default:'achievement';size:20" json:"type"`
	Criteria    BadgeCriteria `gorm:"type:jsonb" json:"criteria"`
	Points      int           `gorm:"default:0" json:"points"`
	IsActive    bool          `gorm:"index" json:"is_active"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (Badge) TableName() string {
	return "badges"
}

// UserBadge is the earned pivot row. Awarding is idempotent per (user, badge).
type UserBadge struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"not null;uniqueIndex:idx_user_badge" json:"user_id"`
	BadgeID  uint      `gorm:"not null;uniqueIndex:idx_user_badge" json:"badge_id"`
	EarnedAt time.Time `json:"earned_at"`
	Context  JSONMap   `gorm:"type:jsonb" json:"context"`

	Badge *Badge `gorm:"foreignKey:BadgeID" json:"badge,omitempty"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
