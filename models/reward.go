// models/reward.go
package models

import (
	"time"
)

const (
	RewardTypeVirtualItem = "virtual_item"
	RewardTypeTitle       = "title"
	RewardTypeAccess      = "access"
	RewardTypeSpecial     = "special"
)

func ValidRewardType(t string) bool {
	return t == RewardTypeVirtualItem || t == RewardTypeTitle ||
		t == RewardTypeAccess || t == RewardTypeSpecial
}

// Reward is a point-redeemable perk with eligibility conditions. Repeatable
// rewards can be claimed more than once.
type Reward struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	Name         string           `gorm:"not null;size:100" json:"name"`
	Description  string           `gorm:"type:text" json:"description"`
	Icon         string           `gorm:"size:50" json:"icon"`
	Type         string           `gorm:"default:'virtual_item';size:20" json:"type"`
	Conditions   RewardConditions `gorm:"type:jsonb" json:"conditions"`
	PointsCost   int              `gorm:"default:0" json:"points_cost"`
	IsActive     bool             `gorm:"index" json:"is_active"`
	IsRepeatable bool             `gorm:"default:false" json:"is_repeatable"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func (Reward) TableName() string {
	return "rewards"
}

// UserReward is the claimed pivot row. IsActive supports deactivating a
// claimed reward without deleting the claim history.
type UserReward struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	RewardID  uint      `gorm:"not null;index" json:"reward_id"`
	ClaimedAt time.Time `json:"claimed_at"`
	Context   JSONMap   `gorm:"type:jsonb" json:"context"`
	IsActive  bool      `json:"is_active"`

	Reward *Reward `gorm:"foreignKey:RewardID" json:"reward,omitempty"`
}

func (UserReward) TableName() string {
	return "user_rewards"
}
