// models/gym.go
package models

import (
	"time"
)

// Gym approval states. pending is the only state a gym is created in;
// approved and rejected are terminal.
const (
	GymStatusPending  = "pending"
	GymStatusApproved = "approved"
	GymStatusRejected = "rejected"
)

type Gym struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	Name                string     `gorm:"not null;size:100" json:"name"`
	Contact             string     `gorm:"not null;size:100" json:"contact"`
	Description         string     `gorm:"type:text" json:"description"`
	Address             string     `gorm:"size:500" json:"address"`
	DetailedDescription string     `gorm:"type:text" json:"detailed_description"`
	Facilities          StringList `gorm:"type:jsonb" json:"facilities"`
	Equipment           StringList `gorm:"type:jsonb" json:"equipment"`
	ActivityTypes       StringList `gorm:"type:jsonb" json:"activity_types"`
	TotalScore          int        `gorm:"default:0" json:"total_score"`
	OwnerID             uint       `gorm:"not null;uniqueIndex" json:"owner_id"`
	Status              string     `gorm:"default:'pending';size:20;index" json:"status"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (Gym) TableName() string {
	return "gyms"
}
