// models/exercise.go
package models

import (
	"time"
)

// Exercise is a catalog entry referenced by challenge recommendations.
type Exercise struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null;size:100" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Muscles     StringList `gorm:"type:jsonb" json:"muscles"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Exercise) TableName() string {
	return "exercises"
}
