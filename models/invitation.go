// models/invitation.go
package models

import (
	"time"
)

// Invitation states. pending is the only non-terminal state.
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationDeclined = "declined"
)

type ChallengeInvitation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	InviterID   uint      `gorm:"not null;index;uniqueIndex:idx_invitation_triple" json:"inviter_id"`
	InviteeID   uint      `gorm:"not null;index;uniqueIndex:idx_invitation_triple" json:"invitee_id"`
	ChallengeID uint      `gorm:"not null;index;uniqueIndex:idx_invitation_triple" json:"challenge_id"`
	Status      string    `gorm:"default:'pending';size:20" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Inviter   *User      `gorm:"foreignKey:InviterID" json:"inviter,omitempty"`
	Invitee   *User      `gorm:"foreignKey:InviteeID" json:"invitee,omitempty"`
	Challenge *Challenge `gorm:"foreignKey:ChallengeID" json:"challenge,omitempty"`
}

func (ChallengeInvitation) TableName() string {
	return "challenge_invitations"
}
