// services/invitation_service.go - Challenge invitations between users
package services

import (
	"log"

	"fitarena/models"
	"fitarena/repositories"

	"gorm.io/gorm"
)

type InvitationService struct {
	invitations *repositories.InvitationRepository
	challenges  *repositories.ChallengeRepository
	users       *repositories.UserRepository
}

func NewInvitationService(db *gorm.DB) *InvitationService {
	return &InvitationService{
		invitations: repositories.NewInvitationRepository(db),
		challenges:  repositories.NewChallengeRepository(db),
		users:       repositories.NewUserRepository(db),
	}
}

// Invite creates a pending invitation. Self invitations and duplicates for
// the same (inviter, invitee, challenge) triple are rejected.
func (s *InvitationService) Invite(inviterID, inviteeID, challengeID uint) (*models.ChallengeInvitation, error) {
	if inviterID == inviteeID {
		return nil, Unprocessable("you cannot invite yourself", "SELF_INVITATION_NOT_ALLOWED")
	}

	challenge, err := s.challenges.FindByID(challengeID)
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		return nil, NotFound("challenge not found", "CHALLENGE_NOT_FOUND")
	}

	invitee, err := s.users.FindByID(inviteeID)
	if err != nil {
		return nil, err
	}
	if invitee == nil {
		return nil, NotFound("invitee not found", "USER_NOT_FOUND")
	}

	existing, err := s.invitations.FindExisting(inviterID, inviteeID, challengeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, Conflict("invitation already sent", "INVITATION_ALREADY_EXISTS")
	}

	invitation := &models.ChallengeInvitation{
		InviterID:   inviterID,
		InviteeID:   inviteeID,
		ChallengeID: challengeID,
		Status:      models.InvitationPending,
	}
	if err := s.invitations.Create(invitation); err != nil {
		return nil, err
	}
	log.Printf("✅ User %d invited user %d to challenge %d", inviterID, inviteeID, challengeID)
	return invitation, nil
}

func (s *InvitationService) Sent(userID uint) ([]models.ChallengeInvitation, error) {
	return s.invitations.FindSent(userID)
}

func (s *InvitationService) Received(userID uint) ([]models.ChallengeInvitation, error) {
	return s.invitations.FindReceived(userID)
}

// Respond accepts or declines a pending invitation. Invitee only.
func (s *InvitationService) Respond(invitationID, callerID uint, accept bool) (*models.ChallengeInvitation, error) {
	invitation, err := s.invitations.FindByID(invitationID)
	if err != nil {
		return nil, err
	}
	if invitation == nil {
		return nil, NotFound("invitation not found", "INVITATION_NOT_FOUND")
	}
	if invitation.InviteeID != callerID {
		return nil, Forbidden("only the invitee can respond", "INVITATION_UNAUTHORIZED")
	}
	if invitation.Status != models.InvitationPending {
		return nil, Conflict("invitation already responded to", "INVITATION_ALREADY_RESPONDED")
	}

	status := models.InvitationDeclined
	if accept {
		status = models.InvitationAccepted
	}
	return s.invitations.UpdateStatus(invitationID, status)
}

// Cancel removes a pending invitation. Inviter only.
func (s *InvitationService) Cancel(invitationID, callerID uint) error {
	invitation, err := s.invitations.FindByID(invitationID)
	if err != nil {
		return err
	}
	if invitation == nil {
		return NotFound("invitation not found", "INVITATION_NOT_FOUND")
	}
	if invitation.InviterID != callerID {
		return Forbidden("only the inviter can cancel", "INVITATION_UNAUTHORIZED")
	}
	if invitation.Status != models.InvitationPending {
		return Conflict("only pending invitations can be cancelled", "INVITATION_CANNOT_CANCEL")
	}
	_, err = s.invitations.Delete(invitationID)
	return err
}

func (s *InvitationService) Stats(userID uint) (*repositories.InvitationStats, error) {
	return s.invitations.StatsFor(userID)
}
