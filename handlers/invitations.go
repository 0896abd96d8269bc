// handlers/invitations.go - Challenge invitation endpoints
package handlers

import (
	"fitarena/middleware"

	"github.com/gofiber/fiber/v2"
)

// SendInvitation invites another user to a challenge.
// POST /api/challenge_invitations
func SendInvitation(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req struct {
		InviteeID   uint `json:"invitee_id"`
		ChallengeID uint `json:"challenge_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	invitation, err := invitationService.Invite(userID, req.InviteeID, req.ChallengeID)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, invitation)
}

// SentInvitations lists invitations the caller sent.
// GET /api/challenge_invitations/sent
func SentInvitations(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	invitations, err := invitationService.Sent(userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, invitations)
}

// ReceivedInvitations lists invitations the caller received.
// GET /api/challenge_invitations/received
func ReceivedInvitations(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	invitations, err := invitationService.Received(userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, invitations)
}

// RespondToInvitation accepts or declines a pending invitation.
// POST /api/challenge_invitations/:id/respond
func RespondToInvitation(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	var req struct {
		Accept bool `json:"accept"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	invitation, err := invitationService.Respond(id, userID, req.Accept)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, invitation)
}

// CancelInvitation withdraws a pending invitation the caller sent.
// DELETE /api/challenge_invitations/:id
func CancelInvitation(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	if err := invitationService.Cancel(id, userID); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"cancelled": true})
}

// InvitationStats summarizes the caller's invitation activity.
// GET /api/challenge_invitations/stats
func InvitationStats(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	stats, err := invitationService.Stats(userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, stats)
}
