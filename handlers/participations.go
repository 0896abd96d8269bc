// handlers/participations.go - Starting and claiming challenges
package handlers

import (
	"fitarena/middleware"
	"fitarena/services"

	"github.com/gofiber/fiber/v2"
)

// StartChallenge enrolls the caller in a challenge.
// POST /api/challenges/:id/start
func StartChallenge(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	challengeID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	participation, err := participationService.Start(userID, challengeID)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, participation)
}

// ClaimChallenge marks the caller's participation completed.
// POST /api/challenges/:id/claim
func ClaimChallenge(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	challengeID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	var input services.ClaimInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return badBody(c)
		}
	}

	participation, err := participationService.Claim(userID, challengeID, input)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, participation)
}

// MyParticipations lists the caller's participations, optionally by status.
// GET /api/challenges/my-participations
func MyParticipations(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	participations, err := participationService.MyParticipations(userID, c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, participations)
}

// MyParticipationStats summarizes the caller's challenge activity.
// GET /api/challenges/my-stats
func MyParticipationStats(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	stats, err := participationService.MyStats(userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, stats)
}
