// handlers/gyms.go - Gym endpoints
package handlers

import (
	"fitarena/middleware"
	"fitarena/services"
	"fitarena/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateGym registers the caller's gym, pending approval.
// POST /api/gyms
func CreateGym(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input services.GymInput
	if err := c.BodyParser(&input); err != nil {
		return badBody(c)
	}
	if verr := validators.ValidateGym(&input); verr != nil {
		return respondError(c, verr)
	}

	gym, err := gymService.CreateGym(userID, input)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, gym)
}

// ListGyms returns the approved gym directory.
// GET /api/gyms
func ListGyms(c *fiber.Ctx) error {
	gyms, err := gymService.ListApproved()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, gyms)
}

// GetGym returns one gym.
// GET /api/gyms/:id
func GetGym(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	gym, err := gymService.GetGym(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, gym)
}

// MyGym returns the caller's own gym.
// GET /api/gym
func MyGym(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	gym, err := gymService.GetGymByOwner(userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, gym)
}

// UpdateGym edits the caller's gym profile.
// PUT /api/gyms/:id
func UpdateGym(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return badBody(c)
	}

	gym, err := gymService.UpdateGym(id, userID, updates)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, gym)
}
