// handlers/admin/gyms.go - Gym moderation endpoints
package admin

import (
	"github.com/gofiber/fiber/v2"
)

// ListGyms lists every gym regardless of status.
// GET /api/admin/gyms
func ListGyms(c *fiber.Ctx) error {
	gyms, err := gymService.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, gyms)
}

// PendingGyms lists gyms awaiting review.
// GET /api/admin/gyms/pending
func PendingGyms(c *fiber.Ctx) error {
	gyms, err := gymService.ListPending()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, gyms)
}

// GetGym returns a single gym regardless of status.
// GET /api/admin/gyms/:id
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

// ApproveGym approves a pending gym.
// PUT /api/admin/gyms/:id/approve
func ApproveGym(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	gym, err := gymService.Approve(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, gym)
}

// RejectGym rejects a pending gym.
// PUT /api/admin/gyms/:id/reject
func RejectGym(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	gym, err := gymService.Reject(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, gym)
}

// DeleteGym removes a gym.
// DELETE /api/admin/gyms/:id
func DeleteGym(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	if err := gymService.DeleteGym(id); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}
