// handlers/admin/badges.go - Badge administration endpoints
package admin

import (
	"fitarena/models"

	"github.com/gofiber/fiber/v2"
)

// ListBadges lists the full badge catalog including inactive entries.
// GET /api/admin/badges
func ListBadges(c *fiber.Ctx) error {
	badges, err := badgeService.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, badges)
}

// CreateBadge adds a badge to the catalog.
// POST /api/admin/badges
func CreateBadge(c *fiber.Ctx) error {
	var req struct {
		models.Badge
		IsActive *bool `json:"is_active"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	badge := req.Badge
	if badge.Type == "" {
		badge.Type = models.BadgeTypeAchievement
	}
	// Active unless the request says otherwise.
	badge.IsActive = req.IsActive == nil || *req.IsActive
	if err := badgeService.CreateBadge(&badge); err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, badge)
}

// UpdateBadge edits a badge.
// PUT /api/admin/badges/:id
func UpdateBadge(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return badBody(c)
	}
	badge, err := badgeService.UpdateBadge(id, updates)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, badge)
}

// DeleteBadge removes a badge.
// DELETE /api/admin/badges/:id
func DeleteBadge(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	if err := badgeService.DeleteBadge(id); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}

// AwardBadge grants a badge to a list of users, skipping holders.
// POST /api/admin/badges/:id/award
func AwardBadge(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	var req struct {
		UserIDs []uint `json:"user_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	awarded, err := badgeService.AwardToMany(id, req.UserIDs)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"awarded": awarded})
}

// UserBadges lists badges one user earned.
// GET /api/admin/users/:id/badges
func UserBadges(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	badges, err := badgeService.UserBadges(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, badges)
}
