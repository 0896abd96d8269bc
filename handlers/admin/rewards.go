// handlers/admin/rewards.go - Reward administration endpoints
package admin

import (
	"fitarena/models"

	"github.com/gofiber/fiber/v2"
)

// ListRewards lists the full reward catalog including inactive entries.
// GET /api/admin/rewards
func ListRewards(c *fiber.Ctx) error {
	rewards, err := rewardService.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, rewards)
}

// CreateReward adds a reward to the catalog.
// POST /api/admin/rewards
func CreateReward(c *fiber.Ctx) error {
	var req struct {
		models.Reward
		IsActive *bool `json:"is_active"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	reward := req.Reward
	if reward.Type == "" {
		reward.Type = models.RewardTypeVirtualItem
	}
	// Active unless the request says otherwise.
	reward.IsActive = req.IsActive == nil || *req.IsActive
	if err := rewardService.CreateReward(&reward); err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, reward)
}

// UpdateReward edits a reward.
// PUT /api/admin/rewards/:id
func UpdateReward(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return badBody(c)
	}
	reward, err := rewardService.UpdateReward(id, updates)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, reward)
}

// DeleteReward removes a reward.
// DELETE /api/admin/rewards/:id
func DeleteReward(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	if err := rewardService.DeleteReward(id); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}

// UserRewards lists rewards one user claimed.
// GET /api/admin/users/:id/rewards
func UserRewards(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	rewards, err := rewardService.UserRewards(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, rewards)
}

// DeactivateUserReward retires a user's claimed reward without deleting it.
// PUT /api/admin/users/:id/rewards/:rewardId/deactivate
func DeactivateUserReward(c *fiber.Ctx) error {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	rewardID, ok := parseIDParam(c, "rewardId")
	if !ok {
		return nil
	}
	if err := rewardService.DeactivateUserReward(userID, rewardID); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"deactivated": true})
}
