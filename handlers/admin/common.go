// handlers/admin/common.go - Admin surface shared state
package admin

import (
	"errors"
	"strconv"

	"fitarena/database"
	"fitarena/services"

	"github.com/gofiber/fiber/v2"
)

var (
	userService     *services.UserService
	gymService      *services.GymService
	badgeService    *services.BadgeService
	rewardService   *services.RewardService
	exerciseService *services.ExerciseService
)

// InitAdminHandlers wires the admin services.
func InitAdminHandlers() {
	db := database.GetDB()
	if db == nil {
		panic("Database not initialized before InitAdminHandlers")
	}
	userService = services.NewUserService(db)
	gymService = services.NewGymService(db)
	badgeService = services.NewBadgeService(db)
	rewardService = services.NewRewardService(db)
	exerciseService = services.NewExerciseService(db)
}

func respondError(c *fiber.Ctx, err error) error {
	var svcErr *services.ServiceError
	if errors.As(err, &svcErr) {
		return c.Status(svcErr.Status).JSON(fiber.Map{
			"success": false,
			"error":   svcErr.Message,
			"code":    svcErr.Code,
		})
	}
	return c.Status(500).JSON(fiber.Map{
		"success": false,
		"error":   "Internal server error",
	})
}

func respondOK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func respondCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(201).JSON(fiber.Map{"success": true, "data": data})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(400).JSON(fiber.Map{
		"success": false,
		"error":   "Invalid request body",
	})
}

func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	raw, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		_ = c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid id parameter",
		})
		return 0, false
	}
	return uint(raw), true
}
