// handlers/common.go - Shared handler state and response helpers
package handlers

import (
	"errors"
	"strconv"

	"fitarena/database"
	"fitarena/services"

	"github.com/gofiber/fiber/v2"
)

var (
	authService          *services.AuthService
	gymService           *services.GymService
	challengeService     *services.ChallengeService
	participationService *services.ParticipationService
	invitationService    *services.InvitationService
	groupService         *services.GroupChallengeService
	trainingService      *services.TrainingService
	badgeService         *services.BadgeService
	rewardService        *services.RewardService
	dashboardService     *services.DashboardService
	achievementService   *services.AchievementService
	userService          *services.UserService
	leaderboardService   *services.LeaderboardService
	exerciseService      *services.ExerciseService
)

// InitHandlers wires every service against the shared database handle.
func InitHandlers() {
	db := database.GetDB()
	if db == nil {
		panic("Database not initialized before InitHandlers")
	}
	authService = services.NewAuthService(db)
	gymService = services.NewGymService(db)
	challengeService = services.NewChallengeService(db)
	participationService = services.NewParticipationService(db)
	invitationService = services.NewInvitationService(db)
	groupService = services.NewGroupChallengeService(db)
	trainingService = services.NewTrainingService(db)
	badgeService = services.NewBadgeService(db)
	rewardService = services.NewRewardService(db)
	dashboardService = services.NewDashboardService(db)
	achievementService = services.NewAchievementService(db)
	userService = services.NewUserService(db)
	leaderboardService = services.NewLeaderboardService(db)
	exerciseService = services.NewExerciseService(db)
}

// respondError maps service errors to their HTTP status, everything else to 500.
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

// parseIDParam reads a numeric route parameter. On failure it writes the 400
// response and reports false.
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
