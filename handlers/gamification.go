// handlers/gamification.go - Dashboard, badges and rewards
package handlers

import (
	"fitarena/middleware"
	"fitarena/services"

	"github.com/gofiber/fiber/v2"
)

// GamificationDashboard returns the caller's level, points, badges, rewards
// and streaks in one payload.
// GET /api/gamification/dashboard
func GamificationDashboard(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	dashboard, err := dashboardService.BuildFor(userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dashboard)
}

// ListBadges returns the active badge catalog with the caller's progress.
// GET /api/gamification/badges
func ListBadges(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	progress, err := badgeService.ProgressFor(userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, progress)
}

// MyBadges lists badges the caller earned.
// GET /api/gamification/my-badges
func MyBadges(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	badges, err := badgeService.UserBadges(userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, badges)
}

// ListRewards returns the active reward catalog.
// GET /api/gamification/rewards
func ListRewards(c *fiber.Ctx) error {
	rewards, err := rewardService.ListActive()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, rewards)
}

// MyRewards lists rewards the caller claimed.
// GET /api/gamification/my-rewards
func MyRewards(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	rewards, err := rewardService.UserRewards(userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, rewards)
}

// MyLevel returns the caller's level and the XP needed for the next one.
// GET /api/gamification/level
func MyLevel(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	user, err := userService.GetUser(userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{
		"level":             user.Level,
		"experience_points": user.ExperiencePoints,
		"xp_for_next_level": services.XPForLevel(user.Level + 1),
	})
}

// MyStreak returns the caller's current and longest training streaks.
// GET /api/gamification/streak
func MyStreak(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	streaks, err := achievementService.Streaks(userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, streaks)
}

// ClaimReward redeems a reward for the caller.
// POST /api/gamification/rewards/:id/claim
func ClaimReward(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	claim, err := rewardService.Claim(userID, id)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, claim)
}
