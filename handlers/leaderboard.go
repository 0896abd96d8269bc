// handlers/leaderboard.go - Activity leaderboard endpoints
package handlers

import (
	"fitarena/middleware"
	"fitarena/utils"

	"github.com/gofiber/fiber/v2"
)

// Leaderboard returns the ranked activity leaderboard, paginated.
// GET /api/leaderboard
func Leaderboard(c *fiber.Ctx) error {
	entries, err := leaderboardService.Compute()
	if err != nil {
		return respondError(c, err)
	}

	page := utils.NewPage(c.QueryInt("page", 1), c.QueryInt("limit", utils.DefaultPageSize))
	start, end := page.SliceBounds(len(entries))
	return c.JSON(fiber.Map{
		"success": true,
		"data":    entries[start:end],
		"total":   len(entries),
		"page":    page.Number,
	})
}

// MyRank returns the caller's leaderboard entry, or null when unranked.
// GET /api/leaderboard/my-rank
func MyRank(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	entry, err := leaderboardService.MyRank(userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, entry)
}
