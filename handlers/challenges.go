// handlers/challenges.go - Challenge creation, management and discovery
package handlers

import (
	"fitarena/middleware"
	"fitarena/repositories"
	"fitarena/services"
	"fitarena/utils"
	"fitarena/validators"

	"github.com/gofiber/fiber/v2"
)

// ================== GYM CHALLENGES ==================

// CreateGymChallenge publishes a challenge for the caller's approved gym.
// POST /api/gym_challenges
func CreateGymChallenge(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req struct {
		services.ChallengeInput
		GymID uint `json:"gym_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	if verr := validators.ValidateGymChallenge(&req.ChallengeInput); verr != nil {
		return respondError(c, verr)
	}

	challenge, err := challengeService.CreateGymChallenge(userID, req.GymID, req.ChallengeInput)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, challenge)
}

// ListGymChallenges lists challenges published by one gym.
// GET /api/gym_challenges?gym_id=N
func ListGymChallenges(c *fiber.Ctx) error {
	gymID := uint(c.QueryInt("gym_id"))
	if gymID == 0 {
		userID, err := middleware.GetUserID(c)
		if err != nil {
			return err
		}
		gym, err := gymService.GetGymByOwner(userID)
		if err != nil {
			return respondError(c, err)
		}
		gymID = gym.ID
	}

	challenges, err := challengeService.ListGymChallenges(gymID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, challenges)
}

// ================== USER CHALLENGES ==================

// CreateUserChallenge publishes a community challenge owned by the caller.
// POST /api/challenge_clients
func CreateUserChallenge(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input services.ChallengeInput
	if err := c.BodyParser(&input); err != nil {
		return badBody(c)
	}
	if verr := validators.ValidateUserChallenge(&input); verr != nil {
		return respondError(c, verr)
	}

	challenge, err := challengeService.CreateUserChallenge(userID, input)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, challenge)
}

// ListMyChallenges lists challenges the caller created.
// GET /api/challenge_clients
func ListMyChallenges(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	challenges, err := challengeService.ListUserChallenges(userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, challenges)
}

// ================== SHARED CRUD ==================

// GetChallenge returns one challenge.
// GET /api/challenges/:id
func GetChallenge(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	challenge, err := challengeService.GetChallenge(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, challenge)
}

// UpdateChallenge edits a challenge after the ownership check.
// PUT /api/challenges/:id
func UpdateChallenge(c *fiber.Ctx) error {
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

	challenge, err := challengeService.UpdateChallenge(id, userID, middleware.GetUserRole(c), updates)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, challenge)
}

// DeleteChallenge removes a challenge after the ownership check.
// DELETE /api/challenges/:id
func DeleteChallenge(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	if err := challengeService.DeleteChallenge(id, userID, middleware.GetUserRole(c)); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}

// ================== DISCOVERY ==================

func explorePage(c *fiber.Ctx) utils.Page {
	return utils.NewPage(c.QueryInt("page", 1), c.QueryInt("limit", utils.DefaultPageSize))
}

// ExploreChallenges lists public challenges with filters.
// GET /api/challenges/explore
func ExploreChallenges(c *fiber.Ctx) error {
	page := explorePage(c)
	filter := repositories.ChallengeFilter{
		Difficulty:  c.Query("difficulty"),
		Type:        c.Query("type"),
		CreatorType: c.Query("creator_type"),
		MinDuration: c.QueryInt("min_duration"),
		MaxDuration: c.QueryInt("max_duration"),
		Limit:       page.Limit(),
		Offset:      page.Offset(),
	}
	challenges, err := challengeService.Explore(filter)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, challenges)
}

// TrendingChallenges lists public challenges by participation count.
// GET /api/challenges/trending
func TrendingChallenges(c *fiber.Ctx) error {
	challenges, err := challengeService.Trending(c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, challenges)
}

// RecommendedChallenges suggests unstarted challenges for the caller.
// GET /api/challenges/recommended
func RecommendedChallenges(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	challenges, err := challengeService.Recommended(userID, c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, challenges)
}

// SearchChallenges free-text searches public challenges.
// GET /api/challenges/search?q=term
func SearchChallenges(c *fiber.Ctx) error {
	page := explorePage(c)
	filter := repositories.ChallengeFilter{
		Difficulty: c.Query("difficulty"),
		Limit:      page.Limit(),
		Offset:     page.Offset(),
	}
	challenges, err := challengeService.Search(c.Query("q"), filter)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, challenges)
}
