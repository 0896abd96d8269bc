// handlers/groups.go - Group challenge endpoints
package handlers

import (
	"fitarena/middleware"
	"fitarena/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateGroupChallenge opens a group on a challenge. The caller joins it.
// POST /api/group_challenges
func CreateGroupChallenge(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req struct {
		ChallengeID uint   `json:"challenge_id"`
		GroupName   string `json:"group_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	if verr := validators.ValidateGroupName(req.GroupName); verr != nil {
		return respondError(c, verr)
	}

	group, err := groupService.CreateGroup(userID, req.ChallengeID, req.GroupName)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, group)
}

// JoinGroupChallenge adds the caller to a group.
// POST /api/group_challenges/:id/join
func JoinGroupChallenge(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	member, err := groupService.Join(id, userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, member)
}

// GetGroupChallenge returns one group with its members.
// GET /api/group_challenges/:id
func GetGroupChallenge(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	group, err := groupService.GetGroup(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, group)
}

// MyGroupChallenges lists groups the caller belongs to.
// GET /api/group_challenges
func MyGroupChallenges(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	groups, err := groupService.MyGroups(userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, groups)
}
