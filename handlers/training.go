// handlers/training.go - Training session endpoints
package handlers

import (
	"time"

	"fitarena/middleware"
	"fitarena/repositories"
	"fitarena/services"
	"fitarena/validators"

	"github.com/gofiber/fiber/v2"
)

// LogTrainingSession records a workout for the caller.
// POST /api/training_sessions
func LogTrainingSession(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input services.TrainingInput
	if err := c.BodyParser(&input); err != nil {
		return badBody(c)
	}
	if verr := validators.ValidateTraining(&input); verr != nil {
		return respondError(c, verr)
	}

	session, err := trainingService.LogSession(userID, input)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, session)
}

// ListTrainingSessions lists the caller's sessions with optional filters.
// GET /api/training_sessions
func ListTrainingSessions(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	filter := repositories.TrainingFilter{
		MinDuration: c.QueryInt("min_duration"),
		MaxDuration: c.QueryInt("max_duration"),
		Limit:       c.QueryInt("limit"),
		Offset:      c.QueryInt("offset"),
	}
	if cid := c.QueryInt("challenge_id"); cid > 0 {
		id := uint(cid)
		filter.ChallengeID = &id
	}
	if from := c.Query("date_from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			filter.DateFrom = &t
		}
	}
	if to := c.Query("date_to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			filter.DateTo = &t
		}
	}

	sessions, err := trainingService.ListSessions(userID, filter)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, sessions)
}

// GetTrainingSession returns one of the caller's sessions.
// GET /api/training_sessions/:id
func GetTrainingSession(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	session, err := trainingService.GetSession(id, userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, session)
}

// UpdateTrainingSession edits one of the caller's sessions.
// PUT /api/training_sessions/:id
func UpdateTrainingSession(c *fiber.Ctx) error {
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

	session, err := trainingService.UpdateSession(id, userID, updates)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, session)
}

// DeleteTrainingSession removes one of the caller's sessions.
// DELETE /api/training_sessions/:id
func DeleteTrainingSession(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	if err := trainingService.DeleteSession(id, userID); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}

// TrainingStats aggregates the caller's training history.
// GET /api/training_stats
func TrainingStats(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	stats, err := trainingService.Stats(userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, stats)
}
