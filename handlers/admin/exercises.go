// handlers/admin/exercises.go - Exercise catalog administration
package admin

import (
	"fitarena/models"

	"github.com/gofiber/fiber/v2"
)

// CreateExercise adds an exercise to the catalog.
// POST /api/admin/exercises
func CreateExercise(c *fiber.Ctx) error {
	var exercise models.Exercise
	if err := c.BodyParser(&exercise); err != nil {
		return badBody(c)
	}
	if exercise.Name == "" {
		return c.Status(422).JSON(fiber.Map{
			"success": false,
			"error":   "exercise name is required",
			"code":    "INVALID_EXERCISE_NAME",
		})
	}
	if err := exerciseService.Create(&exercise); err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, exercise)
}

// UpdateExercise edits an exercise.
// PUT /api/admin/exercises/:id
func UpdateExercise(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return badBody(c)
	}
	exercise, err := exerciseService.Update(id, updates)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, exercise)
}

// DeleteExercise removes an exercise.
// DELETE /api/admin/exercises/:id
func DeleteExercise(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	if err := exerciseService.Delete(id); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}
