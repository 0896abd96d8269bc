// handlers/exercises.go - Exercise catalog endpoints
package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// ListExercises returns the exercise catalog, optionally filtered.
// GET /api/exercises?q=term
func ListExercises(c *fiber.Ctx) error {
	exercises, err := exerciseService.List(c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, exercises)
}

// GetExercise returns one exercise.
// GET /api/exercises/:id
func GetExercise(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	exercise, err := exerciseService.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, exercise)
}
