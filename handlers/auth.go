// handlers/auth.go - Registration and login endpoints
package handlers

import (
	"fitarena/validators"

	"github.com/gofiber/fiber/v2"
)

// Register creates an account and returns a token.
// POST /api/register
func Register(c *fiber.Ctx) error {
	var req validators.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	if verr := validators.ValidateRegister(&req); verr != nil {
		return respondError(c, verr)
	}

	result, err := authService.Register(req.FullName, req.Email, req.Password, req.Role)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, result)
}

// Login verifies credentials and returns a token.
// POST /api/login
func Login(c *fiber.Ctx) error {
	var req validators.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	if verr := validators.ValidateLogin(&req); verr != nil {
		return respondError(c, verr)
	}

	result, err := authService.Login(req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, result)
}
