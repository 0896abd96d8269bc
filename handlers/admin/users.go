// handlers/admin/users.go - Admin user management endpoints
package admin

import (
	"fitarena/middleware"
	"fitarena/repositories"

	"github.com/gofiber/fiber/v2"
)

// ListUsers lists accounts with optional role/search filters.
// GET /api/admin/users
func ListUsers(c *fiber.Ctx) error {
	filter := repositories.UserFilter{
		Role:   c.Query("role"),
		Search: c.Query("search"),
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	users, err := userService.ListUsers(filter)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, users)
}

// GetUser returns a single account.
// GET /api/admin/users/:id
func GetUser(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	user, err := userService.GetUser(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, user)
}

// ChangeUserRole updates a user's role.
// PUT /api/admin/users/:id/role
func ChangeUserRole(c *fiber.Ctx) error {
	callerID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	user, err := userService.ChangeRole(id, callerID, req.Role)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, user)
}

// ActivateUser re-enables an account.
// PUT /api/admin/users/:id/activate
func ActivateUser(c *fiber.Ctx) error {
	return setUserActive(c, true)
}

// DeactivateUser disables an account.
// PUT /api/admin/users/:id/deactivate
func DeactivateUser(c *fiber.Ctx) error {
	return setUserActive(c, false)
}

func setUserActive(c *fiber.Ctx, active bool) error {
	callerID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	user, err := userService.SetActive(id, callerID, active)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, user)
}

// DeleteUser removes an account.
// DELETE /api/admin/users/:id
func DeleteUser(c *fiber.Ctx) error {
	callerID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	if err := userService.DeleteUser(id, callerID); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}
