// middleware/auth.go
package middleware

import (
	"errors"
	"os"
	"strings"
	"time"

	"fitarena/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token and stores the caller's id and
// role in locals.
func AuthMiddleware(c *fiber.Ctx) error {
	claims, err := parseToken(c)
	if err != nil {
		return unauthorized(c, err.Error())
	}

	c.Locals("userId", claims["user_id"])
	c.Locals("role", claims["role"])
	return c.Next()
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(401).JSON(fiber.Map{"error": message})
}

// AdminMiddleware allows admins only. Runs after AuthMiddleware.
func AdminMiddleware(c *fiber.Ctx) error {
	if GetUserRole(c) != models.RoleAdmin {
		return c.Status(403).JSON(fiber.Map{
			"error": "Access denied. Admin privileges required.",
			"code":  "ADMIN_REQUIRED",
		})
	}
	return c.Next()
}

// GymOwnerMiddleware allows gym owners and admins. Runs after AuthMiddleware.
func GymOwnerMiddleware(c *fiber.Ctx) error {
	role := GetUserRole(c)
	if role != models.RoleGymOwner && role != models.RoleAdmin {
		return c.Status(403).JSON(fiber.Map{
			"error": "Access denied. Gym owner privileges required.",
			"code":  "GYM_OWNER_REQUIRED",
		})
	}
	return c.Next()
}

func parseToken(c *fiber.Ctx) (jwt.MapClaims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, errors.New("Missing authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errors.New("Invalid authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("Invalid signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("Invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, errors.New("Token expired")
	}
	return claims, nil
}

func GetUserID(c *fiber.Ctx) (uint, error) {
	userID := c.Locals("userId")
	if userID == nil {
		return 0, fiber.NewError(401, "User not authenticated")
	}

	if id, ok := userID.(float64); ok {
		return uint(id), nil
	}
	if id, ok := userID.(uint); ok {
		return id, nil
	}
	return 0, fiber.NewError(401, "Invalid user ID format")
}

func GetUserRole(c *fiber.Ctx) string {
	if role, ok := c.Locals("role").(string); ok {
		return role
	}
	return ""
}
