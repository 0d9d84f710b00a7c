package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/campusconnect/campus-events-backend/internal/models"
	jwtPkg "github.com/campusconnect/campus-events-backend/pkg/jwt"
)

func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authorization header is required"))
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid authorization header format"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtPkg.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid token"))
		}

		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid user ID in token"))
		}

		role, ok := claims["role"].(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid role in token"))
		}

		email, _ := claims["email"].(string)

		c.Locals("userID", uint(userIDFloat))
		c.Locals("userEmail", email)
		c.Locals("userRole", role)

		return c.Next()
	}
}

// RequireOrganizer guards organizer-only routes. Services still re-check
// roles against the database; this keeps obvious misuse out early.
func RequireOrganizer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, _ := c.Locals("userRole").(string); role != models.RoleOrganizer {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Organizer access required"))
		}
		return c.Next()
	}
}
