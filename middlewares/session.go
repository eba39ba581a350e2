package middlewares

import (
	"strings"
	"time"

	"lacak/database"
	"lacak/helpers"
	"lacak/models"

	"github.com/gofiber/fiber/v2"
)

const SessionCookieName = "session_token"

func sessionTokenFromRequest(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Cookies(SessionCookieName)
}

func SessionAuthMiddleware(c *fiber.Ctx) error {
	token := sessionTokenFromRequest(c)
	if token == "" {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var session models.Session
	if err := database.DB.Where("s_id = ? AND expires_at > ?", token, time.Now()).First(&session).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user models.User
	if err := database.DB.Where("id = ? AND is_active = true", session.UserID).First(&user).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	c.Locals("user", user)
	c.Locals("session", session)
	return c.Next()
}
