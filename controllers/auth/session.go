package auth

import (
	"lacak/database"
	"lacak/helpers"
	"lacak/models"

	"github.com/gofiber/fiber/v2"
)

func MeHandler(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	return helpers.JSONSuccess(c, "Session valid", fiber.Map{
		"name":   user.Name,
		"email":  user.Email,
		"tokens": user.Tokens,
	})
}

func LogoutHandler(c *fiber.Ctx) error {
	session, ok := c.Locals("session").(models.Session)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := database.DB.Delete(&models.Session{}, session.ID).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_LOGOUT")
	}

	c.ClearCookie("session_token")
	return helpers.JSONSuccess(c, "Logged out", nil)
}
