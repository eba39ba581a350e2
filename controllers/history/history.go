package history

import (
	"errors"

	"lacak/database"
	"lacak/helpers"
	"lacak/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func HistoryHandler(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if c.Query("check") == "first" {
		var paid models.TokenOrder
		err := database.DB.Where("user_id = ? AND status = ?", user.ID, models.OrderStatusPaid).First(&paid).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Internal error")
		}

		return c.JSON(fiber.Map{
			"isFirst": errors.Is(err, gorm.ErrRecordNotFound),
		})
	}

	var records []models.TrackingRecord
	if err := database.DB.
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Internal error")
	}

	return c.JSON(records)
}
