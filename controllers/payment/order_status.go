package payment

import (
	"lacak/database"
	"lacak/helpers"
	"lacak/models"

	"github.com/gofiber/fiber/v2"
)

// OrderStatusHandler dipakai halaman topup untuk polling status pembayaran.
func OrderStatusHandler(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	orderID := c.Params("orderId")
	if orderID == "" {
		return helpers.JSONError(c, "ORDER_ID_REQUIRED")
	}

	var order models.TokenOrder
	if err := database.DB.Where("external_id = ? AND user_id = ?", orderID, user.ID).First(&order).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "Order not found")
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"orderId":       order.ExternalID,
		"status":        order.Status,
		"amount":        order.Amount,
		"tokenQuantity": order.TokenQuantity,
		"payment": fiber.Map{
			"payment_number": order.PaymentNumber,
			"payment_method": order.PaymentMethod,
			"total_payment":  order.TotalPayment,
			"fee":            order.PaymentFee,
			"expired_at":     order.PaymentExpiredAt,
		},
		"createdAt": order.CreatedAt,
	})
}
