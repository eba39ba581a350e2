package payment

import (
	"errors"
	"log"

	"lacak/database"
	"lacak/helpers"
	"lacak/models"
	pakasir "lacak/providers/payment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateOrderRequest struct {
	Amount        int64  `json:"amount"`
	TokenQuantity int64  `json:"tokenQuantity"`
	PaymentMethod string `json:"paymentMethod"`
}

func CreateOrderHandler(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "qris"
	}

	project, apiKey := pakasir.PakasirConfig()
	if project == "" || apiKey == "" {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Payment gateway not configured")
	}

	if !validatePackage(database.DB, user.ID, req.TokenQuantity, req.Amount) {
		return helpers.JSONError(c, "Invalid price or package")
	}

	orderID, err := uniqueOrderID(database.DB)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_CREATE_ORDER")
	}

	instrument, err := pakasir.CreateTransaction(req.PaymentMethod, orderID, req.Amount)
	if err != nil {
		log.Printf("[PAKASIR] ❌ Failed to create payment for user=%d: %v", user.ID, err)
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Failed to create payment")
	}

	order := models.TokenOrder{
		UserID:           user.ID,
		ExternalID:       orderID,
		Amount:           req.Amount,
		TokenQuantity:    req.TokenQuantity,
		Status:           models.OrderStatusPending,
		PaymentNumber:    instrument.PaymentNumber,
		PaymentMethod:    instrument.PaymentMethod,
		TotalPayment:     instrument.TotalPayment,
		PaymentFee:       instrument.Fee,
		PaymentExpiredAt: instrument.ExpiredAt,
	}

	if err := database.DB.Create(&order).Error; err != nil {
		log.Printf("[PAKASIR] ❌ Failed to save order %s: %v", orderID, err)
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_CREATE_ORDER")
	}

	log.Printf("[PAKASIR] ✅ Order %s created: %d tokens for user=%d", orderID, req.TokenQuantity, user.ID)

	return c.JSON(fiber.Map{
		"success": true,
		"orderId": orderID,
		"payment": fiber.Map{
			"payment_number": instrument.PaymentNumber,
			"payment_method": instrument.PaymentMethod,
			"total_payment":  instrument.TotalPayment,
			"fee":            instrument.Fee,
			"expired_at":     instrument.ExpiredAt,
		},
	})
}

// uniqueOrderID mengecek ulang hasil generator ke database sebelum dipakai.
func uniqueOrderID(db *gorm.DB) (string, error) {
	for i := 0; i < 5; i++ {
		orderID := helpers.GenerateOrderID()

		var existing models.TokenOrder
		err := db.Where("external_id = ?", orderID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return orderID, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", errors.New("could not generate unique order id")
}
