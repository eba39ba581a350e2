package pakasir

import (
	"log"

	"lacak/database"
	"lacak/helpers"
	"lacak/models"
	payment "lacak/providers/payment"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WebhookRequest struct {
	OrderID     string  `json:"order_id"`
	Status      string  `json:"status"`
	Project     string  `json:"project"`
	Amount      float64 `json:"amount"`
	CompletedAt string  `json:"completed_at"`
}

const (
	outcomeRejected  = "rejected"
	outcomeIgnored   = "ignored"
	outcomeDuplicate = "duplicate"
	outcomeFulfilled = "fulfilled"
	outcomeError     = "error"
)

func logWebhookEvent(c *fiber.Ctx, req WebhookRequest, outcome string) {
	event := models.WebhookEvent{
		Provider:   "pakasir",
		ExternalID: req.OrderID,
		Status:     req.Status,
		Amount:     decimal.NewFromFloat(req.Amount),
		Payload:    datatypes.JSON(c.Body()),
		Outcome:    outcome,
	}
	if err := database.DB.Create(&event).Error; err != nil {
		log.Printf("[PAKASIR WEBHOOK] ⚠️ Failed to log event for order=%s: %v", req.OrderID, err)
	}
}

func WebhookHandler(c *fiber.Ctx) error {
	var req WebhookRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	log.Printf("[PAKASIR WEBHOOK] Status: %s for order: %s", req.Status, req.OrderID)

	configProject, _ := payment.PakasirConfig()
	if req.Project != configProject {
		log.Printf("[PAKASIR WEBHOOK] ❌ Project mismatch for order=%s", req.OrderID)
		logWebhookEvent(c, req, outcomeRejected)
		return helpers.JSONError(c, "Invalid project")
	}

	// Gateway mengirim notifikasi lifecycle lain juga; selain completed
	// cukup di-ack tanpa perubahan apa pun.
	if req.Status != "completed" {
		logWebhookEvent(c, req, outcomeIgnored)
		return c.JSON(fiber.Map{"success": true})
	}

	var order models.TokenOrder
	if err := database.DB.Where("external_id = ?", req.OrderID).First(&order).Error; err != nil {
		log.Printf("[PAKASIR WEBHOOK] ❌ Order not found: %s", req.OrderID)
		logWebhookEvent(c, req, outcomeRejected)
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "Order not found")
	}

	if order.Status == models.OrderStatusPaid {
		logWebhookEvent(c, req, outcomeDuplicate)
		return c.JSON(fiber.Map{"success": true, "message": "Already processed"})
	}

	// Transisi pending→paid lewat conditional update; kredit token hanya
	// kalau update ini benar-benar mengubah baris. Pengiriman ulang atau
	// race antar delivery akan kena RowsAffected == 0 dan tidak mengkredit
	// dua kali.
	credited := false
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.TokenOrder{}).
			Where("external_id = ? AND status = ?", req.OrderID, models.OrderStatusPending).
			Update("status", models.OrderStatusPaid)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			return nil
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", order.UserID).
			Update("tokens", gorm.Expr("tokens + ?", order.TokenQuantity)).Error; err != nil {
			return err
		}

		credited = true
		return nil
	})

	if err != nil {
		log.Printf("[PAKASIR WEBHOOK] ❌ DB transaction error for order=%s: %v", req.OrderID, err)
		logWebhookEvent(c, req, outcomeError)
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Internal error")
	}

	if credited {
		log.Printf("[PAKASIR WEBHOOK] ✅ Order %s fulfilled: %d tokens added to user=%d",
			req.OrderID, order.TokenQuantity, order.UserID)
		logWebhookEvent(c, req, outcomeFulfilled)
	} else {
		logWebhookEvent(c, req, outcomeDuplicate)
	}

	return c.JSON(fiber.Map{"success": true})
}
