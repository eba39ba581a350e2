package track

import (
	"encoding/json"
	"log"

	"lacak/database"
	"lacak/helpers"
	"lacak/models"
	"lacak/providers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TrackRequest struct {
	Query string `json:"query"`
	Type  string `json:"type"`
}

func TrackHandler(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req TrackRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Query == "" || req.Type == "" {
		return helpers.JSONError(c, "Query and type are required")
	}

	resolver := providers.GetGeoResolver(req.Type)
	if resolver == nil {
		return helpers.JSONError(c, "UNSUPPORTED_TYPE")
	}

	if user.Tokens < 1 {
		return helpers.JSONErrorStatus(c, fiber.StatusPaymentRequired, "Insufficient tokens. Please top up.")
	}

	// Potong 1 token dengan guard di sisi write; dua request paralel dari
	// user yang sama tidak bisa membawa saldo ke bawah nol.
	res := database.DB.Model(&models.User{}).
		Where("id = ? AND tokens >= 1", user.ID).
		Update("tokens", gorm.Expr("tokens - 1"))
	if res.Error != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Tracking failed")
	}
	if res.RowsAffected == 0 {
		return helpers.JSONErrorStatus(c, fiber.StatusPaymentRequired, "Insufficient tokens. Please top up.")
	}

	result, err := resolver.Resolve(providers.GeoRequest{Query: req.Query, Type: req.Type})
	if err != nil {
		log.Printf("[TRACK] ❌ Resolver error for %s %s: %v", req.Type, req.Query, err)
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Tracking failed")
	}

	resultJSON, err := json.Marshal(result.Data)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Tracking failed")
	}

	record := models.TrackingRecord{
		UserID:     user.ID,
		Query:      req.Query,
		Type:       req.Type,
		ResultData: datatypes.JSON(resultJSON),
		Lat:        result.Lat,
		Lng:        result.Lng,
	}

	if err := database.DB.Create(&record).Error; err != nil {
		log.Printf("[TRACK] ❌ Failed to save tracking record for user=%d: %v", user.ID, err)
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Tracking failed")
	}

	var fresh models.User
	remaining := user.Tokens - 1
	if err := database.DB.First(&fresh, user.ID).Error; err == nil {
		remaining = fresh.Tokens
	}

	log.Printf("[TRACK] ✅ %s lookup for user=%d query=%s remaining=%d", req.Type, user.ID, req.Query, remaining)

	return c.JSON(fiber.Map{
		"success":         true,
		"data":            result.Data,
		"lat":             result.Lat,
		"lng":             result.Lng,
		"remainingTokens": remaining,
	})
}
