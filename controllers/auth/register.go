package auth

import (
	"strings"
	"time"

	"lacak/database"
	"lacak/helpers"
	"lacak/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 7 * 24 * time.Hour

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func RegisterHandler(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || email == "" || len(req.Password) < 8 {
		return helpers.JSONError(c, "NAME_EMAIL_AND_PASSWORD_REQUIRED")
	}

	var existing models.User
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return helpers.JSONError(c, "EMAIL_ALREADY_REGISTERED")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_REGISTER_USER")
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		Tokens:       0,
		IsActive:     true,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_REGISTER_USER")
	}

	session, err := createSession(c, user.ID)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_CREATE_SESSION")
	}

	return helpers.JSONSuccess(c, "User registered successfully", fiber.Map{
		"name":          user.Name,
		"email":         user.Email,
		"tokens":        user.Tokens,
		"session_token": session.SID,
		"expires_at":    session.ExpiresAt,
	})
}

func createSession(c *fiber.Ctx, userID uint) (*models.Session, error) {
	session := models.Session{
		UserID:    userID,
		IPAddress: c.IP(),
		UserAgent: c.Get("User-Agent"),
		ExpiresAt: time.Now().Add(sessionTTL),
	}

	if err := database.DB.Create(&session).Error; err != nil {
		return nil, err
	}

	c.Cookie(&fiber.Cookie{
		Name:     "session_token",
		Value:    session.SID,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return &session, nil
}
