package routes

import (
	"lacak/controllers/auth"
	"lacak/controllers/callback/pakasir"
	"lacak/controllers/history"
	"lacak/controllers/payment"
	"lacak/controllers/track"
	"lacak/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Post("/auth/register", auth.RegisterHandler)
	app.Post("/auth/login", auth.LoginHandler)

	authroutes := app.Group("/auth", middlewares.SessionAuthMiddleware)
	authroutes.Get("/me", auth.MeHandler)
	authroutes.Post("/logout", auth.LogoutHandler)

	api := app.Group("/api", middlewares.SessionAuthMiddleware)
	api.Post("/payment/pakasir", payment.CreateOrderHandler)
	api.Get("/payment/orders/:orderId", payment.OrderStatusHandler)
	api.Post("/track", track.TrackHandler)
	api.Get("/history", history.HistoryHandler)

	// webhook gateway: tanpa session, divalidasi lewat project match
	app.Post("/webhooks/pakasir", pakasir.WebhookHandler)
}
