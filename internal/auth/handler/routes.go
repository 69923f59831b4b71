package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/users", h.Signup)
	app.Post("/users/login", h.Login)

	// Session-guarded endpoints
	me := app.Group("/users/me", h.VerifySession)
	me.Get("/access-token", h.AccessToken)
	me.Delete("/session", h.Logout)
}
