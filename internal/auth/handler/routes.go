package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	// Form endpoints issue the CSRF token for the matching POST.
	app.Get("/register", h.ShowForm)
	app.Get("/login", h.ShowForm)
	app.Get("/forgot/password", h.ShowForm)
	app.Get("/password/reset/:token", h.ShowResetForm)

	app.Post("/site/register", h.Register)
	app.Post("/auth/login", h.Login)
	app.Post("/password/email", h.ForgotPassword)
	app.Post("/password/change", h.ChangePassword)

	app.Get("/logout", h.Logout)
}
