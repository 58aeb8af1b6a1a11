package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brightsmile/booking-app/controllers"
	"github.com/brightsmile/booking-app/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	app.Post("/register", controllers.Register)
	app.Post("/login", controllers.Login)

	app.Get("/user", middleware.Protected(), controllers.GetUser)
	app.Put("/user", middleware.Protected(), controllers.UpdateProfile)

	// Password reset (also used by accounts provisioned during booking)
	app.Post("/password/email", controllers.SendResetLinkEmail)
	app.Post("/password/reset", controllers.ResetPassword)
}
