package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brightsmile/booking-app/controllers/frontend"
	"github.com/brightsmile/booking-app/middleware"
)

// SetupFrontendRoutes configures the public booking site routes
func SetupFrontendRoutes(app *fiber.App) {
	app.Get("/services", frontend.ListServices)
	app.Get("/services/:id", frontend.GetService)
	app.Get("/available-slots", frontend.GetAvailableSlots)
	app.Post("/appointments", frontend.CreateAppointment)
	app.Get("/latest-featured-reviews", frontend.LatestFeaturedReviews)
	app.Get("/content/:key", frontend.GetContent)

	app.Get("/myappointments", middleware.Protected(), frontend.GetUserAppointments)
	app.Get("/appointments/:id", middleware.Protected(), frontend.GetAppointment)
	app.Patch("/appointments/:id/confirm", middleware.Protected(), frontend.ConfirmAppointment)
	app.Patch("/appointments/:id/update-status", middleware.Protected(), frontend.UpdateAppointmentStatus)
	app.Post("/appointments/cancel", middleware.Protected(), frontend.CancelAppointment)
	app.Post("/reviews", middleware.Protected(), frontend.CreateReview)
}
