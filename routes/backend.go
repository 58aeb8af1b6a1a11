package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brightsmile/booking-app/controllers/backend"
	"github.com/brightsmile/booking-app/middleware"
)

// SetupBackendRoutes configures the admin panel routes
func SetupBackendRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.Protected(), middleware.RequireAdmin())

	admin.Get("/appointments", backend.GetAllAppointments)
	admin.Get("/appointments/:id", backend.GetAppointment)
	admin.Put("/appointments/:id", backend.UpdateAppointment)
	admin.Delete("/appointments/:id", backend.DeleteAppointment)

	admin.Get("/services", backend.GetAllServices)
	admin.Get("/services/:id", backend.GetService)
	admin.Post("/services", backend.CreateService)
	admin.Put("/services/:id", backend.UpdateService)
	admin.Delete("/services/:id", backend.DeleteService)

	admin.Get("/business-hours", backend.GetAllBusinessHours)
	admin.Get("/business-hours/:id", backend.GetBusinessHour)
	admin.Post("/business-hours", backend.CreateBusinessHour)
	admin.Put("/business-hours/:id", backend.UpdateBusinessHour)
	admin.Delete("/business-hours/:id", backend.DeleteBusinessHour)

	admin.Get("/patients", backend.GetPatients)

	admin.Get("/reviews", backend.GetAllReviews)
	admin.Post("/reviews/:id/toggle-featured", backend.ToggleReviewFeatured)
	admin.Delete("/reviews/:id", backend.DeleteReview)

	admin.Post("/content/:key", backend.UpdateContent)
}
