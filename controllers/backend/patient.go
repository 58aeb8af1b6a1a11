package backend

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/brightsmile/booking-app/db"
	"github.com/brightsmile/booking-app/models"
)

// Patient is a user row joined with the phone number given on their
// confirmed appointment.
type Patient struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	UserPhone        string `json:"user_phone"`
	AppointmentPhone string `json:"appointment_phone"`
}

// GetPatients returns the distinct users who have at least one confirmed
// appointment, matched by email.
func GetPatients(c *fiber.Ctx) error {
	var patients []Patient
	err := db.DB.Table("users").
		Select("DISTINCT users.id, users.name, users.email, users.phone AS user_phone, appointments.phone AS appointment_phone").
		Joins("JOIN appointments ON appointments.email = users.email").
		Where("appointments.status = ?", models.StatusConfirmed).
		Scan(&patients).Error
	if err != nil {
		log.Printf("Failed to fetch patients: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to fetch patients.",
		})
	}
	return c.JSON(patients)
}
