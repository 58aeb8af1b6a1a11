package backend

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brightsmile/booking-app/db"
	"github.com/brightsmile/booking-app/models"
	"github.com/brightsmile/booking-app/utils"
)

// GetAllAppointments lists every appointment for the admin panel.
func GetAllAppointments(c *fiber.Ctx) error {
	var appointments []models.Appointment
	if err := db.DB.Preload("Service").
		Order("date DESC, start_time DESC").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetAppointment returns one appointment by ID.
func GetAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.Preload("Service").First(&appointment, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

type appointmentUpdateRequest struct {
	Name          string `json:"name" validate:"omitempty,max=255"`
	Email         string `json:"email" validate:"omitempty,email,max=255"`
	Phone         string `json:"phone" validate:"omitempty,max=15"`
	Date          string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime     string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime       string `json:"end_time" validate:"omitempty,datetime=15:04"`
	Status        string `json:"status" validate:"omitempty,oneof=pending confirmed canceled"`
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=pending paid"`
}

// UpdateAppointment applies admin edits (date, times, status) to an
// appointment. Empty fields are left untouched.
func UpdateAppointment(c *fiber.Ctx) error {
	id := c.Params("id")

	var appointment models.Appointment
	if err := db.DB.First(&appointment, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	var req appointmentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": errs})
	}

	if req.Name != "" {
		appointment.Name = req.Name
	}
	if req.Email != "" {
		appointment.Email = req.Email
	}
	if req.Phone != "" {
		appointment.Phone = req.Phone
	}
	if req.Date != "" {
		appointment.Date = req.Date
	}
	if req.StartTime != "" {
		appointment.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		appointment.EndTime = req.EndTime
	}
	if req.Status != "" {
		appointment.Status = models.AppointmentStatus(req.Status)
	}
	if req.PaymentStatus != "" {
		appointment.PaymentStatus = models.PaymentStatus(req.PaymentStatus)
	}

	if err := db.DB.Save(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update appointment",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// DeleteAppointment removes an appointment record entirely. Customer-facing
// cancellation never does this; deletion is an admin-only operation.
func DeleteAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.First(&appointment, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Delete(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete appointment",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
