package backend

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brightsmile/booking-app/db"
	"github.com/brightsmile/booking-app/models"
	"github.com/brightsmile/booking-app/utils"
)

type businessHourRequest struct {
	Day       string `json:"day" validate:"required,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`
	OpenTime  string `json:"open_time" validate:"required,datetime=15:04"`
	CloseTime string `json:"close_time" validate:"required,datetime=15:04"`
}

func (r businessHourRequest) validateWindow() map[string]string {
	errs := utils.ValidateStruct(r)
	if errs != nil {
		return errs
	}
	open, _ := utils.MinuteOfDay(r.OpenTime)
	close, _ := utils.MinuteOfDay(r.CloseTime)
	if close <= open {
		return map[string]string{"close_time": "The close_time must be after open_time."}
	}
	return nil
}

// GetAllBusinessHours retrieves the configured hours for every weekday
func GetAllBusinessHours(c *fiber.Ctx) error {
	var hours []models.BusinessHour
	if err := db.DB.Find(&hours).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get business hours",
		})
	}
	return c.JSON(hours)
}

// GetBusinessHour retrieves one business-hours entry by ID
func GetBusinessHour(c *fiber.Ctx) error {
	id := c.Params("id")
	var hour models.BusinessHour
	if err := db.DB.First(&hour, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Business hours not found",
		})
	}
	return c.JSON(hour)
}

// CreateBusinessHour sets the open/close window for a weekday
func CreateBusinessHour(c *fiber.Ctx) error {
	var req businessHourRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if errs := req.validateWindow(); errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": errs})
	}

	hour := models.BusinessHour{
		Day:       req.Day,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
	}
	if err := db.DB.Create(&hour).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create business hours",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(hour)
}

// UpdateBusinessHour updates an existing weekday window
func UpdateBusinessHour(c *fiber.Ctx) error {
	id := c.Params("id")
	var hour models.BusinessHour
	if err := db.DB.First(&hour, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Business hours not found",
		})
	}

	var req businessHourRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if errs := req.validateWindow(); errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": errs})
	}

	hour.Day = req.Day
	hour.OpenTime = req.OpenTime
	hour.CloseTime = req.CloseTime
	if err := db.DB.Save(&hour).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update business hours",
		})
	}
	return c.JSON(hour)
}

// DeleteBusinessHour removes a weekday window; that weekday becomes closed
func DeleteBusinessHour(c *fiber.Ctx) error {
	id := c.Params("id")
	var hour models.BusinessHour
	if err := db.DB.First(&hour, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Business hours not found",
		})
	}
	if err := db.DB.Delete(&hour).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete business hours",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
