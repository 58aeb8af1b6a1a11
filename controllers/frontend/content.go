package frontend

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brightsmile/booking-app/db"
	"github.com/brightsmile/booking-app/models"
)

// GetContent returns one public content section (hero, about, consultation,
// logo) by key.
func GetContent(c *fiber.Ctx) error {
	key := c.Params("key")

	var block models.ContentBlock
	if err := db.DB.Where("key = ?", key).First(&block).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Content not found",
		})
	}
	return c.JSON(block)
}
