package backend

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/brightsmile/booking-app/db"
	"github.com/brightsmile/booking-app/models"
	"github.com/brightsmile/booking-app/utils"
)

var contentKeys = map[string]bool{
	"hero":         true,
	"about":        true,
	"consultation": true,
	"logo":         true,
}

// UpdateContent upserts one site content section. The body payload arrives
// as a "body" form value (JSON edited by the admin panel) with an optional
// "image" upload.
func UpdateContent(c *fiber.Ctx) error {
	key := c.Params("key")
	if !contentKeys[key] {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Content not found",
		})
	}

	var block models.ContentBlock
	if err := db.DB.Where("key = ?", key).First(&block).Error; err != nil {
		block = models.ContentBlock{Key: key}
	}

	if body := c.FormValue("body"); body != "" {
		block.Body = body
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Failed to read image file",
			})
		}
		defer file.Close()

		url, err := utils.UploadImage(file, "content-"+key, "content", false)
		if err != nil {
			log.Printf("Content image upload failed for %s: %v", key, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to upload image",
			})
		}
		block.Image = url
	}

	if err := db.DB.Save(&block).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update content",
		})
	}
	return c.JSON(block)
}
