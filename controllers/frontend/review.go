package frontend

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/brightsmile/booking-app/db"
	"github.com/brightsmile/booking-app/models"
	"github.com/brightsmile/booking-app/utils"
)

// LatestFeaturedReviews returns the newest three featured reviews with
// their service and author, for the public landing page.
func LatestFeaturedReviews(c *fiber.Ctx) error {
	var reviews []models.Review
	if err := db.DB.Preload("Service").Preload("User").
		Where("featured = ?", true).
		Order("created_at DESC").
		Limit(3).
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch reviews",
			Error:   err.Error(),
		})
	}
	return c.JSON(reviews)
}

// CreateReview stores a review for a service, with an optional avatar image
// uploaded alongside the form fields.
func CreateReview(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	serviceID, err := strconv.ParseUint(c.FormValue("serviceId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"errors": map[string]string{"serviceId": "The serviceId field is required."},
		})
	}
	stars, err := strconv.Atoi(c.FormValue("stars"))
	if err != nil || stars < 1 || stars > 5 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"errors": map[string]string{"stars": "The stars must be between 1 and 5."},
		})
	}

	var service models.Service
	if err := db.DB.First(&service, serviceID).Error; err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"errors": map[string]string{"serviceId": "The selected serviceId is invalid."},
		})
	}

	review := models.Review{
		UserID:    userID,
		ServiceID: service.ID,
		Stars:     stars,
		Content:   c.FormValue("content"),
	}

	if fileHeader, err := c.FormFile("avatar"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Failed to read avatar file",
			})
		}
		defer file.Close()

		url, err := utils.UploadImage(file, fmt.Sprintf("review-%d-%d", userID, service.ID), "avatars", true)
		if err != nil {
			log.Printf("Avatar upload failed for user %d: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to upload avatar",
			})
		}
		review.Avatar = url
	}

	if err := db.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create review",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Review submitted successfully!",
		"review":  review,
	})
}
