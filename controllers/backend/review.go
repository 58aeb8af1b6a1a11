package backend

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brightsmile/booking-app/db"
	"github.com/brightsmile/booking-app/models"
	"github.com/brightsmile/booking-app/utils"
)

// GetAllReviews lists every review with its author and service.
func GetAllReviews(c *fiber.Ctx) error {
	var reviews []models.Review
	if err := db.DB.Preload("User").Preload("Service").Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch reviews",
			Error:   err.Error(),
		})
	}
	return c.JSON(reviews)
}

// ToggleReviewFeatured flips whether a review appears on the landing page.
func ToggleReviewFeatured(c *fiber.Ctx) error {
	id := c.Params("id")
	var review models.Review
	if err := db.DB.First(&review, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Review not found.",
		})
	}

	review.Featured = !review.Featured
	if err := db.DB.Save(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update review",
		})
	}

	return c.JSON(fiber.Map{
		"message":  "Review featured status updated.",
		"featured": review.Featured,
	})
}

// DeleteReview removes a review.
func DeleteReview(c *fiber.Ctx) error {
	id := c.Params("id")
	var review models.Review
	if err := db.DB.First(&review, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Review not found.",
		})
	}
	if err := db.DB.Delete(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete review",
		})
	}
	return c.JSON(fiber.Map{"message": "Review deleted successfully."})
}
