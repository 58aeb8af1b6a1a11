package db

import (
	"fmt"
	"log"

	"github.com/brightsmile/booking-app/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.BusinessHour{},
		&models.Appointment{},
		&models.Review{},
		&models.ContentBlock{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
