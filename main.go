package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/brightsmile/booking-app/cron"
	"github.com/brightsmile/booking-app/db"
	"github.com/brightsmile/booking-app/redis"
	"github.com/brightsmile/booking-app/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	routes.SetupAuthRoutes(app)
	routes.SetupFrontendRoutes(app)
	routes.SetupBackendRoutes(app)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":8000"))
}
