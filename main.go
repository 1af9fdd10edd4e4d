package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"trams-drivers/config"
	"trams-drivers/handlers"
	"trams-drivers/middleware"
	"trams-drivers/models"
	"trams-drivers/repository"
	"trams-drivers/utils"
)

// Database connection
var DB *gorm.DB

func initServices() error {
	var err error
	DB, err = gorm.Open(sqlite.Open(config.AppConfig.DBPath), &gorm.Config{})
	if err != nil {
		return err
	}

	// Auto-migrate models
	if err := DB.AutoMigrate(&models.Driver{}, &models.DriverHistory{}, &models.DriverHours{}); err != nil {
		return err
	}

	return handlers.InitHandlers(repository.NewDriverRepository(DB), utils.SystemClock{})
}

func registerRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Post("/login", handlers.Login)

	driver := api.Group("/driver", middleware.RequireAuth)
	driver.Post("/hirePermanent", handlers.HirePermanent)
	driver.Get("/getDriver", handlers.GetDriver)
	driver.Get("/getAllDrivers", handlers.GetAllDrivers)
	driver.Post("/trackHours", handlers.TrackHours)
	driver.Post("/checkHours", handlers.CheckHours)
	driver.Post("/assignRoute", handlers.AssignRoute)
	driver.Post("/dismiss", handlers.Dismiss)
	driver.Post("/payDrivers", handlers.PayDrivers)
}

func main() {
	config.LoadConfig()
	utils.InitLogger()

	if err := initServices(); err != nil {
		log.Fatal("Failed to initialize services:", err)
	}

	app := fiber.New()
	registerRoutes(app)

	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
