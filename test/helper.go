package test

import (
	"log"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"trams-drivers/config"
	"trams-drivers/handlers"
	"trams-drivers/models"
	"trams-drivers/repository"
	"trams-drivers/utils"
)

var (
	testApp *fiber.App
	testDB  *gorm.DB
)

// Every "today" reference in the handlers is pinned to this date via the
// injected clock.
var testToday = time.Date(2017, 3, 1, 0, 0, 0, 0, time.UTC)

func init() {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("ADMIN_USERNAME", "admin")
	os.Setenv("ADMIN_PASSWORD", "test-password")
	os.Setenv("DRIVER_PERMITTED_HOURS_MAX", "10")
	os.Setenv("DRIVER_CONTRACTED_HOURS_MIN", "10")
	os.Setenv("DRIVER_CONTRACTED_HOURS_MAX", "40")
	os.Setenv("DRIVER_HOURLY_WAGE_MIN", "5")
	os.Setenv("DRIVER_HOURLY_WAGE_MAX", "100")

	config.LoadConfig()
	utils.InitLogger()

	os.Remove("test_drivers.db")

	var err error
	testDB, err = gorm.Open(sqlite.Open("test_drivers.db"), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to test database:", err)
	}
	if err := testDB.AutoMigrate(&models.Driver{}, &models.DriverHistory{}, &models.DriverHours{}); err != nil {
		log.Fatal("Failed to migrate test database:", err)
	}
}

func SetupTest(t *testing.T) (*fiber.App, *gorm.DB) {
	// Reset database
	ResetTestDB()

	if err := handlers.InitHandlers(repository.NewDriverRepository(testDB), utils.FixedClock{Date: testToday}); err != nil {
		t.Fatal("Failed to initialize handlers:", err)
	}

	// Create fresh app instance
	testApp = fiber.New()

	return testApp, testDB
}

func ResetTestDB() {
	testDB.Exec("DELETE FROM driver_histories")
	testDB.Exec("DELETE FROM driver_hours")
	testDB.Exec("DELETE FROM drivers")
}

// Helper function to create test JWT token
func createTestToken() string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "admin",
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		log.Printf("Error creating test token: %v", err)
		return ""
	}
	return tokenString
}
