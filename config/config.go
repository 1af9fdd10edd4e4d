package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the deployment settings, including the validation bounds
// and the permitted daily hours maximum. Bounds are configuration, never
// hard-coded in the service.
type Config struct {
	Port          string
	DBPath        string
	JWTSecret     string
	AdminUsername string
	AdminPassword string
	TokenExpiry   string

	MaxDailyHours      int
	MinContractedHours int
	MaxContractedHours int
	MinHourlyWage      int
	MaxHourlyWage      int
}

var (
	AppConfig Config
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	AppConfig = Config{
		Port:          getEnvOrDefault("PORT", "8150"),
		DBPath:        getEnvOrDefault("DB_PATH", "drivers.db"),
		JWTSecret:     mustGetEnv("JWT_SECRET"),
		AdminUsername: getEnvOrDefault("ADMIN_USERNAME", "admin"),
		AdminPassword: mustGetEnv("ADMIN_PASSWORD"),
		TokenExpiry:   getEnvOrDefault("TOKEN_EXPIRY", "24h"),

		MaxDailyHours:      getEnvIntOrDefault("DRIVER_PERMITTED_HOURS_MAX", 10),
		MinContractedHours: getEnvIntOrDefault("DRIVER_CONTRACTED_HOURS_MIN", 10),
		MaxContractedHours: getEnvIntOrDefault("DRIVER_CONTRACTED_HOURS_MAX", 40),
		MinHourlyWage:      getEnvIntOrDefault("DRIVER_HOURLY_WAGE_MIN", 5),
		MaxHourlyWage:      getEnvIntOrDefault("DRIVER_HOURLY_WAGE_MAX", 100),
	}
}

func mustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Environment variable %s is required", key)
	}
	return value
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer, got %q", key, value)
	}
	return parsed
}
