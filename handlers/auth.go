package handlers

import (
	"time"

	"trams-drivers/config"
	"trams-drivers/types"
	"trams-drivers/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Login checks the admin credential and issues a bearer token for the
// driver operations.
func Login(c *fiber.Ctx) error {
	var req types.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidInput,
		})
	}

	if req.Username != config.AppConfig.AdminUsername ||
		bcrypt.CompareHashAndPassword(adminPasswordHash, []byte(req.Password)) != nil {
		return c.Status(401).JSON(types.APIResponse{
			Success: false,
			Error:   "Invalid username or password",
		})
	}

	expiry, err := time.ParseDuration(config.AppConfig.TokenExpiry)
	if err != nil {
		expiry = 24 * time.Hour
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": req.Username,
		"exp":      time.Now().Add(expiry).Unix(),
	})

	signed, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		utils.Logger.Error("Failed to sign token", zap.Error(err))
		return c.Status(500).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInternalError,
		})
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    types.LoginResponse{Token: signed},
	})
}
