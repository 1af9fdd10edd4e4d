package handlers

import (
	"golang.org/x/crypto/bcrypt"

	"trams-drivers/config"
	"trams-drivers/repository"
	"trams-drivers/services"
	"trams-drivers/utils"
)

var (
	Drivers           *services.DriverService
	adminPasswordHash []byte
)

// InitHandlers wires the handler layer to the store and clock. The daily
// hours maximum and the admin credential are read from the loaded config.
func InitHandlers(repo repository.DriverRepository, clock utils.Clock) error {
	Drivers = services.NewDriverService(repo, clock, config.AppConfig.MaxDailyHours)

	hash, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	adminPasswordHash = hash
	return nil
}
