package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"trams-drivers/config"
	"trams-drivers/models"
	"trams-drivers/services"
	"trams-drivers/types"
	"trams-drivers/utils"
	"trams-drivers/validation"
)

func hireBounds() validation.Bounds {
	return validation.Bounds{
		MinContractedHours: config.AppConfig.MinContractedHours,
		MaxContractedHours: config.AppConfig.MaxContractedHours,
		MinHourlyWage:      config.AppConfig.MinHourlyWage,
		MaxHourlyWage:      config.AppConfig.MaxHourlyWage,
	}
}

// HirePermanent validates a hire request, constructs the driver and
// persists it. Returns 201 on success.
func HirePermanent(c *fiber.Ctx) error {
	var req types.HireDriverRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidInput,
		})
	}

	fields, err := validation.ParseHireRequest(req, hireBounds())
	if err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	driver, err := Drivers.Hire(services.HireDriver{
		Name:            fields.Name,
		Company:         fields.Company,
		DateOfBirth:     fields.DateOfBirth,
		StartDate:       fields.StartDate,
		ContractedHours: fields.ContractedHours,
		HourlyWage:      fields.HourlyWage,
		Skills:          fields.Skills,
	})
	if err != nil {
		utils.Logger.Error("Failed to hire driver", zap.Error(err))
		return c.Status(500).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrDatabaseError,
		})
	}

	return c.Status(201).JSON(types.APIResponse{
		Success: true,
		Message: "Driver hired successfully",
		Data:    driverResponse(driver),
	})
}

// GetDriver returns the snapshot of a driver looked up by the identity
// triple passed as query parameters.
func GetDriver(c *fiber.Ctx) error {
	req := types.RetrieveDriverRequest{
		Name:        c.Query("name"),
		DateOfBirth: c.Query("dateOfBirth"),
		Company:     c.Query("company"),
	}

	driver, ok := lookupDriver(c, req)
	if !ok {
		return nil
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    driverResponse(driver),
	})
}

// GetAllDrivers lists drivers, optionally filtered to one company via the
// company query parameter.
func GetAllDrivers(c *fiber.Ctx) error {
	var (
		drivers []models.Driver
		err     error
	)
	if company := c.Query("company"); company != "" {
		drivers, err = Drivers.ByCompany(company)
	} else {
		drivers, err = Drivers.All()
	}
	if err != nil {
		utils.Logger.Error("Failed to fetch drivers", zap.Error(err))
		return c.Status(500).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrDatabaseError,
		})
	}

	responses := make([]types.DriverResponse, 0, len(drivers))
	for i := range drivers {
		responses = append(responses, driverResponse(&drivers[i]))
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data: types.DriverListResponse{
			Count:   len(responses),
			Drivers: responses,
		},
	})
}

// TrackHours adds worked hours to today's ledger entry for a driver.
func TrackHours(c *fiber.Ctx) error {
	var req types.TrackHoursRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidInput,
		})
	}

	if req.Hours < 0 {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   "hours must be non-negative",
		})
	}

	driver, ok := lookupDriver(c, req.RetrieveDriverRequest)
	if !ok {
		return nil
	}

	if err := Drivers.TrackHours(driver, req.Hours); err != nil {
		utils.Logger.Error("Failed to track hours", zap.Error(err))
		return c.Status(500).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrDatabaseError,
		})
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Message: "Hours tracked successfully",
	})
}

// CheckHours reports whether the driver may work further hours today and
// how many remain under the permitted daily maximum.
func CheckHours(c *fiber.Ctx) error {
	var req types.RetrieveDriverRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidInput,
		})
	}

	driver, ok := lookupDriver(c, req)
	if !ok {
		return nil
	}

	allowed, remaining := Drivers.CheckHours(driver)
	return c.JSON(types.APIResponse{
		Success: true,
		Data: types.CheckHoursResponse{
			FurtherHoursAllowed: allowed,
			RemainingHours:      remaining,
		},
	})
}

// AssignRoute sets the driver's route schedule.
func AssignRoute(c *fiber.Ctx) error {
	var req types.AssignRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidInput,
		})
	}

	if req.AssignedRouteSchedule == "" {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   "required field 'assignedRouteSchedule'",
		})
	}

	driver, ok := lookupDriver(c, req.RetrieveDriverRequest)
	if !ok {
		return nil
	}

	if err := Drivers.AssignRoute(driver, req.AssignedRouteSchedule); err != nil {
		utils.Logger.Error("Failed to assign route", zap.Error(err))
		return c.Status(500).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrDatabaseError,
		})
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Message: "Route assigned successfully",
	})
}

// Dismiss sets the driver's status to dismissed and records the reason.
func Dismiss(c *fiber.Ctx) error {
	var req types.DismissDriverRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidInput,
		})
	}

	if req.ReasonForDismissal == "" {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   "required field 'reasonForDismissal'",
		})
	}

	driver, ok := lookupDriver(c, req.RetrieveDriverRequest)
	if !ok {
		return nil
	}

	if err := Drivers.Dismiss(driver, req.ReasonForDismissal); err != nil {
		utils.Logger.Error("Failed to dismiss driver", zap.Error(err))
		return c.Status(500).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrDatabaseError,
		})
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Message: "Driver dismissed",
	})
}

// PayDrivers pays all drivers of a company over the half-open date range
// [fromDate, toDate) and returns the exact total paid out.
func PayDrivers(c *fiber.Ctx) error {
	var req types.PayDriversRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidInput,
		})
	}

	if req.Company == "" || req.FromDate == "" || req.ToDate == "" {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidInput,
		})
	}

	fromDate, err := validation.ParseDate(req.FromDate)
	if err != nil {
		return c.Status(400).JSON(types.APIResponse{Success: false, Error: err.Error()})
	}
	toDate, err := validation.ParseDate(req.ToDate)
	if err != nil {
		return c.Status(400).JSON(types.APIResponse{Success: false, Error: err.Error()})
	}

	total, err := Drivers.PayDrivers(req.Company, fromDate, toDate)
	if err != nil {
		utils.Logger.Error("Failed to pay drivers", zap.Error(err))
		return c.Status(500).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrDatabaseError,
		})
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data: types.PayDriversResponse{
			TotalPayout: total.StringFixed(2),
		},
	})
}

// lookupDriver validates the identity triple, fetches the driver and
// writes the error response itself when anything fails. When ok is false
// the response has already been written and the caller must return
// without touching the driver.
func lookupDriver(c *fiber.Ctx, req types.RetrieveDriverRequest) (driver *models.Driver, ok bool) {
	dateOfBirth, err := validation.ParseRetrieveRequest(req)
	if err != nil {
		c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   err.Error(),
		})
		return nil, false
	}

	driver, err = Drivers.Find(dateOfBirth, req.Name, req.Company)
	if errors.Is(err, types.ErrDriverNotFound) {
		c.Status(404).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrNotFound,
		})
		return nil, false
	}
	if err != nil {
		utils.Logger.Error("Failed to fetch driver", zap.Error(err))
		c.Status(500).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrDatabaseError,
		})
		return nil, false
	}

	return driver, true
}

func driverResponse(driver *models.Driver) types.DriverResponse {
	history := make([]types.DriverHistoryResponse, 0, len(driver.History))
	for _, entry := range driver.History {
		history = append(history, types.DriverHistoryResponse{
			Date:    validation.FormatDate(entry.Date),
			Status:  entry.Status.Text(),
			Comment: entry.Comment,
		})
	}
	return types.DriverResponse{
		Name:                  driver.Name,
		DateOfBirth:           validation.FormatDate(driver.DateOfBirth),
		ContractedHours:       driver.ContractedHours,
		HourlyWage:            driver.HourlyWage.String(),
		StartDate:             validation.FormatDate(driver.StartDate),
		Skills:                driver.Skills,
		Company:               driver.Company,
		AssignedRouteSchedule: driver.AssignedRouteSchedule,
		Status:                driver.Status.Text(),
		History:               history,
	}
}
