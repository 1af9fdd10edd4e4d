package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"trams-drivers/models"
	"trams-drivers/repository"
	"trams-drivers/utils"
	"trams-drivers/validation"
)

// HireDriver carries the already-validated fields for hiring a driver.
type HireDriver struct {
	Name            string
	Company         string
	DateOfBirth     time.Time
	StartDate       time.Time
	ContractedHours int
	HourlyWage      decimal.Decimal
	Skills          string
}

// DriverService implements the driver lifecycle against the store. The
// clock is injected so every "today" reference is deterministic in tests.
type DriverService struct {
	repo          repository.DriverRepository
	clock         utils.Clock
	maxDailyHours int
}

func NewDriverService(repo repository.DriverRepository, clock utils.Clock, maxDailyHours int) *DriverService {
	return &DriverService{
		repo:          repo,
		clock:         clock,
		maxDailyHours: maxDailyHours,
	}
}

// Hire constructs a driver in HIRED status with a single "Hired!" history
// entry dated today and persists it.
func (s *DriverService) Hire(fields HireDriver) (*models.Driver, error) {
	driver := &models.Driver{
		ID:              uuid.New().String(),
		Name:            fields.Name,
		Company:         fields.Company,
		DateOfBirth:     fields.DateOfBirth,
		StartDate:       fields.StartDate,
		ContractedHours: fields.ContractedHours,
		HourlyWage:      fields.HourlyWage,
		Skills:          fields.Skills,
		Status:          models.StatusHired,
	}
	driver.AddHistory(s.clock.Today(), models.StatusHired, "Hired!")
	if err := s.repo.Save(driver); err != nil {
		return nil, err
	}
	return driver, nil
}

// Find looks a driver up by the identity triple.
func (s *DriverService) Find(dateOfBirth time.Time, name, company string) (*models.Driver, error) {
	return s.repo.FindByIdentity(dateOfBirth, name, company)
}

func (s *DriverService) All() ([]models.Driver, error) {
	return s.repo.FindAll()
}

func (s *DriverService) ByCompany(company string) ([]models.Driver, error) {
	return s.repo.FindByCompany(company)
}

// TrackHours increments the driver's hours for today by the given delta.
// No upper bound is enforced here; the permitted maximum is advisory and
// only reported by CheckHours.
func (s *DriverService) TrackHours(driver *models.Driver, hours int) error {
	driver.IncrementHours(s.clock.Today(), hours)
	return s.repo.Save(driver)
}

// CheckHours compares today's tracked hours against the permitted daily
// maximum. Remaining hours can be negative when tracking has pushed the
// driver over the maximum.
func (s *DriverService) CheckHours(driver *models.Driver) (furtherAllowed bool, remaining int) {
	tracked := driver.HoursWorkedOn(s.clock.Today())
	return tracked < s.maxDailyHours, s.maxDailyHours - tracked
}

// AssignRoute sets the route schedule for the driver. No history entry is
// appended; assignment has never been logged and changing that would alter
// the observable history output.
func (s *DriverService) AssignRoute(driver *models.Driver, routeSchedule string) error {
	driver.AssignedRouteSchedule = routeSchedule
	return s.repo.Save(driver)
}

// Dismiss sets the driver's status to DISMISSED and records the reason in
// the history log.
func (s *DriverService) Dismiss(driver *models.Driver, reason string) error {
	driver.Status = models.StatusDismissed
	driver.AddHistory(s.clock.Today(), models.StatusDismissed, "Dismissed. Reason: "+reason)
	return s.repo.Save(driver)
}

// PayDrivers pays every driver of the company for every day in the
// half-open range [fromDate, toDate) on which they have recorded hours.
// The end bound is exclusive on purpose: a range where fromDate equals
// toDate pays zero days, and toDate itself is never paid. Do not widen
// this to an inclusive range; that changes payout totals.
func (s *DriverService) PayDrivers(company string, fromDate, toDate time.Time) (decimal.Decimal, error) {
	drivers, err := s.repo.FindByCompany(company)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for day := fromDate; day.Before(toDate); day = day.AddDate(0, 0, 1) {
		for i := range drivers {
			if drivers[i].HoursWorkedOn(day) > 0 {
				amount, err := s.payDriver(&drivers[i], day)
				if err != nil {
					return decimal.Zero, err
				}
				total = total.Add(amount)
			}
		}
	}
	return total, nil
}

func (s *DriverService) payDriver(driver *models.Driver, day time.Time) (decimal.Decimal, error) {
	amount := decimal.NewFromInt(int64(driver.HoursWorkedOn(day))).Mul(driver.HourlyWage)
	comment := fmt.Sprintf("Paid %s for working on %s", amount.StringFixed(2), validation.FormatDate(day))
	driver.AddHistory(s.clock.Today(), models.StatusPaid, comment)
	if err := s.repo.Save(driver); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}
