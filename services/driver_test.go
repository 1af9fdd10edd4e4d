package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"trams-drivers/models"
	"trams-drivers/types"
	"trams-drivers/utils"
)

var today = time.Date(2017, 3, 1, 0, 0, 0, 0, time.UTC)

// fakeRepo is an in-memory stand-in for the driver store.
type fakeRepo struct {
	drivers []*models.Driver
	saved   []*models.Driver
	saveErr error
	findErr error
}

func (r *fakeRepo) FindByIdentity(dateOfBirth time.Time, name, company string) (*models.Driver, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, d := range r.drivers {
		if d.DateOfBirth.Equal(dateOfBirth) && d.Name == name && d.Company == company {
			return d, nil
		}
	}
	return nil, types.ErrDriverNotFound
}

func (r *fakeRepo) FindByCompany(company string) ([]models.Driver, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var result []models.Driver
	for _, d := range r.drivers {
		if d.Company == company {
			result = append(result, *d)
		}
	}
	return result, nil
}

func (r *fakeRepo) FindAll() ([]models.Driver, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var result []models.Driver
	for _, d := range r.drivers {
		result = append(result, *d)
	}
	return result, nil
}

func (r *fakeRepo) Save(driver *models.Driver) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, driver)
	for i, d := range r.drivers {
		if d.ID == driver.ID {
			r.drivers[i] = driver
			return nil
		}
	}
	r.drivers = append(r.drivers, driver)
	return nil
}

func newTestService(repo *fakeRepo) *DriverService {
	return NewDriverService(repo, utils.FixedClock{Date: today}, 10)
}

func testDriver(name, company string, wage string) *models.Driver {
	return &models.Driver{
		ID:          uuid.New().String(),
		Name:        name,
		Company:     company,
		DateOfBirth: time.Date(1984, 4, 25, 0, 0, 0, 0, time.UTC),
		StartDate:   today,
		HourlyWage:  decimal.RequireFromString(wage),
		Status:      models.StatusHired,
	}
}

func TestHire(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	driver, err := svc.Hire(HireDriver{
		Name:            "Max Mustermann",
		Company:         "Mustermann GmbH",
		DateOfBirth:     time.Date(1984, 4, 25, 0, 0, 0, 0, time.UTC),
		StartDate:       today,
		ContractedHours: 35,
		HourlyWage:      decimal.RequireFromString("12.50"),
		Skills:          "Bus",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusHired, driver.Status)
	assert.NotEmpty(t, driver.ID)
	assert.Len(t, driver.History, 1)
	assert.Equal(t, "Hired!", driver.History[0].Comment)
	assert.Equal(t, models.StatusHired, driver.History[0].Status)
	assert.True(t, driver.History[0].Date.Equal(today))
	assert.Len(t, repo.saved, 1)
}

func TestHireStoreFailure(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("database unavailable")}
	svc := newTestService(repo)

	_, err := svc.Hire(HireDriver{Name: "Max", Company: "GmbH"})
	assert.Error(t, err)
}

func TestFindNotFound(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	_, err := svc.Find(today, "Nobody", "GmbH")
	assert.ErrorIs(t, err, types.ErrDriverNotFound)
}

func TestTrackHoursAndCheckHours(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	driver := testDriver("Max", "GmbH", "12.50")
	repo.drivers = append(repo.drivers, driver)

	// nothing tracked yet: full allowance
	allowed, remaining := svc.CheckHours(driver)
	assert.True(t, allowed)
	assert.Equal(t, 10, remaining)

	assert.NoError(t, svc.TrackHours(driver, 5))
	allowed, remaining = svc.CheckHours(driver)
	assert.True(t, allowed)
	assert.Equal(t, 5, remaining)

	// second increment on the same day accumulates
	assert.NoError(t, svc.TrackHours(driver, 5))
	assert.Equal(t, 10, driver.HoursWorkedOn(today))
	allowed, remaining = svc.CheckHours(driver)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)

	// tracking is not capped, remaining goes negative
	assert.NoError(t, svc.TrackHours(driver, 2))
	allowed, remaining = svc.CheckHours(driver)
	assert.False(t, allowed)
	assert.Equal(t, -2, remaining)
}

func TestDismiss(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	driver := testDriver("Max", "GmbH", "12.50")
	driver.AddHistory(today, models.StatusHired, "Hired!")
	repo.drivers = append(repo.drivers, driver)

	assert.NoError(t, svc.Dismiss(driver, "Late too often"))

	assert.Equal(t, models.StatusDismissed, driver.Status)
	assert.Len(t, driver.History, 2)
	last := driver.History[len(driver.History)-1]
	assert.Equal(t, models.StatusDismissed, last.Status)
	assert.Equal(t, "Dismissed. Reason: Late too often", last.Comment)
	assert.True(t, last.Date.Equal(today))
}

func TestAssignRouteAppendsNoHistory(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	driver := testDriver("Max", "GmbH", "12.50")
	driver.AddHistory(today, models.StatusHired, "Hired!")
	repo.drivers = append(repo.drivers, driver)

	assert.NoError(t, svc.AssignRoute(driver, "1/1"))

	assert.Equal(t, "1/1", driver.AssignedRouteSchedule)
	assert.Len(t, driver.History, 1)
	assert.Len(t, repo.saved, 1)
}

func TestPayDriversEmptyRange(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	driver := testDriver("Max", "GmbH", "20.00")
	driver.IncrementHours(today, 8)
	repo.drivers = append(repo.drivers, driver)

	total, err := svc.PayDrivers("GmbH", today, today)
	assert.NoError(t, err)
	assert.True(t, total.IsZero())
	assert.Empty(t, repo.saved)
}

func TestPayDriversSingleDay(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	driver := testDriver("Max", "GmbH", "20.00")
	driver.IncrementHours(today, 5)
	repo.drivers = append(repo.drivers, driver)

	total, err := svc.PayDrivers("GmbH", today, today.AddDate(0, 0, 1))
	assert.NoError(t, err)
	assert.Equal(t, "100.00", total.StringFixed(2))

	assert.Len(t, repo.saved, 1)
	paid := repo.saved[0]
	assert.Len(t, paid.History, 1)
	assert.Equal(t, models.StatusPaid, paid.History[0].Status)
	assert.Equal(t, "Paid 100.00 for working on 01-03-2017", paid.History[0].Comment)
	assert.True(t, paid.History[0].Date.Equal(today))
}

func TestPayDriversEndDateExcluded(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	driver := testDriver("Max", "GmbH", "20.00")
	toDate := today.AddDate(0, 0, 2)
	driver.IncrementHours(today, 5)
	driver.IncrementHours(toDate, 8) // on the end bound, never paid
	repo.drivers = append(repo.drivers, driver)

	total, err := svc.PayDrivers("GmbH", today, toDate)
	assert.NoError(t, err)
	assert.Equal(t, "100.00", total.StringFixed(2))
}

func TestPayDriversMultipleDriversAndDays(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	first := testDriver("Max", "GmbH", "20.00")
	first.IncrementHours(today, 5)                  // 100.00
	first.IncrementHours(today.AddDate(0, 0, 1), 4) // 80.00

	second := testDriver("Erika", "GmbH", "10.50")
	second.IncrementHours(today, 8) // 84.00

	other := testDriver("Hans", "Other AG", "99.00")
	other.IncrementHours(today, 8) // different company, ignored

	repo.drivers = append(repo.drivers, first, second, other)

	total, err := svc.PayDrivers("GmbH", today, today.AddDate(0, 0, 2))
	assert.NoError(t, err)
	assert.Equal(t, "264.00", total.StringFixed(2))
}

func TestPayDriversSkipsZeroHourDays(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	driver := testDriver("Max", "GmbH", "20.00")
	driver.IncrementHours(today, 0)
	repo.drivers = append(repo.drivers, driver)

	total, err := svc.PayDrivers("GmbH", today, today.AddDate(0, 0, 1))
	assert.NoError(t, err)
	assert.True(t, total.IsZero())
	assert.Empty(t, repo.saved)
}

func TestPayDriversStoreFailure(t *testing.T) {
	repo := &fakeRepo{findErr: errors.New("database unavailable")}
	svc := newTestService(repo)

	_, err := svc.PayDrivers("GmbH", today, today.AddDate(0, 0, 1))
	assert.Error(t, err)
}

func TestPayDriversExactDecimalSum(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	driver := testDriver("Max", "GmbH", "0.10")
	for i := 0; i < 3; i++ {
		driver.IncrementHours(today.AddDate(0, 0, i), 1)
	}
	repo.drivers = append(repo.drivers, driver)

	// 3 * 0.10 must be exactly 0.30, no float drift
	total, err := svc.PayDrivers("GmbH", today, today.AddDate(0, 0, 3))
	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("0.30")))
}
