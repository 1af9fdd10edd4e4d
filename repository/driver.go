package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"trams-drivers/models"
	"trams-drivers/types"
)

// DriverRepository is the persistence contract the lifecycle service
// depends on. Mutations are read-modify-write: the caller loads a driver,
// mutates it in memory and saves it back. There is no per-record
// versioning; concurrent writers against the same identity can lose an
// update, and callers relying on stronger guarantees must serialise access
// themselves.
type DriverRepository interface {
	FindByIdentity(dateOfBirth time.Time, name, company string) (*models.Driver, error)
	FindByCompany(company string) ([]models.Driver, error)
	FindAll() ([]models.Driver, error)
	Save(driver *models.Driver) error
}

type gormDriverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) DriverRepository {
	return &gormDriverRepository{db: db}
}

func (r *gormDriverRepository) FindByIdentity(dateOfBirth time.Time, name, company string) (*models.Driver, error) {
	var driver models.Driver
	err := r.db.
		Preload("History").
		Preload("HoursLedger").
		Where("date_of_birth = ? AND name = ? AND company = ?", dateOfBirth, name, company).
		First(&driver).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, types.ErrDriverNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find driver by identity: %w", err)
	}
	return &driver, nil
}

func (r *gormDriverRepository) FindByCompany(company string) ([]models.Driver, error) {
	var drivers []models.Driver
	err := r.db.
		Preload("History").
		Preload("HoursLedger").
		Where("company = ?", company).
		Find(&drivers).Error
	if err != nil {
		return nil, fmt.Errorf("find drivers by company: %w", err)
	}
	return drivers, nil
}

func (r *gormDriverRepository) FindAll() ([]models.Driver, error) {
	var drivers []models.Driver
	err := r.db.
		Preload("History").
		Preload("HoursLedger").
		Find(&drivers).Error
	if err != nil {
		return nil, fmt.Errorf("find all drivers: %w", err)
	}
	return drivers, nil
}

// Save persists the driver together with its history and hours ledger.
// FullSaveAssociations is required so an incremented ledger row is updated
// rather than skipped on conflict.
func (r *gormDriverRepository) Save(driver *models.Driver) error {
	err := r.db.
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(driver).Error
	if err != nil {
		return fmt.Errorf("save driver: %w", err)
	}
	return nil
}
