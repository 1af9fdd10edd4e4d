package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DriverStatus is the closed set of lifecycle states for a driver.
type DriverStatus string

const (
	StatusHired     DriverStatus = "HIRED"
	StatusWorking   DriverStatus = "WORKING"
	StatusDismissed DriverStatus = "DISMISSED"
	StatusPaid      DriverStatus = "PAID"
)

var statusText = map[DriverStatus]string{
	StatusHired:     "Hired",
	StatusWorking:   "In Employment",
	StatusDismissed: "Dismissed",
	StatusPaid:      "Paid",
}

// Text returns the display text for a status.
func (s DriverStatus) Text() string {
	return statusText[s]
}

// Driver represents one bus/tram driver and their employment state. A
// driver is looked up by the triple (date of birth, name, company); the
// triple is not enforced unique at creation time. All dates are UTC
// midnight.
type Driver struct {
	ID                    string          `gorm:"type:uuid;primary_key" json:"id"`
	Name                  string          `gorm:"not null;index" json:"name"`
	Company               string          `gorm:"not null;index" json:"company"`
	DateOfBirth           time.Time       `gorm:"not null" json:"date_of_birth"`
	StartDate             time.Time       `json:"start_date"`
	ContractedHours       int             `json:"contracted_hours"`
	HourlyWage            decimal.Decimal `gorm:"type:decimal(10,2)" json:"hourly_wage"`
	Skills                string          `json:"skills"`
	AssignedRouteSchedule string          `json:"assigned_route_schedule"`
	Status                DriverStatus    `gorm:"not null" json:"status"`
	History               []DriverHistory `gorm:"foreignKey:DriverID;constraint:OnDelete:CASCADE" json:"history"`
	HoursLedger           []DriverHours   `gorm:"foreignKey:DriverID;constraint:OnDelete:CASCADE" json:"hours_ledger"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// DriverHistory records one lifecycle event against a driver. Entries are
// append-only and never modified once created.
type DriverHistory struct {
	ID       string       `gorm:"type:uuid;primary_key" json:"id"`
	DriverID string       `gorm:"type:uuid;index" json:"driver_id"`
	Date     time.Time    `json:"date"`
	Status   DriverStatus `json:"status"`
	Comment  string       `json:"comment"`
}

// DriverHours is one row of the hours-worked ledger: the hours a driver
// worked on one calendar date. A date with no row counts as zero hours.
type DriverHours struct {
	ID       string    `gorm:"type:uuid;primary_key" json:"id"`
	DriverID string    `gorm:"type:uuid;index" json:"driver_id"`
	Date     time.Time `gorm:"index" json:"date"`
	Hours    int       `json:"hours"`
}

// AddHistory appends a new event to the driver's history log.
func (d *Driver) AddHistory(date time.Time, status DriverStatus, comment string) {
	d.History = append(d.History, DriverHistory{
		ID:       uuid.New().String(),
		DriverID: d.ID,
		Date:     date,
		Status:   status,
		Comment:  comment,
	})
}

// IncrementHours adds hours to the ledger entry for the given date,
// creating the entry at the delta when the date has no entry yet.
func (d *Driver) IncrementHours(date time.Time, hours int) {
	for i := range d.HoursLedger {
		if d.HoursLedger[i].Date.Equal(date) {
			d.HoursLedger[i].Hours += hours
			return
		}
	}
	d.HoursLedger = append(d.HoursLedger, DriverHours{
		ID:       uuid.New().String(),
		DriverID: d.ID,
		Date:     date,
		Hours:    hours,
	})
}

// HoursWorkedOn returns the hours tracked for the given date, zero when
// nothing was tracked.
func (d *Driver) HoursWorkedOn(date time.Time) int {
	for _, entry := range d.HoursLedger {
		if entry.Date.Equal(date) {
			return entry.Hours
		}
	}
	return 0
}
