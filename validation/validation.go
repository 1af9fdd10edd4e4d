package validation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"trams-drivers/types"
)

// DateFormat is the wire format for every date in the API: zero-padded
// day-month-year, dash separated.
const DateFormat = "02-01-2006"

var regexDate = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

// Bounds carries the configured inclusive ranges for hire validation.
type Bounds struct {
	MinContractedHours int
	MaxContractedHours int
	MinHourlyWage      int
	MaxHourlyWage      int
}

// HireFields carries the parsed values of an accepted hire request, so
// the values the service uses are exactly the ones that were validated.
type HireFields struct {
	Name            string
	Company         string
	DateOfBirth     time.Time
	StartDate       time.Time
	ContractedHours int
	HourlyWage      decimal.Decimal
	Skills          string
}

// ParseDate parses a dd-mm-yyyy string, rejecting anything that is not a
// real calendar date in exactly that format. time.Parse alone would accept
// unpadded digits, so the shape is checked first.
func ParseDate(value string) (time.Time, error) {
	if !regexDate.MatchString(value) {
		return time.Time{}, fmt.Errorf("date %q is not in dd-mm-yyyy format", value)
	}
	parsed, err := time.ParseInLocation(DateFormat, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is not a valid calendar date", value)
	}
	return parsed, nil
}

// FormatDate renders a date in the dd-mm-yyyy wire format.
func FormatDate(date time.Time) string {
	return date.Format(DateFormat)
}

// ParseHireRequest decides whether a hire request is acceptable. It
// returns the parsed fields on acceptance, or an error naming the first
// failing field.
func ParseHireRequest(req types.HireDriverRequest, bounds Bounds) (HireFields, error) {
	if req.ContractedHours < bounds.MinContractedHours || req.ContractedHours > bounds.MaxContractedHours {
		return HireFields{}, fmt.Errorf("contractedHours %d outside permitted range [%d, %d]",
			req.ContractedHours, bounds.MinContractedHours, bounds.MaxContractedHours)
	}
	dateOfBirth, err := ParseDate(req.DateOfBirth)
	if err != nil {
		return HireFields{}, fmt.Errorf("invalid dateOfBirth: %w", err)
	}
	if req.Name == "" {
		return HireFields{}, fmt.Errorf("required field 'name'")
	}
	wage, err := parseHourlyWage(req.HourlyWage, bounds)
	if err != nil {
		return HireFields{}, err
	}
	if req.Skills == "" {
		return HireFields{}, fmt.Errorf("required field 'skills'")
	}
	startDate, err := ParseDate(req.StartDate)
	if err != nil {
		return HireFields{}, fmt.Errorf("invalid startDate: %w", err)
	}
	return HireFields{
		Name:            req.Name,
		Company:         req.Company,
		DateOfBirth:     dateOfBirth,
		StartDate:       startDate,
		ContractedHours: req.ContractedHours,
		HourlyWage:      wage,
		Skills:          req.Skills,
	}, nil
}

// ParseRetrieveRequest validates the identity triple used by every
// operation that looks a driver up, returning the parsed date of birth.
func ParseRetrieveRequest(req types.RetrieveDriverRequest) (time.Time, error) {
	if req.Name == "" {
		return time.Time{}, fmt.Errorf("required field 'name'")
	}
	if req.Company == "" {
		return time.Time{}, fmt.Errorf("required field 'company'")
	}
	dateOfBirth, err := ParseDate(req.DateOfBirth)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid dateOfBirth: %w", err)
	}
	return dateOfBirth, nil
}

func parseHourlyWage(wage string, bounds Bounds) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(wage)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("hourlyWage %q is not a decimal number", wage)
	}
	min := decimal.NewFromInt(int64(bounds.MinHourlyWage))
	max := decimal.NewFromInt(int64(bounds.MaxHourlyWage))
	if value.LessThan(min) || value.GreaterThan(max) {
		return decimal.Decimal{}, fmt.Errorf("hourlyWage %s outside permitted range [%d, %d]",
			value.String(), bounds.MinHourlyWage, bounds.MaxHourlyWage)
	}
	return value, nil
}
