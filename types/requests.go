package types

// HireDriverRequest carries the fields needed to hire a permanent driver.
// Dates travel as dd-mm-yyyy strings and the wage as a decimal string.
type HireDriverRequest struct {
	Name            string `json:"name"`
	ContractedHours int    `json:"contractedHours"`
	HourlyWage      string `json:"hourlyWage"`
	StartDate       string `json:"startDate"`
	DateOfBirth     string `json:"dateOfBirth"`
	Skills          string `json:"skills"`
	Company         string `json:"company"`
}

// RetrieveDriverRequest identifies a driver by the lookup triple. Every
// operation that addresses an existing driver embeds it.
type RetrieveDriverRequest struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
	Company     string `json:"company"`
}

type TrackHoursRequest struct {
	RetrieveDriverRequest
	Hours int `json:"hours"`
}

type AssignRouteRequest struct {
	RetrieveDriverRequest
	AssignedRouteSchedule string `json:"assignedRouteSchedule"`
}

type DismissDriverRequest struct {
	RetrieveDriverRequest
	ReasonForDismissal string `json:"reasonForDismissal"`
}

type PayDriversRequest struct {
	Company  string `json:"company"`
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
