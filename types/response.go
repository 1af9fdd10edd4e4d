package types

// APIResponse is the envelope for every JSON response from the service.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// DriverResponse is the snapshot of a driver returned by read operations.
// All dates are rendered dd-mm-yyyy and the status as its display text.
type DriverResponse struct {
	Name                  string                  `json:"name"`
	DateOfBirth           string                  `json:"dateOfBirth"`
	ContractedHours       int                     `json:"contractedHours"`
	HourlyWage            string                  `json:"hourlyWage"`
	StartDate             string                  `json:"startDate"`
	Skills                string                  `json:"skills"`
	Company               string                  `json:"company"`
	AssignedRouteSchedule string                  `json:"assignedRouteSchedule"`
	Status                string                  `json:"status"`
	History               []DriverHistoryResponse `json:"history"`
}

type DriverHistoryResponse struct {
	Date    string `json:"date"`
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

type CheckHoursResponse struct {
	FurtherHoursAllowed bool `json:"furtherHoursAllowed"`
	RemainingHours      int  `json:"remainingHours"`
}

type PayDriversResponse struct {
	TotalPayout string `json:"totalPayout"`
}

type DriverListResponse struct {
	Count   int              `json:"count"`
	Drivers []DriverResponse `json:"drivers"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
