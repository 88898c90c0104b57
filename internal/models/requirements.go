package models

import "time"

// Requirement is one generated regulatory requirement for a requested
// test case.
type Requirement struct {
	TestCase       string `json:"test_case"`
	RequirementID  string `json:"requirement_id"`
	Description    string `json:"description"`
	Equipment      string `json:"equipment"`
	ExternalSearch string `json:"external_search,omitempty"`
}

type GenerateRequirementsRequest struct {
	TestCases []string `json:"test_cases"`
}

type GenerateRequirementsResponse struct {
	Requirements []Requirement `json:"requirements"`
}

// ProjectComponent is one row of the project component database.
type ProjectComponent struct {
	ID           string    `json:"id" db:"id"`
	PartNumber   string    `json:"part_number" db:"part_number"`
	Manufacturer string    `json:"manufacturer" db:"manufacturer"`
	Function     string    `json:"function" db:"function"`
	Primary      string    `json:"primary_rating" db:"primary_rating"`
	Secondary    string    `json:"secondary_rating" db:"secondary_rating"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type ComponentLookupResponse struct {
	PartNumber   string `json:"part_number"`
	Manufacturer string `json:"manufacturer"`
	Function     string `json:"function"`
	Voltage      string `json:"voltage,omitempty"`
	Current      string `json:"current,omitempty"`
	Value        string `json:"value,omitempty"`
	Tolerance    string `json:"tolerance,omitempty"`
	Package      string `json:"package,omitempty"`
}

type DashboardResponse struct {
	ReportsVerified int `json:"reports_verified"`
	ReportsParsed   int `json:"reports_parsed"`
	ComponentsInDB  int `json:"components_in_db"`
}
