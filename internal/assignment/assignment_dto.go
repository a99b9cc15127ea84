package assignment

import "github.com/shopspring/decimal"

type CreateAssignmentRequest struct {
	EmployeeID       string           `json:"employee_id" binding:"required,uuid"`
	SiteID           string           `json:"site_id" binding:"required,uuid"`
	StartDate        string           `json:"start_date" binding:"required"`
	EndDate          *string          `json:"end_date"`
	WageRatePerDay   *decimal.Decimal `json:"wage_rate_per_day"`
	WageRatePerMonth *decimal.Decimal `json:"wage_rate_per_month"`
}

type CloseAssignmentRequest struct {
	EndDate string `json:"end_date" binding:"required"`
}

type AssignmentResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	SiteID           string          `json:"site_id"`
	SiteName         string          `json:"site_name,omitempty"`
	StartDate        string          `json:"start_date"`
	EndDate          *string         `json:"end_date,omitempty"`
	WageRatePerDay   decimal.Decimal `json:"wage_rate_per_day"`
	WageRatePerMonth decimal.Decimal `json:"wage_rate_per_month"`
}
