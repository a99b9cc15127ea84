package payout

import (
	"time"

	"github.com/shopspring/decimal"
)

type GeneratePayoutsRequest struct {
	Period     string `json:"period" binding:"required"`
	EmployeeID string `json:"employee_id" binding:"omitempty,uuid"`
}

type PayoutResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name,omitempty"`
	EmployeeEmail   string          `json:"employee_email,omitempty"`
	Period          string          `json:"period"`
	TotalDaysWorked int             `json:"total_days_worked"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	Deductions      decimal.Decimal `json:"deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
	Status          string          `json:"status"`
	GeneratedDate   time.Time       `json:"generated_date"`
	PayoutSlipURL   *string         `json:"payout_slip_url,omitempty"`

	Details *CalculationDetails `json:"calculation_details,omitempty"`
}

type CalculationDetails struct {
	Message             string          `json:"message,omitempty"`
	DaysInMonth         int             `json:"days_in_month,omitempty"`
	AttendanceRecords   int             `json:"attendance_records"`
	SiteName            string          `json:"site_name,omitempty"`
	WageRatePerDay      decimal.Decimal `json:"wage_rate_per_day"`
	WageRatePerMonth    decimal.Decimal `json:"wage_rate_per_month"`
	DeductionPercentage int             `json:"deduction_percentage"`
}

type SlipResponse struct {
	PayoutID      string `json:"payout_id"`
	PayoutSlipURL string `json:"payout_slip_url"`
}

func mapToResponse(p Payout) PayoutResponse {
	return PayoutResponse{
		ID:              p.ID.String(),
		EmployeeID:      p.EmployeeID.String(),
		EmployeeName:    p.EmployeeName,
		EmployeeEmail:   p.EmployeeEmail,
		Period:          p.Period,
		TotalDaysWorked: p.TotalDaysWorked,
		GrossPay:        p.GrossPay,
		Deductions:      p.Deductions,
		NetPay:          p.NetPay,
		Status:          p.Status,
		GeneratedDate:   p.GeneratedDate,
		PayoutSlipURL:   p.PayoutSlipURL,
	}
}

func mapToListResponse(payouts []Payout) []PayoutResponse {
	resp := make([]PayoutResponse, len(payouts))
	for i, p := range payouts {
		resp[i] = mapToResponse(p)
	}
	return resp
}

func mapResultDetails(d Details) *CalculationDetails {
	return &CalculationDetails{
		Message:             d.Message,
		DaysInMonth:         d.DaysInMonth,
		AttendanceRecords:   d.AttendanceRecords,
		SiteName:            d.SiteName,
		WageRatePerDay:      d.WageRatePerDay,
		WageRatePerMonth:    d.WageRatePerMonth,
		DeductionPercentage: d.DeductionPercentage,
	}
}
