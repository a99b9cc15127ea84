package attendance

type CheckInRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	SelfieURL string   `json:"selfie_url" binding:"required"`
	Notes     *string  `json:"notes"`
}

type CheckOutRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Notes     *string  `json:"notes"`
}

type ReviewRequest struct {
	Status           string  `json:"status" binding:"required,oneof=approved rejected"`
	AlterationReason *string `json:"alteration_reason"`
}

type AttendanceResponse struct {
	ID               string   `json:"id"`
	EmployeeID       string   `json:"employee_id"`
	AttendanceDate   string   `json:"attendance_date"`
	CheckInTime      string   `json:"check_in_time"`
	CheckOutTime     *string  `json:"check_out_time,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	SelfieURL        string   `json:"selfie_url"`
	Status           string   `json:"status"`
	ApprovedBy       *string  `json:"approved_by,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
	AlterationReason *string  `json:"alteration_reason,omitempty"`
}
