package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Attendance is one workday's presence record. It is created on check-in,
// mutated once to set the check-out time and once more when a manager settles
// its status. Only approved rows count toward payroll.
type Attendance struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;index:idx_attendance_employee_date"`
	AttendanceDate time.Time  `gorm:"column:attendance_date;type:date;not null;index:idx_attendance_employee_date"`
	CheckInTime    time.Time  `gorm:"column:check_in_time;type:timestamptz;not null"`
	CheckOutTime   *time.Time `gorm:"column:check_out_time;type:timestamptz"`
	Latitude       *float64   `gorm:"column:latitude"`
	Longitude      *float64   `gorm:"column:longitude"`
	SelfieURL      string     `gorm:"column:selfie_url;type:varchar(500);not null"`

	Status     string     `gorm:"column:status;type:varchar(20);not null;default:'pending';index"`
	ApprovedBy *uuid.UUID `gorm:"column:approved_by;type:uuid"`

	Notes            *string    `gorm:"column:notes;type:text"`
	AlteredBy        *uuid.UUID `gorm:"column:altered_by;type:uuid"`
	AlterationReason *string    `gorm:"column:alteration_reason;type:text"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Attendance) TableName() string {
	return "attendances"
}
