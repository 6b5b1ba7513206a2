package attendance

import (
	"time"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Attendance has at most one row per (employee, date); the composite unique
// index is the authoritative guard behind the service pre-check.
type Attendance struct {
	ID             uint      `gorm:"column:id;primaryKey"`
	EmployeeID     uint      `gorm:"column:employee_id;not null;index;uniqueIndex:uq_attendance_employee_date"`
	AttendanceDate time.Time `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_employee_date"`
	Status         string    `gorm:"column:status;type:varchar(10);not null"`
	CreatedAt      time.Time `gorm:"column:created_at"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Attendance) TableName() string {
	return "attendance_records"
}

// EmployeeRef is a narrow view of the employees table for the enriched join.
type EmployeeRef struct {
	ID       uint   `gorm:"primaryKey"`
	FullName string `gorm:"column:full_name"`
	Email    string `gorm:"column:email"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

// AttendanceWithEmployee is the enriched row shape returned by the list
// queries: the attendance record joined with its owner's display fields.
type AttendanceWithEmployee struct {
	ID             uint
	EmployeeID     uint
	AttendanceDate time.Time
	Status         string
	EmployeeName   string
	EmployeeEmail  string
	CreatedAt      time.Time
}
