package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ListFilter restricts the enriched listing; nil fields mean "no bound".
// From/To are inclusive bounds on attendance_date.
type ListFilter struct {
	EmployeeID *uint
	From       *time.Time
	To         *time.Time
}

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, employeeID uint, date time.Time) (*Attendance, error)
	FindAllEnriched(ctx context.Context, filter ListFilter) ([]AttendanceWithEmployee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID uint, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", date).
		First(&a).Error
	return &a, err
}

// FindAllEnriched joins each record with its owner; filters compose with AND.
// Rows come back in natural storage order, matching the API contract.
func (r *repository) FindAllEnriched(ctx context.Context, filter ListFilter) ([]AttendanceWithEmployee, error) {
	q := r.db.WithContext(ctx).
		Table("attendance_records").
		Select("attendance_records.id, attendance_records.employee_id, attendance_records.attendance_date, attendance_records.status, attendance_records.created_at, employees.full_name AS employee_name, employees.email AS employee_email").
		Joins("JOIN employees ON employees.id = attendance_records.employee_id")

	if filter.EmployeeID != nil {
		q = q.Where("attendance_records.employee_id = ?", *filter.EmployeeID)
	}
	if filter.From != nil {
		q = q.Where("attendance_records.attendance_date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("attendance_records.attendance_date <= ?", *filter.To)
	}

	var rows []AttendanceWithEmployee
	err := q.Scan(&rows).Error
	return rows, err
}
