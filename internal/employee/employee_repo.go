package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id uint) (*Employee, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, id uint) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

// FindAll returns employees in natural storage order; the API contract does
// not sort.
func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "employee_id = ?", employeeID).Error
	return &empl, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "email = ?", email).Error
	return &empl, err
}

func (r *repository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// Delete removes the employee and every attendance record that references it,
// in the caller's transaction.
func (r *repository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).
		Exec("DELETE FROM attendance_records WHERE employee_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&Employee{}, id).Error
}
