package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/SankalpGoel/HRMS-Lite/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates storage failures into domain errors. The
// unique constraints are the backstop behind the service's pre-checks: a race
// that slips past them still surfaces as the same conflict error.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_employees_employee_id":
				return employeeerrors.ErrEmployeeIDAlreadyExists
			case "uq_employees_email":
				return employeeerrors.ErrEmailAlreadyExists
			}
		}
	}

	// sqlite reports unique violations as plain text.
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unique constraint") {
		if strings.Contains(errMsg, "employees.employee_id") || strings.Contains(errMsg, "uq_employees_employee_id") {
			return employeeerrors.ErrEmployeeIDAlreadyExists
		}
		if strings.Contains(errMsg, "employees.email") || strings.Contains(errMsg, "uq_employees_email") {
			return employeeerrors.ErrEmailAlreadyExists
		}
	}

	return err
}
