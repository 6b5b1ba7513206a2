package attendance

import (
	"errors"
	"strings"

	attendanceerrors "github.com/SankalpGoel/HRMS-Lite/internal/attendance/errors"
	employeeerrors "github.com/SankalpGoel/HRMS-Lite/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError is the constraint backstop behind the Mark pre-checks:
// a concurrent duplicate mark or a vanished employee still comes back as the
// same domain error the pre-check would have produced.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "uq_attendance_employee_date" {
				return attendanceerrors.ErrAttendanceAlreadyMarked
			}
		case "23503":
			return employeeerrors.ErrEmployeeNotFound
		}
	}

	// sqlite reports constraint violations as plain text.
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unique constraint") &&
		(strings.Contains(errMsg, "attendance_records") || strings.Contains(errMsg, "uq_attendance_employee_date")) {
		return attendanceerrors.ErrAttendanceAlreadyMarked
	}
	if strings.Contains(errMsg, "foreign key constraint") {
		return employeeerrors.ErrEmployeeNotFound
	}

	return err
}
