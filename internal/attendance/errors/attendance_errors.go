package attendanceerrors

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SankalpGoel/HRMS-Lite/internal/shared/apperror"
)

var (
	ErrAttendanceAlreadyMarked = apperror.New(
		apperror.CodeConflict,
		"Attendance already marked for this employee on this date",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeFilter = apperror.New(
		apperror.CodeInvalidInput,
		"employee_id must be a positive integer",
		http.StatusBadRequest,
	)
	ErrInvalidDateFilter = apperror.New(
		apperror.CodeInvalidInput,
		"Dates must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
)

// AlreadyMarked names the conflicting (employee, date) pair, matching
// errors.Is against ErrAttendanceAlreadyMarked.
func AlreadyMarked(employeeID uint, date time.Time) error {
	return apperror.Wrap(
		ErrAttendanceAlreadyMarked,
		apperror.CodeConflict,
		fmt.Sprintf("Attendance already marked for employee %d on %s.", employeeID, date.Format("2006-01-02")),
		http.StatusBadRequest,
	)
}
