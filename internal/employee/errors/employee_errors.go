package employeeerrors

import (
	"fmt"
	"net/http"

	"github.com/SankalpGoel/HRMS-Lite/internal/shared/apperror"
)

// Duplicate-key violations are reported as 400 by this API (the documented
// contract), while keeping the CONFLICT error code.
var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee ID already exists",
		http.StatusBadRequest,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Email already registered",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)

// EmployeeNotFound names the missing internal ID, matching errors.Is against
// ErrEmployeeNotFound.
func EmployeeNotFound(id uint) error {
	return apperror.Wrap(
		ErrEmployeeNotFound,
		apperror.CodeNotFound,
		fmt.Sprintf("Employee with ID %d not found.", id),
		http.StatusNotFound,
	)
}

// EmployeeIDTaken names the conflicting employee code.
func EmployeeIDTaken(code string) error {
	return apperror.Wrap(
		ErrEmployeeIDAlreadyExists,
		apperror.CodeConflict,
		fmt.Sprintf("Employee ID '%s' already exists.", code),
		http.StatusBadRequest,
	)
}

// EmailTaken names the conflicting email address.
func EmailTaken(email string) error {
	return apperror.Wrap(
		ErrEmailAlreadyExists,
		apperror.CodeConflict,
		fmt.Sprintf("Email '%s' already registered.", email),
		http.StatusBadRequest,
	)
}
