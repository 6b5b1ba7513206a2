package apperror

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns the first validator error into a client-facing
// AppError. Only the first failing field is reported.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		case "email":
			return New(
				CodeInvalidInput,
				fmt.Sprintf("%s must be a valid email address", field),
				http.StatusBadRequest,
			)
		case "oneof":
			return New(
				CodeInvalidInput,
				fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(e.Param(), " ", ", ")),
				http.StatusBadRequest,
			)
		case "datetime":
			return New(
				CodeInvalidInput,
				fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field),
				http.StatusBadRequest,
			)
		case "min", "max", "gt":
			return New(
				CodeInvalidInput,
				fmt.Sprintf("%s is out of the allowed range", field),
				http.StatusBadRequest,
			)
		default:
			return InvalidField(field)
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
