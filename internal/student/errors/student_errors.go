package studenterrors

import (
	"net/http"

	"github.com/grehub24-dot/campusflow/internal/shared/apperror"
)

var (
	ErrStudentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Student not found",
		http.StatusNotFound,
	)
	ErrInvalidDateOfBirth = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date_of_birth, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidAdmissionYear = apperror.New(
		apperror.CodeInvalidInput,
		"invalid academic_year, expected YYYY-YYYY",
		http.StatusBadRequest,
	)
	ErrInvalidAdmissionTerm = apperror.New(
		apperror.CodeInvalidInput,
		"invalid term, expected a session label like '1st Term'",
		http.StatusBadRequest,
	)
	ErrAdmissionContention = apperror.New(
		apperror.CodeServiceUnavailable,
		"Could not allocate an admission number, please retry",
		http.StatusServiceUnavailable,
	)
)
