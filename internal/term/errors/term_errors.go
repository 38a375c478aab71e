package termerrors

import (
	"net/http"

	"github.com/grehub24-dot/campusflow/internal/shared/apperror"
)

var (
	ErrInvalidTermID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid term id",
		http.StatusBadRequest,
	)
	ErrInvalidYearFormat = apperror.New(
		apperror.CodeInvalidInput,
		"academic year must look like 2025-2026",
		http.StatusBadRequest,
	)
	ErrInvalidSessionLabel = apperror.New(
		apperror.CodeInvalidInput,
		"session label must start with the term number, e.g. 1st Term",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before end_date",
		http.StatusBadRequest,
	)
	ErrTermNotFound = apperror.New(
		apperror.CodeNotFound,
		"Academic term not found",
		http.StatusNotFound,
	)
	ErrNoCurrentTerm = apperror.New(
		apperror.CodeInvalidState,
		"No academic term is marked current",
		http.StatusConflict,
	)
	ErrDuplicateTerm = apperror.New(
		apperror.CodeConflict,
		"A term with this academic year and session already exists",
		http.StatusConflict,
	)
	ErrTermReferenced = apperror.New(
		apperror.CodeInvalidState,
		"Term labels cannot change once payments reference them",
		http.StatusConflict,
	)
)
