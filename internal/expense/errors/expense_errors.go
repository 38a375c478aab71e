package expenseerrors

import (
	"net/http"

	"github.com/grehub24-dot/campusflow/internal/shared/apperror"
)

var (
	ErrCategoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Expense category not found",
		http.StatusNotFound,
	)
	ErrDuplicateCategory = apperror.New(
		apperror.CodeConflict,
		"An expense category with this name and type already exists",
		http.StatusConflict,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Expense amount must be a positive decimal value",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date range: 'from' must not be after 'to'",
		http.StatusBadRequest,
	)
)
