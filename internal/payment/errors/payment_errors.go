package paymenterrors

import (
	"net/http"

	"github.com/grehub24-dot/campusflow/internal/shared/apperror"
)

var (
	ErrPaymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payment not found",
		http.StatusNotFound,
	)
	ErrUnknownStudent = apperror.New(
		apperror.CodeInvalidInput,
		"Payment references an unknown student",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Payment amount must be a positive decimal value",
		http.StatusBadRequest,
	)
	ErrInvalidPaidAt = apperror.New(
		apperror.CodeInvalidInput,
		"invalid paid_at, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
