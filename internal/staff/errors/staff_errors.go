package stafferrors

import (
	"net/http"

	"github.com/grehub24-dot/campusflow/internal/shared/apperror"
)

var (
	ErrStaffNotFound = apperror.New(
		apperror.CodeNotFound,
		"Staff member not found",
		http.StatusNotFound,
	)
	ErrDuplicateStaffNumber = apperror.New(
		apperror.CodeConflict,
		"A staff member with this staff number already exists",
		http.StatusConflict,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Salary, arrear, and deduction amounts must be non-negative decimal values",
		http.StatusBadRequest,
	)
)
