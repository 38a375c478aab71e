package payrollerrors

import (
	"net/http"

	"github.com/grehub24-dot/campusflow/internal/shared/apperror"
)

var (
	ErrDuplicatePeriod = apperror.New(
		apperror.CodeConflict,
		"A payroll run already exists for this period",
		http.StatusConflict,
	)
	ErrEmptyRoster = apperror.New(
		apperror.CodePreconditionFailed,
		"No active staff members to run payroll for",
		http.StatusUnprocessableEntity,
	)
	ErrRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll run not found",
		http.StatusNotFound,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payslip not found in this run",
		http.StatusNotFound,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Month must be between 1 and 12 and year must be a four-digit year",
		http.StatusBadRequest,
	)
	ErrInvalidRate = apperror.New(
		apperror.CodeInvalidInput,
		"SSNIT rates must be percentages between 0 and 100",
		http.StatusBadRequest,
	)
	ErrInvalidBrackets = apperror.New(
		apperror.CodeInvalidInput,
		"Tax brackets must be non-negative, non-overlapping, and only the last bracket may be unbounded",
		http.StatusBadRequest,
	)
)
