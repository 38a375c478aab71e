package feestructureerrors

import (
	"net/http"

	"github.com/grehub24-dot/campusflow/internal/shared/apperror"
)

var (
	ErrStructureNotFound = apperror.New(
		apperror.CodeNotFound,
		"Fee structure not found",
		http.StatusNotFound,
	)
	ErrDuplicateStructure = apperror.New(
		apperror.CodeConflict,
		"A fee structure for this class and term already exists",
		http.StatusConflict,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Item amounts must be non-negative decimal values",
		http.StatusBadRequest,
	)
	ErrUnknownFeeItem = apperror.New(
		apperror.CodeInvalidInput,
		"One or more items reference an unknown fee item",
		http.StatusBadRequest,
	)
)
