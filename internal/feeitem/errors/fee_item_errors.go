package feeitemerrors

import (
	"net/http"

	"github.com/grehub24-dot/campusflow/internal/shared/apperror"
)

var (
	ErrFeeItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Fee item not found",
		http.StatusNotFound,
	)
	ErrDuplicateFeeItemName = apperror.New(
		apperror.CodeConflict,
		"A fee item with this name already exists",
		http.StatusConflict,
	)
	ErrMandatoryNeedsAppliesTo = apperror.New(
		apperror.CodeInvalidInput,
		"A mandatory fee item needs at least one applies_to tag",
		http.StatusBadRequest,
	)
	ErrFeeItemInUse = apperror.New(
		apperror.CodeInvalidState,
		"Fee item is referenced by a fee structure and cannot be deleted",
		http.StatusConflict,
	)
)
