package billingerrors

import (
	"net/http"

	"github.com/grehub24-dot/campusflow/internal/shared/apperror"
)

var (
	ErrNoCurrentTerm = apperror.New(
		apperror.CodePreconditionFailed,
		"No academic term is marked as current",
		http.StatusUnprocessableEntity,
	)
	ErrStudentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Student not found",
		http.StatusNotFound,
	)
)
