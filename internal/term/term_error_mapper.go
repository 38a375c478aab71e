package term

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	termerrors "github.com/grehub24-dot/campusflow/internal/term/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return termerrors.ErrTermNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return termerrors.ErrDuplicateTerm
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return termerrors.ErrDuplicateTerm
	}

	return err
}

func mapCurrentError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return termerrors.ErrNoCurrentTerm
	}
	return err
}
