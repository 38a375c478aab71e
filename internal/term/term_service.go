package term

import (
	"context"
	"database/sql"
	"regexp"
	"time"

	"github.com/google/uuid"

	termerrors "github.com/grehub24-dot/campusflow/internal/term/errors"
)

var academicYearPattern = regexp.MustCompile(`^\d{4}-\d{4}$`)

// ValidAcademicYear reports whether the label is in "YYYY-YYYY" form, the
// vocabulary every term record uses.
func ValidAcademicYear(label string) bool {
	return academicYearPattern.MatchString(label)
}

// ValidSessionLabel reports whether the label carries a leading term number
// ("1st Term", "2nd Term", ...).
func ValidSessionLabel(label string) bool {
	probe := AcademicTerm{Session: label}
	return probe.TermNumber() >= 1
}

type Service interface {
	Create(ctx context.Context, req CreateTermRequest) (TermResponse, error)
	GetAll(ctx context.Context) ([]TermResponse, error)
	GetByID(ctx context.Context, id string) (TermResponse, error)
	GetCurrent(ctx context.Context) (TermResponse, error)
	Update(ctx context.Context, id string, req UpdateTermRequest) (TermResponse, error)
	Delete(ctx context.Context, id string) error
	SetCurrent(ctx context.Context, id string) (TermResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateTermRequest) (TermResponse, error) {
	start, end, err := validateTermRequest(req.AcademicYear, req.Session, req.StartDate, req.EndDate)
	if err != nil {
		return TermResponse{}, err
	}

	term := &AcademicTerm{
		ID:           uuid.New(),
		AcademicYear: req.AcademicYear,
		Session:      req.Session,
		StartDate:    start,
		EndDate:      end,
	}

	if err := s.repo.Create(ctx, term); err != nil {
		return TermResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*term), nil
}

func (s *service) GetAll(ctx context.Context) ([]TermResponse, error) {
	terms, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]TermResponse, len(terms))
	for i, t := range terms {
		resp[i] = mapToResponse(t)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (TermResponse, error) {
	term, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TermResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*term), nil
}

func (s *service) GetCurrent(ctx context.Context) (TermResponse, error) {
	term, err := s.repo.FindCurrent(ctx)
	if err != nil {
		return TermResponse{}, mapCurrentError(err)
	}
	return mapToResponse(*term), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTermRequest) (TermResponse, error) {
	start, end, err := validateTermRequest(req.AcademicYear, req.Session, req.StartDate, req.EndDate)
	if err != nil {
		return TermResponse{}, err
	}

	term, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TermResponse{}, mapRepositoryError(err)
	}

	// Invoices and payments key on the labels, so they freeze once referenced.
	if term.AcademicYear != req.AcademicYear || term.Session != req.Session {
		referenced, err := s.repo.HasPayments(ctx, term.AcademicYear, term.Session)
		if err != nil {
			return TermResponse{}, err
		}
		if referenced {
			return TermResponse{}, termerrors.ErrTermReferenced
		}
	}

	term.AcademicYear = req.AcademicYear
	term.Session = req.Session
	term.StartDate = start
	term.EndDate = end

	if err := s.repo.Update(ctx, term); err != nil {
		return TermResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*term), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	term, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	referenced, err := s.repo.HasPayments(ctx, term.AcademicYear, term.Session)
	if err != nil {
		return err
	}
	if referenced {
		return termerrors.ErrTermReferenced
	}

	return s.repo.Delete(ctx, id)
}

// SetCurrent clears every current flag and sets the target inside one
// transaction. There is never a committed state with two current terms.
func (s *service) SetCurrent(ctx context.Context, id string) (TermResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TermResponse{}, termerrors.ErrInvalidTermID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TermResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.ClearCurrent(ctx); err != nil {
		return TermResponse{}, err
	}

	if err := qtx.MarkCurrent(ctx, id); err != nil {
		return TermResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return TermResponse{}, err
	}

	term, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TermResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*term), nil
}

func validateTermRequest(year, session, startDate, endDate string) (time.Time, time.Time, error) {
	if !ValidAcademicYear(year) {
		return time.Time{}, time.Time{}, termerrors.ErrInvalidYearFormat
	}
	if !ValidSessionLabel(session) {
		return time.Time{}, time.Time{}, termerrors.ErrInvalidSessionLabel
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return time.Time{}, time.Time{}, termerrors.ErrInvalidDateRange
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return time.Time{}, time.Time{}, termerrors.ErrInvalidDateRange
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, termerrors.ErrInvalidDateRange
	}

	return start, end, nil
}

func mapToResponse(term AcademicTerm) TermResponse {
	return TermResponse{
		ID:           term.ID.String(),
		AcademicYear: term.AcademicYear,
		Session:      term.Session,
		TermNumber:   term.TermNumber(),
		StartDate:    term.StartDate.Format("2006-01-02"),
		EndDate:      term.EndDate.Format("2006-01-02"),
		IsCurrent:    term.IsCurrent,
	}
}
