package expense

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	expenseerrors "github.com/grehub24-dot/campusflow/internal/expense/errors"
	"github.com/grehub24-dot/campusflow/internal/shared/apperror"
)

type Service interface {
	CreateEntry(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)
	GetCategories(ctx context.Context) ([]CategoryResponse, error)
	GetEntriesByCategory(ctx context.Context, categoryID string) ([]EntryResponse, error)
	GetEntries(ctx context.Context, from, to string) ([]EntryResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateEntry(ctx context.Context, req CreateEntryRequest) (EntryResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.IsNegative() || amount.IsZero() {
		return EntryResponse{}, expenseerrors.ErrInvalidAmount
	}

	incurredAt, err := time.Parse("2006-01-02", req.IncurredAt)
	if err != nil {
		return EntryResponse{}, apperror.InvalidField("incurred_at", "must be a date in YYYY-MM-DD format")
	}

	categoryID, err := s.repo.GetOrCreateCategory(ctx, req.CategoryName, req.CategoryType)
	if err != nil {
		return EntryResponse{}, mapRepositoryError(err)
	}

	entry := &ExpenseEntry{
		ID:          uuid.New(),
		CategoryID:  categoryID,
		Description: req.Description,
		Amount:      amount,
		IncurredAt:  incurredAt,
	}
	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		return EntryResponse{}, mapRepositoryError(err)
	}

	return mapEntryToResponse(*entry), nil
}

func (s *service) GetCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.repo.FindCategories(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = CategoryResponse{
			ID:   c.ID.String(),
			Name: c.Name,
			Type: c.Type,
		}
	}
	return resp, nil
}

func (s *service) GetEntriesByCategory(ctx context.Context, categoryID string) ([]EntryResponse, error) {
	if _, err := uuid.Parse(categoryID); err != nil {
		return nil, apperror.InvalidField("category_id", "must be a valid UUID")
	}

	entries, err := s.repo.FindEntriesByCategory(ctx, categoryID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapEntriesToResponse(entries), nil
}

func (s *service) GetEntries(ctx context.Context, from, to string) ([]EntryResponse, error) {
	var fromDate, toDate time.Time
	var err error

	if from != "" {
		fromDate, err = time.Parse("2006-01-02", from)
		if err != nil {
			return nil, apperror.InvalidField("from", "must be a date in YYYY-MM-DD format")
		}
	}
	if to != "" {
		toDate, err = time.Parse("2006-01-02", to)
		if err != nil {
			return nil, apperror.InvalidField("to", "must be a date in YYYY-MM-DD format")
		}
	}
	if !fromDate.IsZero() && !toDate.IsZero() && fromDate.After(toDate) {
		return nil, expenseerrors.ErrInvalidDateRange
	}

	entries, err := s.repo.FindEntries(ctx, fromDate, toDate)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapEntriesToResponse(entries), nil
}

func mapEntriesToResponse(entries []ExpenseEntry) []EntryResponse {
	resp := make([]EntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = mapEntryToResponse(e)
	}
	return resp
}

func mapEntryToResponse(e ExpenseEntry) EntryResponse {
	return EntryResponse{
		ID:          e.ID.String(),
		CategoryID:  e.CategoryID.String(),
		Description: e.Description,
		Amount:      e.Amount.StringFixed(2),
		IncurredAt:  e.IncurredAt.Format("2006-01-02"),
	}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return expenseerrors.ErrCategoryNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return expenseerrors.ErrDuplicateCategory
	}

	return apperror.Wrap(err, apperror.CodeInternalError, "expense storage failure", 500)
}
