package feestructure

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	feestructureerrors "github.com/grehub24-dot/campusflow/internal/feestructure/errors"
)

type Service interface {
	Create(ctx context.Context, req CreateFeeStructureRequest) (FeeStructureResponse, error)
	GetAll(ctx context.Context) ([]FeeStructureResponse, error)
	GetByID(ctx context.Context, id string) (FeeStructureResponse, error)
	GetByClassAndTerm(ctx context.Context, classID, termID string) (FeeStructureResponse, error)
	Update(ctx context.Context, id string, req UpdateFeeStructureRequest) (FeeStructureResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateFeeStructureRequest) (FeeStructureResponse, error) {
	structureID := uuid.New()

	items, err := s.buildItems(ctx, structureID, req.Items)
	if err != nil {
		return FeeStructureResponse{}, err
	}

	structure := &FeeStructure{
		ID:             structureID,
		ClassID:        uuid.MustParse(req.ClassID),
		AcademicTermID: uuid.MustParse(req.AcademicTermID),
		Items:          items,
	}

	if err := s.repo.Create(ctx, structure); err != nil {
		return FeeStructureResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*structure), nil
}

func (s *service) GetAll(ctx context.Context) ([]FeeStructureResponse, error) {
	structures, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]FeeStructureResponse, len(structures))
	for i, structure := range structures {
		resp[i] = mapToResponse(structure)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (FeeStructureResponse, error) {
	structure, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return FeeStructureResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*structure), nil
}

func (s *service) GetByClassAndTerm(ctx context.Context, classID, termID string) (FeeStructureResponse, error) {
	structure, err := s.repo.FindByClassAndTerm(ctx, classID, termID)
	if err != nil {
		return FeeStructureResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*structure), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateFeeStructureRequest) (FeeStructureResponse, error) {
	structure, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return FeeStructureResponse{}, mapRepositoryError(err)
	}

	items, err := s.buildItems(ctx, structure.ID, req.Items)
	if err != nil {
		return FeeStructureResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return FeeStructureResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.ReplaceItems(ctx, id, items); err != nil {
		return FeeStructureResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return FeeStructureResponse{}, err
	}

	structure.Items = items
	return mapToResponse(*structure), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) buildItems(
	ctx context.Context,
	structureID uuid.UUID,
	reqs []StructureItemRequest,
) ([]FeeStructureItem, error) {
	items := make([]FeeStructureItem, 0, len(reqs))

	for i, item := range reqs {
		amount, err := decimal.NewFromString(item.Amount)
		if err != nil || amount.IsNegative() {
			return nil, feestructureerrors.ErrInvalidAmount
		}

		exists, err := s.repo.FeeItemExists(ctx, item.FeeItemID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, feestructureerrors.ErrUnknownFeeItem
		}

		items = append(items, FeeStructureItem{
			ID:             uuid.New(),
			FeeStructureID: structureID,
			FeeItemID:      uuid.MustParse(item.FeeItemID),
			Amount:         amount,
			Position:       i,
		})
	}

	return items, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return feestructureerrors.ErrStructureNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return feestructureerrors.ErrDuplicateStructure
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return feestructureerrors.ErrDuplicateStructure
	}

	return err
}

func mapToResponse(structure FeeStructure) FeeStructureResponse {
	items := make([]StructureItemResponse, len(structure.Items))
	for i, item := range structure.Items {
		items[i] = StructureItemResponse{
			FeeItemID: item.FeeItemID.String(),
			Amount:    item.Amount.StringFixed(2),
		}
	}

	return FeeStructureResponse{
		ID:             structure.ID.String(),
		ClassID:        structure.ClassID.String(),
		AcademicTermID: structure.AcademicTermID.String(),
		Items:          items,
	}
}
