package feeitem

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	feeitemerrors "github.com/grehub24-dot/campusflow/internal/feeitem/errors"
)

type Service interface {
	Create(ctx context.Context, req CreateFeeItemRequest) (FeeItemResponse, error)
	GetAll(ctx context.Context) ([]FeeItemResponse, error)
	GetByID(ctx context.Context, id string) (FeeItemResponse, error)
	Update(ctx context.Context, id string, req UpdateFeeItemRequest) (FeeItemResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateFeeItemRequest) (FeeItemResponse, error) {
	if !req.IsOptional && len(req.AppliesTo) == 0 {
		return FeeItemResponse{}, feeitemerrors.ErrMandatoryNeedsAppliesTo
	}

	item := &FeeItemDefinition{
		ID:         uuid.New(),
		Name:       strings.TrimSpace(req.Name),
		IsOptional: req.IsOptional,
		AppliesTo:  AppliesToList(req.AppliesTo),
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return FeeItemResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*item), nil
}

func (s *service) GetAll(ctx context.Context) ([]FeeItemResponse, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]FeeItemResponse, len(items))
	for i, item := range items {
		resp[i] = mapToResponse(item)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (FeeItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return FeeItemResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*item), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateFeeItemRequest) (FeeItemResponse, error) {
	if !req.IsOptional && len(req.AppliesTo) == 0 {
		return FeeItemResponse{}, feeitemerrors.ErrMandatoryNeedsAppliesTo
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return FeeItemResponse{}, mapRepositoryError(err)
	}

	item.Name = strings.TrimSpace(req.Name)
	item.IsOptional = req.IsOptional
	item.AppliesTo = AppliesToList(req.AppliesTo)

	if err := s.repo.Update(ctx, item); err != nil {
		return FeeItemResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*item), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	referenced, err := s.repo.IsReferencedByStructure(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return feeitemerrors.ErrFeeItemInUse
	}

	return s.repo.Delete(ctx, id)
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return feeitemerrors.ErrFeeItemNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return feeitemerrors.ErrDuplicateFeeItemName
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return feeitemerrors.ErrDuplicateFeeItemName
	}

	return err
}

func mapToResponse(item FeeItemDefinition) FeeItemResponse {
	return FeeItemResponse{
		ID:         item.ID.String(),
		Name:       item.Name,
		IsOptional: item.IsOptional,
		AppliesTo:  item.AppliesTo,
	}
}
