package staff

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	stafferrors "github.com/grehub24-dot/campusflow/internal/staff/errors"
)

type Service interface {
	Create(ctx context.Context, req CreateStaffRequest) (StaffResponse, error)
	GetAll(ctx context.Context) ([]StaffResponse, error)
	GetByID(ctx context.Context, id string) (StaffResponse, error)
	Update(ctx context.Context, id string, req UpdateStaffRequest) (StaffResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateStaffRequest) (StaffResponse, error) {
	gross, err := parseAmount(req.GrossSalary)
	if err != nil {
		return StaffResponse{}, err
	}

	arrears, err := parseArrears(req.Arrears)
	if err != nil {
		return StaffResponse{}, err
	}
	deductions, err := parseDeductions(req.Deductions)
	if err != nil {
		return StaffResponse{}, err
	}

	member := &StaffMember{
		ID:          uuid.New(),
		StaffNumber: strings.TrimSpace(req.StaffNumber),
		FullName:    strings.TrimSpace(req.FullName),
		Role:        req.Role,
		GrossSalary: gross,
		Arrears:     arrears,
		Deductions:  deductions,
		Status:      StatusActive,
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return StaffResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*member), nil
}

func (s *service) GetAll(ctx context.Context) ([]StaffResponse, error) {
	members, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]StaffResponse, len(members))
	for i, m := range members {
		resp[i] = mapToResponse(m)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (StaffResponse, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return StaffResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*member), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateStaffRequest) (StaffResponse, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return StaffResponse{}, mapRepositoryError(err)
	}

	gross, err := parseAmount(req.GrossSalary)
	if err != nil {
		return StaffResponse{}, err
	}
	arrears, err := parseArrears(req.Arrears)
	if err != nil {
		return StaffResponse{}, err
	}
	deductions, err := parseDeductions(req.Deductions)
	if err != nil {
		return StaffResponse{}, err
	}

	member.FullName = strings.TrimSpace(req.FullName)
	member.Role = req.Role
	member.GrossSalary = gross
	member.Arrears = arrears
	member.Deductions = deductions
	member.Status = req.Status

	if err := s.repo.Update(ctx, member); err != nil {
		return StaffResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*member), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	return s.repo.Delete(ctx, id)
}

func parseAmount(v string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(v)
	if err != nil || amount.IsNegative() {
		return decimal.Zero, stafferrors.ErrInvalidAmount
	}
	return amount, nil
}

func parseArrears(reqs []ArrearRequest) (ArrearList, error) {
	arrears := make(ArrearList, 0, len(reqs))
	for _, a := range reqs {
		amount, err := parseAmount(a.Amount)
		if err != nil {
			return nil, err
		}
		arrears = append(arrears, Arrear{Description: a.Description, Amount: amount})
	}
	return arrears, nil
}

func parseDeductions(reqs []DeductionRequest) (DeductionList, error) {
	deductions := make(DeductionList, 0, len(reqs))
	for _, d := range reqs {
		amount, err := parseAmount(d.Amount)
		if err != nil {
			return nil, err
		}
		deductions = append(deductions, Deduction{Name: d.Name, Amount: amount})
	}
	return deductions, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return stafferrors.ErrStaffNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return stafferrors.ErrDuplicateStaffNumber
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return stafferrors.ErrDuplicateStaffNumber
	}

	return err
}

func mapToResponse(member StaffMember) StaffResponse {
	arrears := make([]ArrearResponse, len(member.Arrears))
	for i, a := range member.Arrears {
		arrears[i] = ArrearResponse{Description: a.Description, Amount: a.Amount.StringFixed(2)}
	}

	deductions := make([]DeductionResponse, len(member.Deductions))
	for i, d := range member.Deductions {
		deductions[i] = DeductionResponse{Name: d.Name, Amount: d.Amount.StringFixed(2)}
	}

	return StaffResponse{
		ID:          member.ID.String(),
		StaffNumber: member.StaffNumber,
		FullName:    member.FullName,
		Role:        member.Role,
		GrossSalary: member.GrossSalary.StringFixed(2),
		Arrears:     arrears,
		Deductions:  deductions,
		Status:      member.Status,
	}
}
