package staff_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/grehub24-dot/campusflow/internal/staff"
	stafferrors "github.com/grehub24-dot/campusflow/internal/staff/errors"
)

type fakeStaffRepository struct {
	createFn       func(ctx context.Context, member *staff.StaffMember) error
	findAllFn      func(ctx context.Context) ([]staff.StaffMember, error)
	findActiveFn   func(ctx context.Context) ([]staff.StaffMember, error)
	findByIDFn     func(ctx context.Context, id string) (*staff.StaffMember, error)
	updateFn       func(ctx context.Context, member *staff.StaffMember) error
	deleteFn       func(ctx context.Context, id string) error
	clearArrearsFn func(ctx context.Context, staffIDs []string) error
}

func (f *fakeStaffRepository) WithTx(tx *sql.Tx) staff.Repository { return f }

func (f *fakeStaffRepository) Create(ctx context.Context, member *staff.StaffMember) error {
	return f.createFn(ctx, member)
}

func (f *fakeStaffRepository) FindAll(ctx context.Context) ([]staff.StaffMember, error) {
	return f.findAllFn(ctx)
}

func (f *fakeStaffRepository) FindActive(ctx context.Context) ([]staff.StaffMember, error) {
	return f.findActiveFn(ctx)
}

func (f *fakeStaffRepository) FindByID(ctx context.Context, id string) (*staff.StaffMember, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeStaffRepository) Update(ctx context.Context, member *staff.StaffMember) error {
	return f.updateFn(ctx, member)
}

func (f *fakeStaffRepository) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeStaffRepository) ClearArrears(ctx context.Context, staffIDs []string) error {
	return f.clearArrearsFn(ctx, staffIDs)
}

func createStaffRequest() staff.CreateStaffRequest {
	return staff.CreateStaffRequest{
		StaffNumber: "STF-001",
		FullName:    "  Akosua Asante  ",
		Role:        "Teacher",
		GrossSalary: "2500.00",
		Arrears: []staff.ArrearRequest{
			{Description: "July top-up", Amount: "150.50"},
		},
		Deductions: []staff.DeductionRequest{
			{Name: "Welfare", Amount: "20"},
			{Name: "Union dues", Amount: "15"},
		},
	}
}

func TestCreate_ParsesAmountsAndNormalizesName(t *testing.T) {
	var created *staff.StaffMember
	repo := &fakeStaffRepository{
		createFn: func(ctx context.Context, member *staff.StaffMember) error {
			created = member
			return nil
		},
	}

	svc := staff.NewService(repo)

	resp, err := svc.Create(context.Background(), createStaffRequest())

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, "Akosua Asante", created.FullName)
	assert.Equal(t, staff.StatusActive, created.Status)
	assert.Equal(t, "2500.00", resp.GrossSalary)
	assert.Len(t, resp.Arrears, 1)
	assert.Equal(t, "150.50", resp.Arrears[0].Amount)
	assert.Len(t, resp.Deductions, 2)
	assert.Equal(t, "20.00", resp.Deductions[0].Amount)
}

func TestCreate_RejectsNegativeAndMalformedAmounts(t *testing.T) {
	repo := &fakeStaffRepository{
		createFn: func(ctx context.Context, member *staff.StaffMember) error {
			t.Fatal("repository should not be reached for invalid amounts")
			return nil
		},
	}
	svc := staff.NewService(repo)

	tests := []struct {
		name   string
		mutate func(req *staff.CreateStaffRequest)
	}{
		{
			name:   "negative gross salary",
			mutate: func(req *staff.CreateStaffRequest) { req.GrossSalary = "-100" },
		},
		{
			name:   "malformed gross salary",
			mutate: func(req *staff.CreateStaffRequest) { req.GrossSalary = "two thousand" },
		},
		{
			name:   "negative arrear",
			mutate: func(req *staff.CreateStaffRequest) { req.Arrears[0].Amount = "-5" },
		},
		{
			name:   "malformed deduction",
			mutate: func(req *staff.CreateStaffRequest) { req.Deductions[1].Amount = "abc" },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := createStaffRequest()
			tc.mutate(&req)

			_, err := svc.Create(context.Background(), req)

			assert.ErrorIs(t, err, stafferrors.ErrInvalidAmount)
		})
	}
}

func TestCreate_DuplicateStaffNumber(t *testing.T) {
	repo := &fakeStaffRepository{
		createFn: func(ctx context.Context, member *staff.StaffMember) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_staff_members_staff_number"}
		},
	}
	svc := staff.NewService(repo)

	_, err := svc.Create(context.Background(), createStaffRequest())

	assert.ErrorIs(t, err, stafferrors.ErrDuplicateStaffNumber)
}

func TestUpdate_UnknownStaffMember(t *testing.T) {
	repo := &fakeStaffRepository{
		findByIDFn: func(ctx context.Context, id string) (*staff.StaffMember, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := staff.NewService(repo)

	_, err := svc.Update(context.Background(), uuid.NewString(), staff.UpdateStaffRequest{
		FullName:    "Akosua Asante",
		GrossSalary: "2500",
		Status:      staff.StatusActive,
	})

	assert.ErrorIs(t, err, stafferrors.ErrStaffNotFound)
}

func TestUpdate_ReplacesSalaryArrearsAndStatus(t *testing.T) {
	id := uuid.New()
	var saved *staff.StaffMember
	repo := &fakeStaffRepository{
		findByIDFn: func(ctx context.Context, memberID string) (*staff.StaffMember, error) {
			return &staff.StaffMember{
				ID:          id,
				StaffNumber: "STF-001",
				FullName:    "Akosua Asante",
				Status:      staff.StatusActive,
			}, nil
		},
		updateFn: func(ctx context.Context, member *staff.StaffMember) error {
			saved = member
			return nil
		},
	}
	svc := staff.NewService(repo)

	resp, err := svc.Update(context.Background(), id.String(), staff.UpdateStaffRequest{
		FullName:    "Akosua Asante-Mensah",
		Role:        "Head Teacher",
		GrossSalary: "3000",
		Deductions: []staff.DeductionRequest{
			{Name: "Welfare", Amount: "25"},
		},
		Status: staff.StatusInactive,
	})

	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Equal(t, "STF-001", saved.StaffNumber)
	assert.Equal(t, staff.StatusInactive, saved.Status)
	assert.Equal(t, "3000.00", resp.GrossSalary)
	assert.Len(t, resp.Deductions, 1)
	assert.Empty(t, resp.Arrears)
}

func TestDelete_ChecksExistenceFirst(t *testing.T) {
	deleted := false
	repo := &fakeStaffRepository{
		findByIDFn: func(ctx context.Context, id string) (*staff.StaffMember, error) {
			return nil, gorm.ErrRecordNotFound
		},
		deleteFn: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}
	svc := staff.NewService(repo)

	err := svc.Delete(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, stafferrors.ErrStaffNotFound)
	assert.False(t, deleted)
}
