package term_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/grehub24-dot/campusflow/internal/term"
	termerrors "github.com/grehub24-dot/campusflow/internal/term/errors"
)

type fakeTermRepository struct {
	withTxFn      func(tx *sql.Tx) term.Repository
	createFn      func(ctx context.Context, t *term.AcademicTerm) error
	findByIDFn    func(ctx context.Context, id string) (*term.AcademicTerm, error)
	findCurrentFn func(ctx context.Context) (*term.AcademicTerm, error)
	updateFn      func(ctx context.Context, t *term.AcademicTerm) error
	deleteFn      func(ctx context.Context, id string) error
	clearFn       func(ctx context.Context) error
	markFn        func(ctx context.Context, id string) error
	hasPaymentsFn func(ctx context.Context, academicYear, session string) (bool, error)
}

func (f *fakeTermRepository) WithTx(tx *sql.Tx) term.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeTermRepository) Create(ctx context.Context, t *term.AcademicTerm) error {
	if f.createFn != nil {
		return f.createFn(ctx, t)
	}
	return nil
}

func (f *fakeTermRepository) FindAll(ctx context.Context) ([]term.AcademicTerm, error) {
	return nil, nil
}

func (f *fakeTermRepository) FindByID(ctx context.Context, id string) (*term.AcademicTerm, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTermRepository) FindCurrent(ctx context.Context) (*term.AcademicTerm, error) {
	if f.findCurrentFn != nil {
		return f.findCurrentFn(ctx)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTermRepository) Update(ctx context.Context, t *term.AcademicTerm) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, t)
	}
	return nil
}

func (f *fakeTermRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeTermRepository) ClearCurrent(ctx context.Context) error {
	if f.clearFn != nil {
		return f.clearFn(ctx)
	}
	return nil
}

func (f *fakeTermRepository) MarkCurrent(ctx context.Context, id string) error {
	if f.markFn != nil {
		return f.markFn(ctx, id)
	}
	return nil
}

func (f *fakeTermRepository) HasPayments(ctx context.Context, academicYear, session string) (bool, error) {
	if f.hasPaymentsFn != nil {
		return f.hasPaymentsFn(ctx, academicYear, session)
	}
	return false, nil
}

func sampleTerm() *term.AcademicTerm {
	return &term.AcademicTerm{
		ID:           uuid.New(),
		AcademicYear: "2025-2026",
		Session:      "1st Term",
		StartDate:    time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreate_ValidatesInput(t *testing.T) {
	service := term.NewService(nil, &fakeTermRepository{})

	cases := []struct {
		name string
		req  term.CreateTermRequest
		want error
	}{
		{
			name: "malformed academic year",
			req:  term.CreateTermRequest{AcademicYear: "2025/26", Session: "1st Term", StartDate: "2025-09-08", EndDate: "2025-12-12"},
			want: termerrors.ErrInvalidYearFormat,
		},
		{
			name: "session without a leading term number",
			req:  term.CreateTermRequest{AcademicYear: "2025-2026", Session: "First Term", StartDate: "2025-09-08", EndDate: "2025-12-12"},
			want: termerrors.ErrInvalidSessionLabel,
		},
		{
			name: "start after end",
			req:  term.CreateTermRequest{AcademicYear: "2025-2026", Session: "1st Term", StartDate: "2025-12-12", EndDate: "2025-09-08"},
			want: termerrors.ErrInvalidDateRange,
		},
		{
			name: "start equal to end",
			req:  term.CreateTermRequest{AcademicYear: "2025-2026", Session: "1st Term", StartDate: "2025-09-08", EndDate: "2025-09-08"},
			want: termerrors.ErrInvalidDateRange,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreate_ParsesTermNumberFromSession(t *testing.T) {
	var created *term.AcademicTerm
	repo := &fakeTermRepository{
		createFn: func(ctx context.Context, at *term.AcademicTerm) error {
			created = at
			return nil
		},
	}

	service := term.NewService(nil, repo)

	resp, err := service.Create(context.Background(), term.CreateTermRequest{
		AcademicYear: "2025-2026",
		Session:      "2nd Term",
		StartDate:    "2026-01-12",
		EndDate:      "2026-04-10",
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, 2, resp.TermNumber)
	assert.False(t, resp.IsCurrent)
}

func TestSetCurrent_ClearsAndMarksInOneTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	target := sampleTerm()

	var calls []string
	repo := &fakeTermRepository{
		clearFn: func(ctx context.Context) error {
			calls = append(calls, "clear")
			return nil
		},
		markFn: func(ctx context.Context, id string) error {
			calls = append(calls, "mark:"+id)
			return nil
		},
		findByIDFn: func(ctx context.Context, id string) (*term.AcademicTerm, error) {
			target.IsCurrent = true
			return target, nil
		},
	}

	service := term.NewService(db, repo)

	resp, err := service.SetCurrent(context.Background(), target.ID.String())
	assert.NoError(t, err)

	// Clear-all runs before the target is marked, inside the same tx.
	assert.Equal(t, []string{"clear", "mark:" + target.ID.String()}, calls)
	assert.True(t, resp.IsCurrent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetCurrent_UnknownTermRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeTermRepository{
		markFn: func(ctx context.Context, id string) error {
			return gorm.ErrRecordNotFound
		},
	}

	service := term.NewService(db, repo)

	_, err = service.SetCurrent(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, termerrors.ErrTermNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetCurrent_RejectsMalformedID(t *testing.T) {
	service := term.NewService(nil, &fakeTermRepository{})

	_, err := service.SetCurrent(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, termerrors.ErrInvalidTermID)
}

func TestUpdate_LabelsFreezeOncePaymentsReferenceThem(t *testing.T) {
	existing := sampleTerm()

	repo := &fakeTermRepository{
		findByIDFn: func(ctx context.Context, id string) (*term.AcademicTerm, error) {
			return existing, nil
		},
		hasPaymentsFn: func(ctx context.Context, academicYear, session string) (bool, error) {
			assert.Equal(t, existing.AcademicYear, academicYear)
			assert.Equal(t, existing.Session, session)
			return true, nil
		},
	}

	service := term.NewService(nil, repo)

	_, err := service.Update(context.Background(), existing.ID.String(), term.UpdateTermRequest{
		AcademicYear: "2026-2027",
		Session:      existing.Session,
		StartDate:    "2025-09-08",
		EndDate:      "2025-12-12",
	})
	assert.ErrorIs(t, err, termerrors.ErrTermReferenced)
}

func TestUpdate_DateOnlyChangeSkipsReferenceCheck(t *testing.T) {
	existing := sampleTerm()

	checked := false
	updated := false
	repo := &fakeTermRepository{
		findByIDFn: func(ctx context.Context, id string) (*term.AcademicTerm, error) {
			return existing, nil
		},
		hasPaymentsFn: func(ctx context.Context, academicYear, session string) (bool, error) {
			checked = true
			return true, nil
		},
		updateFn: func(ctx context.Context, at *term.AcademicTerm) error {
			updated = true
			return nil
		},
	}

	service := term.NewService(nil, repo)

	resp, err := service.Update(context.Background(), existing.ID.String(), term.UpdateTermRequest{
		AcademicYear: existing.AcademicYear,
		Session:      existing.Session,
		StartDate:    "2025-09-15",
		EndDate:      "2025-12-19",
	})

	assert.NoError(t, err)
	assert.False(t, checked)
	assert.True(t, updated)
	assert.Equal(t, "2025-09-15", resp.StartDate)
}

func TestDelete_BlockedWhileReferenced(t *testing.T) {
	existing := sampleTerm()

	deleted := false
	repo := &fakeTermRepository{
		findByIDFn: func(ctx context.Context, id string) (*term.AcademicTerm, error) {
			return existing, nil
		},
		hasPaymentsFn: func(ctx context.Context, academicYear, session string) (bool, error) {
			return true, nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}

	service := term.NewService(nil, repo)

	err := service.Delete(context.Background(), existing.ID.String())
	assert.ErrorIs(t, err, termerrors.ErrTermReferenced)
	assert.False(t, deleted)
}

func TestGetCurrent_NoCurrentTerm(t *testing.T) {
	service := term.NewService(nil, &fakeTermRepository{})

	_, err := service.GetCurrent(context.Background())
	assert.ErrorIs(t, err, termerrors.ErrNoCurrentTerm)
}
