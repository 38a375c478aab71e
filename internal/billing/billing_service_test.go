package billing_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/grehub24-dot/campusflow/internal/billing"
	billingerrors "github.com/grehub24-dot/campusflow/internal/billing/errors"
	"github.com/grehub24-dot/campusflow/internal/feestructure"
	"github.com/grehub24-dot/campusflow/internal/payment"
	"github.com/grehub24-dot/campusflow/internal/student"
	"github.com/grehub24-dot/campusflow/internal/term"
)

type fakeBillingRepository struct {
	currentTermFn           func(ctx context.Context) (*term.AcademicTerm, error)
	findStudentFn           func(ctx context.Context, id string) (*student.Student, error)
	findActiveStudentsFn    func(ctx context.Context) ([]student.Student, error)
	findStructureFn         func(ctx context.Context, classID, termID string) (*feestructure.FeeStructure, error)
	findDefinitionsFn       func(ctx context.Context) (map[string]billing.ItemDefinition, error)
	findPaymentsFn          func(ctx context.Context, studentID, academicYear, session string) ([]payment.Payment, error)
	findPaymentsForPeriodFn func(ctx context.Context, academicYear, session string) ([]payment.Payment, error)
}

func (f *fakeBillingRepository) CurrentTerm(ctx context.Context) (*term.AcademicTerm, error) {
	if f.currentTermFn != nil {
		return f.currentTermFn(ctx)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBillingRepository) FindStudent(ctx context.Context, id string) (*student.Student, error) {
	if f.findStudentFn != nil {
		return f.findStudentFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBillingRepository) FindActiveStudents(ctx context.Context) ([]student.Student, error) {
	if f.findActiveStudentsFn != nil {
		return f.findActiveStudentsFn(ctx)
	}
	return nil, nil
}

func (f *fakeBillingRepository) FindStructure(ctx context.Context, classID, termID string) (*feestructure.FeeStructure, error) {
	if f.findStructureFn != nil {
		return f.findStructureFn(ctx, classID, termID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBillingRepository) FindDefinitions(ctx context.Context) (map[string]billing.ItemDefinition, error) {
	if f.findDefinitionsFn != nil {
		return f.findDefinitionsFn(ctx)
	}
	return map[string]billing.ItemDefinition{}, nil
}

func (f *fakeBillingRepository) FindPayments(ctx context.Context, studentID, academicYear, session string) ([]payment.Payment, error) {
	if f.findPaymentsFn != nil {
		return f.findPaymentsFn(ctx, studentID, academicYear, session)
	}
	return nil, nil
}

func (f *fakeBillingRepository) FindPaymentsForPeriod(ctx context.Context, academicYear, session string) ([]payment.Payment, error) {
	if f.findPaymentsForPeriodFn != nil {
		return f.findPaymentsForPeriodFn(ctx, academicYear, session)
	}
	return nil, nil
}

type invoiceFixture struct {
	term      *term.AcademicTerm
	classID   uuid.UUID
	student   student.Student
	defs      map[string]billing.ItemDefinition
	tuitionID uuid.UUID
	structure *feestructure.FeeStructure
}

func newInvoiceFixture() *invoiceFixture {
	f := &invoiceFixture{
		term: &term.AcademicTerm{
			ID:           uuid.New(),
			AcademicYear: "2025-2026",
			Session:      "1st Term",
			IsCurrent:    true,
		},
		classID:   uuid.New(),
		tuitionID: uuid.New(),
	}
	f.student = student.Student{
		ID:              uuid.New(),
		AdmissionNumber: "CF-0001",
		FullName:        "Esi Owusu",
		ClassID:         f.classID,
		AdmissionYear:   "2024-2025",
		AdmissionTerm:   "1st Term",
		Status:          student.StatusActive,
	}
	f.defs = map[string]billing.ItemDefinition{
		f.tuitionID.String(): {
			ID:        f.tuitionID.String(),
			Name:      "Tuition Term 1",
			AppliesTo: []string{billing.AppliesTerm1},
		},
	}
	f.structure = &feestructure.FeeStructure{
		ID:             uuid.New(),
		ClassID:        f.classID,
		AcademicTermID: f.term.ID,
		Items: []feestructure.FeeStructureItem{
			{FeeItemID: f.tuitionID, Amount: amount("500")},
		},
	}
	return f
}

func (f *invoiceFixture) repo() *fakeBillingRepository {
	return &fakeBillingRepository{
		currentTermFn: func(ctx context.Context) (*term.AcademicTerm, error) {
			return f.term, nil
		},
		findStudentFn: func(ctx context.Context, id string) (*student.Student, error) {
			if id != f.student.ID.String() {
				return nil, gorm.ErrRecordNotFound
			}
			return &f.student, nil
		},
		findActiveStudentsFn: func(ctx context.Context) ([]student.Student, error) {
			return []student.Student{f.student}, nil
		},
		findStructureFn: func(ctx context.Context, classID, termID string) (*feestructure.FeeStructure, error) {
			if classID != f.classID.String() || termID != f.term.ID.String() {
				return nil, gorm.ErrRecordNotFound
			}
			return f.structure, nil
		},
		findDefinitionsFn: func(ctx context.Context) (map[string]billing.ItemDefinition, error) {
			return f.defs, nil
		},
	}
}

func TestInvoiceForStudent_ComputesBalanceFromPayments(t *testing.T) {
	fixture := newInvoiceFixture()
	repo := fixture.repo()
	repo.findPaymentsFn = func(ctx context.Context, studentID, academicYear, session string) ([]payment.Payment, error) {
		assert.Equal(t, fixture.term.AcademicYear, academicYear)
		assert.Equal(t, fixture.term.Session, session)
		return []payment.Payment{
			{StudentID: fixture.student.ID, Amount: amount("200")},
		}, nil
	}

	service := billing.NewService(repo)

	inv, err := service.InvoiceForStudent(context.Background(), fixture.student.ID.String())
	assert.NoError(t, err)

	assert.True(t, inv.HasStructure)
	assert.Len(t, inv.Items, 1)
	assert.Equal(t, "Tuition Term 1", inv.Items[0].Name)
	assert.Equal(t, "500.00", inv.TotalDue)
	assert.Equal(t, "200.00", inv.TotalPaid)
	assert.Equal(t, "300.00", inv.Balance)
	assert.Equal(t, "Part-Payment", inv.Status)
	assert.False(t, inv.ComputedAt.IsZero())
}

func TestInvoiceForStudent_MissingStructureIsNotAnError(t *testing.T) {
	fixture := newInvoiceFixture()
	repo := fixture.repo()
	repo.findStructureFn = func(ctx context.Context, classID, termID string) (*feestructure.FeeStructure, error) {
		return nil, gorm.ErrRecordNotFound
	}

	service := billing.NewService(repo)

	inv, err := service.InvoiceForStudent(context.Background(), fixture.student.ID.String())
	assert.NoError(t, err)

	assert.False(t, inv.HasStructure)
	assert.Empty(t, inv.Items)
	assert.Equal(t, "0.00", inv.TotalDue)
}

func TestInvoiceForStudent_NoCurrentTerm(t *testing.T) {
	service := billing.NewService(&fakeBillingRepository{})

	_, err := service.InvoiceForStudent(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, billingerrors.ErrNoCurrentTerm)
}

func TestInvoiceForStudent_UnknownStudent(t *testing.T) {
	fixture := newInvoiceFixture()
	service := billing.NewService(fixture.repo())

	_, err := service.InvoiceForStudent(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, billingerrors.ErrStudentNotFound)
}

func TestOutstandingInvoices_ExcludesSettledStudents(t *testing.T) {
	fixture := newInvoiceFixture()

	paid := fixture.student
	owing := student.Student{
		ID:              uuid.New(),
		AdmissionNumber: "CF-0002",
		FullName:        "Kweku Annan",
		ClassID:         fixture.classID,
		AdmissionYear:   "2024-2025",
		AdmissionTerm:   "1st Term",
		Status:          student.StatusActive,
	}

	repo := fixture.repo()
	repo.findActiveStudentsFn = func(ctx context.Context) ([]student.Student, error) {
		return []student.Student{paid, owing}, nil
	}
	repo.findPaymentsForPeriodFn = func(ctx context.Context, academicYear, session string) ([]payment.Payment, error) {
		return []payment.Payment{
			{StudentID: paid.ID, Amount: amount("500")},
		}, nil
	}

	service := billing.NewService(repo)

	invoices, err := service.OutstandingInvoices(context.Background())
	assert.NoError(t, err)

	assert.Len(t, invoices, 1)
	assert.Equal(t, owing.ID.String(), invoices[0].StudentID)
	assert.Equal(t, "Unpaid", invoices[0].Status)
}

func TestDashboardSummary_AggregatesAcrossStudents(t *testing.T) {
	fixture := newInvoiceFixture()

	second := student.Student{
		ID:              uuid.New(),
		AdmissionNumber: "CF-0002",
		FullName:        "Kweku Annan",
		ClassID:         fixture.classID,
		AdmissionYear:   "2024-2025",
		AdmissionTerm:   "1st Term",
		Status:          student.StatusActive,
	}

	structureCalls := 0
	repo := fixture.repo()
	baseStructureFn := repo.findStructureFn
	repo.findStructureFn = func(ctx context.Context, classID, termID string) (*feestructure.FeeStructure, error) {
		structureCalls++
		return baseStructureFn(ctx, classID, termID)
	}
	repo.findActiveStudentsFn = func(ctx context.Context) ([]student.Student, error) {
		return []student.Student{fixture.student, second}, nil
	}
	repo.findPaymentsForPeriodFn = func(ctx context.Context, academicYear, session string) ([]payment.Payment, error) {
		return []payment.Payment{
			{StudentID: fixture.student.ID, Amount: amount("500")},
			{StudentID: second.ID, Amount: amount("150")},
		}, nil
	}

	service := billing.NewService(repo)

	dash, err := service.DashboardSummary(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 2, dash.StudentCount)
	assert.Equal(t, "1000.00", dash.ExpectedRevenue)
	assert.Equal(t, "650.00", dash.CollectedRevenue)
	assert.Equal(t, "350.00", dash.Outstanding)
	assert.Equal(t, 1, dash.PaidCount)
	assert.Equal(t, 1, dash.PartPaymentCount)
	assert.Equal(t, 0, dash.UnpaidCount)

	// Both students share a class; the structure is fetched once.
	assert.Equal(t, 1, structureCalls)
}

func TestDashboardSummary_SurvivesCancelledCaller(t *testing.T) {
	fixture := newInvoiceFixture()

	repo := fixture.repo()
	baseTermFn := repo.currentTermFn
	repo.currentTermFn = func(ctx context.Context) (*term.AcademicTerm, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return baseTermFn(ctx)
	}
	repo.findPaymentsForPeriodFn = func(ctx context.Context, academicYear, session string) ([]payment.Payment, error) {
		return nil, nil
	}

	service := billing.NewService(repo)

	// The computation runs on behalf of every coalesced caller, so one
	// caller's cancellation must not abort it.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dash, err := service.DashboardSummary(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, dash.StudentCount)
	assert.Equal(t, "500.00", dash.ExpectedRevenue)
}
