package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	billingerrors "github.com/grehub24-dot/campusflow/internal/billing/errors"
	"github.com/grehub24-dot/campusflow/internal/payment"
	"github.com/grehub24-dot/campusflow/internal/shared/apperror"
	"github.com/grehub24-dot/campusflow/internal/shared/contextutil"
	"github.com/grehub24-dot/campusflow/internal/student"
	"github.com/grehub24-dot/campusflow/internal/term"
)

type Service interface {
	InvoiceForStudent(ctx context.Context, studentID string) (InvoiceResponse, error)
	OutstandingInvoices(ctx context.Context) ([]InvoiceResponse, error)
	DashboardSummary(ctx context.Context) (DashboardResponse, error)
}

type service struct {
	repo  Repository
	group singleflight.Group
	log   *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		log:  zap.L().Named("billing"),
	}
}

func (s *service) InvoiceForStudent(ctx context.Context, studentID string) (InvoiceResponse, error) {
	if _, err := uuid.Parse(studentID); err != nil {
		return InvoiceResponse{}, apperror.InvalidField("student_id", "must be a valid UUID")
	}

	currentTerm, err := s.currentTerm(ctx)
	if err != nil {
		return InvoiceResponse{}, err
	}

	stu, err := s.repo.FindStudent(ctx, studentID)
	if err != nil {
		return InvoiceResponse{}, mapRepositoryError(err)
	}

	definitions, err := s.repo.FindDefinitions(ctx)
	if err != nil {
		return InvoiceResponse{}, mapRepositoryError(err)
	}

	return s.computeInvoice(ctx, *stu, *currentTerm, definitions)
}

func (s *service) currentTerm(ctx context.Context) (*term.AcademicTerm, error) {
	currentTerm, err := s.repo.CurrentTerm(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, billingerrors.ErrNoCurrentTerm
	}
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return currentTerm, nil
}

func (s *service) computeInvoice(
	ctx context.Context,
	stu student.Student,
	currentTerm term.AcademicTerm,
	definitions map[string]ItemDefinition,
) (InvoiceResponse, error) {
	structureItems, hasStructure, err := s.structureFor(ctx, stu.ClassID.String(), currentTerm.ID.String())
	if err != nil {
		return InvoiceResponse{}, mapRepositoryError(err)
	}

	payments, err := s.repo.FindPayments(ctx, stu.ID.String(), currentTerm.AcademicYear, currentTerm.Session)
	if err != nil {
		return InvoiceResponse{}, mapRepositoryError(err)
	}

	return s.buildInvoice(stu, currentTerm, definitions, structureItems, hasStructure, payments), nil
}

// structureFor treats a missing fee structure as zero configured lines, not an
// error; the caller surfaces the distinction through HasStructure.
func (s *service) structureFor(ctx context.Context, classID, termID string) ([]StructureItem, bool, error) {
	structure, err := s.repo.FindStructure(ctx, classID, termID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		contextutil.GetLogger(ctx, s.log).Warn("no fee structure configured",
			zap.String("class_id", classID),
			zap.String("term_id", termID),
		)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	items := make([]StructureItem, len(structure.Items))
	for i, item := range structure.Items {
		items[i] = StructureItem{FeeItemID: item.FeeItemID.String(), Amount: item.Amount}
	}
	return items, true, nil
}

func (s *service) buildInvoice(
	stu student.Student,
	currentTerm term.AcademicTerm,
	definitions map[string]ItemDefinition,
	structureItems []StructureItem,
	hasStructure bool,
	payments []payment.Payment,
) InvoiceResponse {
	paidNames := make(map[string]bool)
	amounts := make([]decimal.Decimal, len(payments))
	for i, p := range payments {
		amounts[i] = p.Amount
		for _, item := range p.Items {
			paidNames[item.Name] = true
		}
	}

	applicable := ResolveApplicableItems(
		structureItems,
		definitions,
		stu.IsNewFor(currentTerm.AcademicYear, currentTerm.Session),
		currentTerm.TermNumber(),
		paidNames,
	)
	balance := ComputeBalance(applicable, amounts)

	items := make([]InvoiceItemResponse, len(applicable))
	for i, item := range applicable {
		items[i] = InvoiceItemResponse{Name: item.Name, Amount: item.Amount.StringFixed(2)}
	}

	return InvoiceResponse{
		StudentID:       stu.ID.String(),
		AdmissionNumber: stu.AdmissionNumber,
		StudentName:     stu.FullName,
		ClassID:         stu.ClassID.String(),
		AcademicYear:    currentTerm.AcademicYear,
		Session:         currentTerm.Session,
		Items:           items,
		TotalDue:        balance.TotalDue.StringFixed(2),
		TotalPaid:       balance.TotalPaid.StringFixed(2),
		Balance:         balance.Outstanding.StringFixed(2),
		Status:          string(balance.Status),
		HasStructure:    hasStructure,
		ComputedAt:      time.Now().UTC(),
	}
}

func (s *service) OutstandingInvoices(ctx context.Context) ([]InvoiceResponse, error) {
	invoices, _, err := s.computeAllInvoices(ctx)
	if err != nil {
		return nil, err
	}

	outstanding := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Status != string(StatusPaid) {
			outstanding = append(outstanding, inv)
		}
	}
	return outstanding, nil
}

// DashboardSummary collapses concurrent identical requests into one
// computation; the dashboard is the hottest read in the system and the
// underlying scan touches every student.
func (s *service) DashboardSummary(ctx context.Context) (DashboardResponse, error) {
	// The closure runs once on behalf of every coalesced caller, so it must
	// not inherit the first caller's cancellation.
	result, err, _ := s.group.Do("dashboard", func() (interface{}, error) {
		return s.computeDashboard(context.WithoutCancel(ctx))
	})
	if err != nil {
		return DashboardResponse{}, err
	}
	return result.(DashboardResponse), nil
}

func (s *service) computeDashboard(ctx context.Context) (DashboardResponse, error) {
	invoices, currentTerm, err := s.computeAllInvoices(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}

	expected := decimal.Zero
	collected := decimal.Zero
	var paid, part, unpaid int
	for _, inv := range invoices {
		due, _ := decimal.NewFromString(inv.TotalDue)
		got, _ := decimal.NewFromString(inv.TotalPaid)
		expected = expected.Add(due)
		collected = collected.Add(got)

		switch inv.Status {
		case string(StatusPaid):
			paid++
		case string(StatusPartPayment):
			part++
		default:
			unpaid++
		}
	}

	return DashboardResponse{
		AcademicYear:     currentTerm.AcademicYear,
		Session:          currentTerm.Session,
		StudentCount:     len(invoices),
		ExpectedRevenue:  expected.StringFixed(2),
		CollectedRevenue: collected.StringFixed(2),
		Outstanding:      expected.Sub(collected).StringFixed(2),
		PaidCount:        paid,
		PartPaymentCount: part,
		UnpaidCount:      unpaid,
		ComputedAt:       time.Now().UTC(),
	}, nil
}

func (s *service) computeAllInvoices(ctx context.Context) ([]InvoiceResponse, term.AcademicTerm, error) {
	currentTerm, err := s.currentTerm(ctx)
	if err != nil {
		return nil, term.AcademicTerm{}, err
	}

	students, err := s.repo.FindActiveStudents(ctx)
	if err != nil {
		return nil, term.AcademicTerm{}, mapRepositoryError(err)
	}

	definitions, err := s.repo.FindDefinitions(ctx)
	if err != nil {
		return nil, term.AcademicTerm{}, mapRepositoryError(err)
	}

	allPayments, err := s.repo.FindPaymentsForPeriod(ctx, currentTerm.AcademicYear, currentTerm.Session)
	if err != nil {
		return nil, term.AcademicTerm{}, mapRepositoryError(err)
	}
	paymentsByStudent := make(map[string][]payment.Payment)
	for _, p := range allPayments {
		key := p.StudentID.String()
		paymentsByStudent[key] = append(paymentsByStudent[key], p)
	}

	// Structures are shared per class; fetch each once.
	structureCache := make(map[string][]StructureItem)
	hasStructureCache := make(map[string]bool)

	invoices := make([]InvoiceResponse, 0, len(students))
	for _, stu := range students {
		classID := stu.ClassID.String()
		structureItems, cached := structureCache[classID]
		if !cached {
			var hasStructure bool
			structureItems, hasStructure, err = s.structureFor(ctx, classID, currentTerm.ID.String())
			if err != nil {
				return nil, term.AcademicTerm{}, mapRepositoryError(err)
			}
			structureCache[classID] = structureItems
			hasStructureCache[classID] = hasStructure
		}

		invoices = append(invoices, s.buildInvoice(
			stu,
			*currentTerm,
			definitions,
			structureItems,
			hasStructureCache[classID],
			paymentsByStudent[stu.ID.String()],
		))
	}

	return invoices, *currentTerm, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return billingerrors.ErrStudentNotFound
	}

	return apperror.Wrap(err, apperror.CodeInternalError, "billing storage failure", 500)
}
