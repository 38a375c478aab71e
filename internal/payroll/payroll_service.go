package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/grehub24-dot/campusflow/internal/events"
	"github.com/grehub24-dot/campusflow/internal/expense"
	"github.com/grehub24-dot/campusflow/internal/messaging/kafka"
	payrollerrors "github.com/grehub24-dot/campusflow/internal/payroll/errors"
	"github.com/grehub24-dot/campusflow/internal/shared/apperror"
	"github.com/grehub24-dot/campusflow/internal/shared/contextutil"
	"github.com/grehub24-dot/campusflow/internal/staff"
)

type Service interface {
	GetSettings(ctx context.Context) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
	Run(ctx context.Context, req RunPayrollRequest) (RunResponse, error)
	GetRuns(ctx context.Context) ([]RunResponse, error)
	GetRunByID(ctx context.Context, id string) (RunResponse, error)
	GetPayslipPDF(ctx context.Context, runID, staffID string) ([]byte, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	staffRepo staff.Repository
	expenses  expense.Repository
	outbox    kafka.OutboxRepository
	log       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	staffRepo staff.Repository,
	expenses expense.Repository,
	outbox kafka.OutboxRepository,
) Service {
	return &service{
		db:        db,
		repo:      repo,
		staffRepo: staffRepo,
		expenses:  expenses,
		outbox:    outbox,
		log:       zap.L().Named("payroll"),
	}
}

// defaultSettings is used until an administrator saves a settings row.
// Rates and brackets follow the GRA/SSNIT schedule current at deployment.
func defaultSettings() PayrollSettings {
	bound := func(v string) *decimal.Decimal {
		d := decimal.RequireFromString(v)
		return &d
	}
	return PayrollSettings{
		SSNITEmployeeRate: decimal.RequireFromString("5.5"),
		SSNITEmployerRate: decimal.RequireFromString("13"),
		TaxBrackets: BracketList{
			{From: decimal.Zero, To: bound("490"), Rate: decimal.Zero},
			{From: decimal.RequireFromString("490"), To: bound("600"), Rate: decimal.RequireFromString("5")},
			{From: decimal.RequireFromString("600"), To: bound("730"), Rate: decimal.RequireFromString("10")},
			{From: decimal.RequireFromString("730"), To: bound("3000"), Rate: decimal.RequireFromString("17.5")},
			{From: decimal.RequireFromString("3000"), To: nil, Rate: decimal.RequireFromString("25")},
		},
	}
}

func (s *service) loadSettings(ctx context.Context) (PayrollSettings, error) {
	settings, err := s.repo.GetSettings(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return defaultSettings(), nil
	}
	if err != nil {
		return PayrollSettings{}, err
	}
	return *settings, nil
}

func (s *service) GetSettings(ctx context.Context) (SettingsResponse, error) {
	settings, err := s.loadSettings(ctx)
	if err != nil {
		return SettingsResponse{}, mapRepositoryError(err)
	}
	return mapSettingsToResponse(settings), nil
}

func (s *service) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error) {
	settings, err := parseSettingsRequest(req)
	if err != nil {
		return SettingsResponse{}, err
	}

	if err := s.repo.SaveSettings(ctx, &settings); err != nil {
		return SettingsResponse{}, mapRepositoryError(err)
	}
	return mapSettingsToResponse(settings), nil
}

func parseSettingsRequest(req UpdateSettingsRequest) (PayrollSettings, error) {
	employeeRate, err := parseRate(req.SSNITEmployeeRate)
	if err != nil {
		return PayrollSettings{}, err
	}
	employerRate, err := parseRate(req.SSNITEmployerRate)
	if err != nil {
		return PayrollSettings{}, err
	}

	brackets := make(BracketList, len(req.TaxBrackets))
	for i, b := range req.TaxBrackets {
		from, err := decimal.NewFromString(b.From)
		if err != nil || from.IsNegative() {
			return PayrollSettings{}, payrollerrors.ErrInvalidBrackets
		}
		rate, err := parseRate(b.Rate)
		if err != nil {
			return PayrollSettings{}, payrollerrors.ErrInvalidBrackets
		}
		bracket := TaxBracket{From: from, Rate: rate}
		if b.To != nil {
			to, err := decimal.NewFromString(*b.To)
			if err != nil {
				return PayrollSettings{}, payrollerrors.ErrInvalidBrackets
			}
			bracket.To = &to
		}
		brackets[i] = bracket
	}

	if err := validateBrackets(brackets); err != nil {
		return PayrollSettings{}, err
	}

	return PayrollSettings{
		SSNITEmployeeRate: employeeRate,
		SSNITEmployerRate: employerRate,
		TaxBrackets:       brackets,
	}, nil
}

func parseRate(v string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(v)
	if err != nil || rate.IsNegative() || rate.GreaterThan(oneHundred) {
		return decimal.Decimal{}, payrollerrors.ErrInvalidRate
	}
	return rate, nil
}

// validateBrackets enforces a well-formed table at save time: ascending,
// contiguous-or-gapless is not required, but ranges must not overlap and only
// the final bracket may leave To open.
func validateBrackets(brackets BracketList) error {
	for i, b := range brackets {
		if b.To == nil {
			if i != len(brackets)-1 {
				return payrollerrors.ErrInvalidBrackets
			}
			continue
		}
		if !b.To.GreaterThan(b.From) {
			return payrollerrors.ErrInvalidBrackets
		}
		if i+1 < len(brackets) && brackets[i+1].From.LessThan(*b.To) {
			return payrollerrors.ErrInvalidBrackets
		}
	}
	return nil
}

func (s *service) Run(ctx context.Context, req RunPayrollRequest) (RunResponse, error) {
	if req.Month < 1 || req.Month > 12 {
		return RunResponse{}, payrollerrors.ErrInvalidPeriod
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.PeriodExists(ctx, req.Month, req.Year)
	if err != nil {
		return RunResponse{}, mapRepositoryError(err)
	}
	if exists {
		return RunResponse{}, payrollerrors.ErrDuplicatePeriod
	}

	// The roster is read through the run transaction so the payslips and the
	// arrears-clear below see the same staff rows.
	staffTx := s.staffRepo.WithTx(tx)
	roster, err := staffTx.FindActive(ctx)
	if err != nil {
		return RunResponse{}, mapRepositoryError(err)
	}
	if len(roster) == 0 {
		return RunResponse{}, payrollerrors.ErrEmptyRoster
	}

	settings, err := s.loadSettings(ctx)
	if err != nil {
		return RunResponse{}, mapRepositoryError(err)
	}

	run := &PayrollRun{
		ID:     uuid.New(),
		Month:  req.Month,
		Year:   req.Year,
		Status: RunStatusCommitted,
	}

	total := decimal.Zero
	var arrearsCleared []string
	for _, member := range roster {
		breakdown := CalculateDeductions(member.GrossSalary, member.Arrears, member.Deductions, settings)

		run.Payslips = append(run.Payslips, Payslip{
			ID:            uuid.New(),
			RunID:         run.ID,
			StaffID:       member.ID,
			StaffName:     member.FullName,
			GrossSalary:   member.GrossSalary,
			SSNITEmployee: breakdown.SSNITEmployee,
			SSNITEmployer: breakdown.SSNITEmployer,
			TaxableIncome: breakdown.TaxableIncome,
			IncomeTax:     breakdown.IncomeTax,
			ArrearsTotal:  breakdown.ArrearsTotal,
			Deductions:    member.Deductions,
			NetSalary:     breakdown.NetSalary,
		})
		total = total.Add(breakdown.NetSalary)
		if len(member.Arrears) > 0 {
			arrearsCleared = append(arrearsCleared, member.ID.String())
		}
	}
	run.EmployeeCount = len(roster)
	run.TotalAmount = total

	if err := qtx.CreateRun(ctx, run); err != nil {
		return RunResponse{}, mapRepositoryError(err)
	}

	if err := s.recordDeductionExpenses(ctx, tx, roster, req.Month, req.Year); err != nil {
		return RunResponse{}, mapRepositoryError(err)
	}

	if len(arrearsCleared) > 0 {
		if err := staffTx.ClearArrears(ctx, arrearsCleared); err != nil {
			return RunResponse{}, mapRepositoryError(err)
		}
	}

	event := events.PayrollCommittedEvent{
		EventType:     "payroll.committed",
		PayrollRunID:  run.ID.String(),
		Month:         run.Month,
		Year:          run.Year,
		EmployeeCount: run.EmployeeCount,
		TotalAmount:   run.TotalAmount.StringFixed(2),
		OccurredAt:    time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return RunResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "payroll_run",
		AggregateID:   run.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayrollCommittedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		return RunResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RunResponse{}, mapRepositoryError(err)
	}

	s.log.Info("payroll run committed",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int("month", run.Month),
		zap.Int("year", run.Year),
		zap.Int("employee_count", run.EmployeeCount),
		zap.String("total_amount", run.TotalAmount.StringFixed(2)),
	)

	return mapRunToResponse(*run, true), nil
}

// recordDeductionExpenses posts each custom deduction withheld this period
// into the shared "Staff Deductions" expense category, inside the run's
// transaction so the ledger and the run commit or roll back together.
func (s *service) recordDeductionExpenses(
	ctx context.Context,
	tx *sql.Tx,
	roster []staff.StaffMember,
	month, year int,
) error {
	expenseTx := s.expenses.WithTx(tx)

	var categoryID uuid.UUID
	haveCategory := false
	period := fmt.Sprintf("%s %d", time.Month(month), year)
	incurredAt := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	for _, member := range roster {
		for _, d := range member.Deductions {
			if !haveCategory {
				id, err := expenseTx.GetOrCreateCategory(ctx, expense.StaffDeductionsCategory, expense.TypePayroll)
				if err != nil {
					return err
				}
				categoryID = id
				haveCategory = true
			}

			entry := &expense.ExpenseEntry{
				ID:          uuid.New(),
				CategoryID:  categoryID,
				Description: fmt.Sprintf("%s - %s (%s)", member.FullName, d.Name, period),
				Amount:      d.Amount,
				IncurredAt:  incurredAt,
			}
			if err := expenseTx.CreateEntry(ctx, entry); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *service) GetRuns(ctx context.Context) ([]RunResponse, error) {
	runs, err := s.repo.FindAllRuns(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]RunResponse, len(runs))
	for i, run := range runs {
		resp[i] = mapRunToResponse(run, false)
	}
	return resp, nil
}

func (s *service) GetRunByID(ctx context.Context, id string) (RunResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return RunResponse{}, apperror.InvalidField("id", "must be a valid UUID")
	}

	run, err := s.repo.FindRunByID(ctx, id)
	if err != nil {
		return RunResponse{}, mapRepositoryError(err)
	}
	return mapRunToResponse(*run, true), nil
}

func (s *service) GetPayslipPDF(ctx context.Context, runID, staffID string) ([]byte, error) {
	run, err := s.repo.FindRunByID(ctx, runID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	for _, p := range run.Payslips {
		if p.StaffID.String() == staffID {
			return renderPayslipPDF(*run, p)
		}
	}
	return nil, payrollerrors.ErrPayslipNotFound
}

func mapSettingsToResponse(settings PayrollSettings) SettingsResponse {
	brackets := make([]BracketResponse, len(settings.TaxBrackets))
	for i, b := range settings.TaxBrackets {
		br := BracketResponse{
			From: b.From.StringFixed(2),
			Rate: b.Rate.String(),
		}
		if b.To != nil {
			to := b.To.StringFixed(2)
			br.To = &to
		}
		brackets[i] = br
	}
	return SettingsResponse{
		SSNITEmployeeRate: settings.SSNITEmployeeRate.String(),
		SSNITEmployerRate: settings.SSNITEmployerRate.String(),
		TaxBrackets:       brackets,
	}
}

func mapRunToResponse(run PayrollRun, includePayslips bool) RunResponse {
	resp := RunResponse{
		ID:            run.ID.String(),
		Month:         run.Month,
		Year:          run.Year,
		Status:        run.Status,
		EmployeeCount: run.EmployeeCount,
		TotalAmount:   run.TotalAmount.StringFixed(2),
	}
	if !includePayslips {
		return resp
	}

	resp.Payslips = make([]PayslipResponse, len(run.Payslips))
	for i, p := range run.Payslips {
		deductions := make([]DeductionResponse, len(p.Deductions))
		for j, d := range p.Deductions {
			deductions[j] = DeductionResponse{Name: d.Name, Amount: d.Amount.StringFixed(2)}
		}
		resp.Payslips[i] = PayslipResponse{
			ID:            p.ID.String(),
			StaffID:       p.StaffID.String(),
			StaffName:     p.StaffName,
			GrossSalary:   p.GrossSalary.StringFixed(2),
			SSNITEmployee: p.SSNITEmployee.StringFixed(2),
			SSNITEmployer: p.SSNITEmployer.StringFixed(2),
			TaxableIncome: p.TaxableIncome.StringFixed(2),
			IncomeTax:     p.IncomeTax.StringFixed(2),
			ArrearsTotal:  p.ArrearsTotal.StringFixed(2),
			Deductions:    deductions,
			NetSalary:     p.NetSalary.StringFixed(2),
		}
	}
	return resp
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
		return payrollerrors.ErrRunNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return payrollerrors.ErrDuplicatePeriod
	}

	return apperror.Wrap(err, apperror.CodeInternalError, "payroll storage failure", 500)
}
