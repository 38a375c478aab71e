package payroll

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetSettings(ctx context.Context) (*PayrollSettings, error)
	SaveSettings(ctx context.Context, settings *PayrollSettings) error
	PeriodExists(ctx context.Context, month, year int) (bool, error)
	// CreateRun persists the run header and all payslips; it only operates
	// inside a transaction so a half-written run can never be observed.
	CreateRun(ctx context.Context, run *PayrollRun) error
	FindAllRuns(ctx context.Context) ([]PayrollRun, error)
	FindRunByID(ctx context.Context, id string) (*PayrollRun, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) GetSettings(ctx context.Context) (*PayrollSettings, error) {
	var settings PayrollSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *repository) SaveSettings(ctx context.Context, settings *PayrollSettings) error {
	var existing PayrollSettings
	err := r.db.WithContext(ctx).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		settings.ID = uuid.New()
		return r.db.WithContext(ctx).Create(settings).Error
	case err != nil:
		return err
	default:
		settings.ID = existing.ID
		return r.db.WithContext(ctx).Save(settings).Error
	}
}

func (r *repository) PeriodExists(ctx context.Context, month, year int) (bool, error) {
	if r.tx != nil {
		var count int64
		err := r.tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM payroll_runs WHERE month = $1 AND year = $2`,
			month, year,
		).Scan(&count)
		return count > 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&PayrollRun{}).
		Where("month = ? AND year = ?", month, year).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateRun(ctx context.Context, run *PayrollRun) error {
	if r.tx == nil {
		return sql.ErrTxDone
	}

	_, err := r.tx.ExecContext(ctx,
		`INSERT INTO payroll_runs (id, month, year, status, employee_count, total_amount, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NOW())`,
		run.ID, run.Month, run.Year, run.Status, run.EmployeeCount, run.TotalAmount,
	)
	if err != nil {
		return err
	}

	for i := range run.Payslips {
		p := &run.Payslips[i]
		deductions, err := p.Deductions.Value()
		if err != nil {
			return err
		}
		_, err = r.tx.ExecContext(ctx,
			`INSERT INTO payslips (
				id, run_id, staff_id, staff_name, gross_salary,
				ssnit_employee, ssnit_employer, taxable_income, income_tax,
				arrears_total, deductions, net_salary, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())`,
			p.ID, p.RunID, p.StaffID, p.StaffName, p.GrossSalary,
			p.SSNITEmployee, p.SSNITEmployer, p.TaxableIncome, p.IncomeTax,
			p.ArrearsTotal, deductions, p.NetSalary,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *repository) FindAllRuns(ctx context.Context) ([]PayrollRun, error) {
	var runs []PayrollRun
	err := r.db.WithContext(ctx).
		Order("year DESC, month DESC").
		Find(&runs).Error
	return runs, err
}

func (r *repository) FindRunByID(ctx context.Context, id string) (*PayrollRun, error) {
	var run PayrollRun
	err := r.db.WithContext(ctx).
		Preload("Payslips", func(db *gorm.DB) *gorm.DB {
			return db.Order("staff_name ASC")
		}).
		First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}
