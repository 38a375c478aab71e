package payroll

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/grehub24-dot/campusflow/internal/staff"
)

const (
	RunStatusCommitted = "committed"
)

// TaxBracket taxes the slice of income between From and To at Rate percent.
// A nil To marks the top bracket (unbounded).
type TaxBracket struct {
	From decimal.Decimal  `json:"from"`
	To   *decimal.Decimal `json:"to,omitempty"`
	Rate decimal.Decimal  `json:"rate"`
}

type BracketList []TaxBracket

func (l BracketList) Value() (driver.Value, error) {
	if l == nil {
		l = BracketList{}
	}
	return json.Marshal(l)
}

func (l *BracketList) Scan(value interface{}) error {
	if value == nil {
		*l = BracketList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, l)
}

// PayrollSettings is a single-row table; the service falls back to statutory
// defaults when no row has been saved yet.
type PayrollSettings struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SSNITEmployeeRate decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	SSNITEmployerRate decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	TaxBrackets       BracketList     `gorm:"type:jsonb;not null;default:'[]'"`
	UpdatedAt         time.Time
}

func (PayrollSettings) TableName() string {
	return "payroll_settings"
}

type PayrollRun struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Month         int             `gorm:"not null;index:idx_run_period,unique"`
	Year          int             `gorm:"not null;index:idx_run_period,unique"`
	Status        string          `gorm:"type:varchar(20);not null"`
	EmployeeCount int             `gorm:"not null"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CreatedAt     time.Time

	Payslips []Payslip `gorm:"foreignKey:RunID"`
}

func (PayrollRun) TableName() string {
	return "payroll_runs"
}

type Payslip struct {
	ID            uuid.UUID           `gorm:"type:uuid;primaryKey"`
	RunID         uuid.UUID           `gorm:"type:uuid;not null;index"`
	StaffID       uuid.UUID           `gorm:"type:uuid;not null;index"`
	StaffName     string              `gorm:"type:varchar(120);not null"`
	GrossSalary   decimal.Decimal     `gorm:"type:decimal(14,2);not null"`
	SSNITEmployee decimal.Decimal     `gorm:"type:decimal(14,2);not null"`
	SSNITEmployer decimal.Decimal     `gorm:"type:decimal(14,2);not null"`
	TaxableIncome decimal.Decimal     `gorm:"type:decimal(14,2);not null"`
	IncomeTax     decimal.Decimal     `gorm:"type:decimal(14,2);not null"`
	ArrearsTotal  decimal.Decimal     `gorm:"type:decimal(14,2);not null"`
	Deductions    staff.DeductionList `gorm:"type:jsonb;not null;default:'[]'"`
	NetSalary     decimal.Decimal     `gorm:"type:decimal(14,2);not null"`
	CreatedAt     time.Time
}

func (Payslip) TableName() string {
	return "payslips"
}
