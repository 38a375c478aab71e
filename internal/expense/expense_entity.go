package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const TypePayroll = "payroll"

// StaffDeductionsCategory is the ledger bucket payroll runs post custom
// deductions into; created on first use and reused afterwards.
const StaffDeductionsCategory = "Staff Deductions"

type ExpenseCategory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(120);not null;index:idx_category_name_type,unique"`
	Type      string    `gorm:"type:varchar(30);not null;index:idx_category_name_type,unique"`
	CreatedAt time.Time
}

func (ExpenseCategory) TableName() string {
	return "expense_categories"
}

type ExpenseEntry struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	IncurredAt  time.Time       `gorm:"type:date;not null"`
	CreatedAt   time.Time
}

func (ExpenseEntry) TableName() string {
	return "expense_entries"
}
