package staff

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Arrear is a one-shot back-pay entry consumed by the next payroll run.
type Arrear struct {
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

type ArrearList []Arrear

func (l ArrearList) Value() (driver.Value, error) {
	if l == nil {
		l = ArrearList{}
	}
	return json.Marshal(l)
}

func (l *ArrearList) Scan(value interface{}) error {
	if value == nil {
		*l = ArrearList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, l)
}

func (l ArrearList) Total() decimal.Decimal {
	total := decimal.Zero
	for _, a := range l {
		total = total.Add(a.Amount)
	}
	return total
}

// Deduction is a recurring custom deduction (welfare, loan repayment, ...).
type Deduction struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type DeductionList []Deduction

func (l DeductionList) Value() (driver.Value, error) {
	if l == nil {
		l = DeductionList{}
	}
	return json.Marshal(l)
}

func (l *DeductionList) Scan(value interface{}) error {
	if value == nil {
		*l = DeductionList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, l)
}

func (l DeductionList) Total() decimal.Decimal {
	total := decimal.Zero
	for _, d := range l {
		total = total.Add(d.Amount)
	}
	return total
}

type StaffMember struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StaffNumber string          `gorm:"type:varchar(20);uniqueIndex;not null"`
	FullName    string          `gorm:"type:varchar(120);not null"`
	Role        string          `gorm:"type:varchar(60)"`
	GrossSalary decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Arrears     ArrearList      `gorm:"type:jsonb;not null;default:'[]'"`
	Deductions  DeductionList   `gorm:"type:jsonb;not null;default:'[]'"`
	Status      string          `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (StaffMember) TableName() string {
	return "staff_members"
}
