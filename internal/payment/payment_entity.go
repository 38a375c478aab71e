package payment

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentItem mirrors one fee line the payment covered.
type PaymentItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type PaymentItemList []PaymentItem

func (l PaymentItemList) Value() (driver.Value, error) {
	if l == nil {
		l = PaymentItemList{}
	}
	return json.Marshal(l)
}

func (l *PaymentItemList) Scan(value interface{}) error {
	if value == nil {
		*l = PaymentItemList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, l)
}

// Payment is append-only: there is no update or delete path once recorded.
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ReceiptNumber string          `gorm:"type:varchar(20);uniqueIndex;not null"`
	StudentID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	PaidAt        time.Time       `gorm:"type:date;not null"`
	AcademicYear  string          `gorm:"type:varchar(9);not null;index:idx_payment_period"`
	Session       string          `gorm:"type:varchar(30);not null;index:idx_payment_period"`
	Items         PaymentItemList `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt     time.Time
}

func (Payment) TableName() string {
	return "payments"
}
