package feeitem

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// AppliesToList is the set of applicability tags, stored as jsonb.
type AppliesToList []string

func (a AppliesToList) Value() (driver.Value, error) {
	if a == nil {
		a = AppliesToList{}
	}
	return json.Marshal(a)
}

func (a *AppliesToList) Scan(value interface{}) error {
	if value == nil {
		*a = AppliesToList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, a)
}

func (a AppliesToList) Contains(tag string) bool {
	for _, t := range a {
		if t == tag {
			return true
		}
	}
	return false
}

type FeeItemDefinition struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name       string        `gorm:"type:varchar(120);uniqueIndex;not null"`
	IsOptional bool          `gorm:"not null;default:false"`
	AppliesTo  AppliesToList `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (FeeItemDefinition) TableName() string {
	return "fee_items"
}
