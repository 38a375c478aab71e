package feestructure

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeeStructure is the amount configuration for one class in one academic term.
// At most one structure exists per (class, term) pair.
type FeeStructure struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClassID        uuid.UUID `gorm:"type:uuid;not null;index:idx_structure_class_term,unique"`
	AcademicTermID uuid.UUID `gorm:"type:uuid;not null;index:idx_structure_class_term,unique"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Items []FeeStructureItem `gorm:"foreignKey:FeeStructureID"`
}

func (FeeStructure) TableName() string {
	return "fee_structures"
}

type FeeStructureItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FeeStructureID uuid.UUID       `gorm:"type:uuid;not null;index"`
	FeeItemID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Position       int             `gorm:"not null;default:0"`
}

func (FeeStructureItem) TableName() string {
	return "fee_structure_items"
}
