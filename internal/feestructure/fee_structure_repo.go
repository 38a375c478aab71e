package feestructure

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, structure *FeeStructure) error
	FindAll(ctx context.Context) ([]FeeStructure, error)
	FindByID(ctx context.Context, id string) (*FeeStructure, error)
	FindByClassAndTerm(ctx context.Context, classID, termID string) (*FeeStructure, error)
	ReplaceItems(ctx context.Context, structureID string, items []FeeStructureItem) error
	Delete(ctx context.Context, id string) error
	FeeItemExists(ctx context.Context, feeItemID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, structure *FeeStructure) error {
	return r.db.WithContext(ctx).Create(structure).Error
}

func (r *repository) FindAll(ctx context.Context) ([]FeeStructure, error) {
	var structures []FeeStructure
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Find(&structures).Error
	return structures, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*FeeStructure, error) {
	var structure FeeStructure
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&structure, "id = ?", id).Error
	return &structure, err
}

func (r *repository) FindByClassAndTerm(ctx context.Context, classID, termID string) (*FeeStructure, error) {
	var structure FeeStructure
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&structure, "class_id = ? AND academic_term_id = ?", classID, termID).Error
	return &structure, err
}

// ReplaceItems swaps the full line-item set inside the caller's transaction.
func (r *repository) ReplaceItems(ctx context.Context, structureID string, items []FeeStructureItem) error {
	if r.tx == nil {
		return sql.ErrTxDone
	}

	if _, err := r.tx.ExecContext(ctx,
		`DELETE FROM fee_structure_items WHERE fee_structure_id = $1`, structureID); err != nil {
		return err
	}

	for _, item := range items {
		if _, err := r.tx.ExecContext(ctx,
			`INSERT INTO fee_structure_items (id, fee_structure_id, fee_item_id, amount, position)
			 VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.FeeStructureID, item.FeeItemID, item.Amount, item.Position,
		); err != nil {
			return err
		}
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&FeeStructureItem{}, "fee_structure_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&FeeStructure{}, "id = ?", id).Error
	})
}

func (r *repository) FeeItemExists(ctx context.Context, feeItemID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("fee_items").
		Where("id = ?", feeItemID).
		Count(&count).Error
	return count > 0, err
}
