package expense

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// GetOrCreateCategory resolves a category by (name, type), inserting it on
	// first use. Inside a payroll commit it runs through the transaction.
	GetOrCreateCategory(ctx context.Context, name, categoryType string) (uuid.UUID, error)
	CreateEntry(ctx context.Context, entry *ExpenseEntry) error
	FindCategories(ctx context.Context) ([]ExpenseCategory, error)
	FindEntriesByCategory(ctx context.Context, categoryID string) ([]ExpenseEntry, error)
	FindEntries(ctx context.Context, from, to time.Time) ([]ExpenseEntry, error)
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

func (r *repository) GetOrCreateCategory(ctx context.Context, name, categoryType string) (uuid.UUID, error) {
	query := `
		INSERT INTO expense_categories (id, name, type, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (name, type) DO UPDATE SET name = expense_categories.name
		RETURNING id
	`
	newID := uuid.New()

	if r.tx != nil {
		var id uuid.UUID
		err := r.tx.QueryRowContext(ctx, query, newID, name, categoryType).Scan(&id)
		return id, err
	}

	var id uuid.UUID
	err := r.db.WithContext(ctx).Raw(query, newID, name, categoryType).Scan(&id).Error
	return id, err
}

func (r *repository) CreateEntry(ctx context.Context, entry *ExpenseEntry) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx,
			`INSERT INTO expense_entries (id, category_id, description, amount, incurred_at, created_at)
			 VALUES ($1, $2, $3, $4, $5, NOW())`,
			entry.ID, entry.CategoryID, entry.Description, entry.Amount, entry.IncurredAt,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindCategories(ctx context.Context) ([]ExpenseCategory, error) {
	var categories []ExpenseCategory
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *repository) FindEntriesByCategory(ctx context.Context, categoryID string) ([]ExpenseEntry, error) {
	var entries []ExpenseEntry
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("incurred_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindEntries(ctx context.Context, from, to time.Time) ([]ExpenseEntry, error) {
	var entries []ExpenseEntry
	q := r.db.WithContext(ctx)
	if !from.IsZero() {
		q = q.Where("incurred_at >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("incurred_at <= ?", to)
	}
	err := q.Order("incurred_at DESC").Find(&entries).Error
	return entries, err
}
