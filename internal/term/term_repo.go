package term

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, term *AcademicTerm) error
	FindAll(ctx context.Context) ([]AcademicTerm, error)
	FindByID(ctx context.Context, id string) (*AcademicTerm, error)
	FindCurrent(ctx context.Context) (*AcademicTerm, error)
	Update(ctx context.Context, term *AcademicTerm) error
	Delete(ctx context.Context, id string) error
	ClearCurrent(ctx context.Context) error
	MarkCurrent(ctx context.Context, id string) error
	HasPayments(ctx context.Context, academicYear, session string) (bool, error)
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

func (r *repository) Create(ctx context.Context, term *AcademicTerm) error {
	return r.db.WithContext(ctx).Create(term).Error
}

func (r *repository) FindAll(ctx context.Context) ([]AcademicTerm, error) {
	var terms []AcademicTerm
	err := r.db.WithContext(ctx).
		Order("academic_year DESC, session ASC").
		Find(&terms).Error
	return terms, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*AcademicTerm, error) {
	var term AcademicTerm
	err := r.db.WithContext(ctx).First(&term, "id = ?", id).Error
	return &term, err
}

func (r *repository) FindCurrent(ctx context.Context) (*AcademicTerm, error) {
	var term AcademicTerm
	err := r.db.WithContext(ctx).First(&term, "is_current = true").Error
	return &term, err
}

func (r *repository) Update(ctx context.Context, term *AcademicTerm) error {
	return r.db.WithContext(ctx).Save(term).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&AcademicTerm{}, "id = ?", id).Error
}

// ClearCurrent and MarkCurrent run through the caller's transaction so the
// fan-out (clear all, set one) commits atomically and no reader ever observes
// two current terms or none.
func (r *repository) ClearCurrent(ctx context.Context) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx,
			`UPDATE academic_terms SET is_current = false, updated_at = NOW() WHERE is_current = true`)
		return err
	}
	return r.db.WithContext(ctx).
		Exec(`UPDATE academic_terms SET is_current = false, updated_at = NOW() WHERE is_current = true`).Error
}

func (r *repository) MarkCurrent(ctx context.Context, id string) error {
	if r.tx != nil {
		res, err := r.tx.ExecContext(ctx,
			`UPDATE academic_terms SET is_current = true, updated_at = NOW() WHERE id = $1`, id)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	}

	res := r.db.WithContext(ctx).
		Exec(`UPDATE academic_terms SET is_current = true, updated_at = NOW() WHERE id = $1`, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) HasPayments(ctx context.Context, academicYear, session string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("payments").
		Where("academic_year = ? AND session = ?", academicYear, session).
		Count(&count).Error
	return count > 0, err
}
