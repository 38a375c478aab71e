package payment

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	FindAll(ctx context.Context) ([]Payment, error)
	FindByStudent(ctx context.Context, studentID string) ([]Payment, error)
	FindByStudentAndPeriod(ctx context.Context, studentID, academicYear, session string) ([]Payment, error)
	StudentExists(ctx context.Context, studentID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, payment *Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Payment, error) {
	var payments []Payment
	err := r.db.WithContext(ctx).
		Order("paid_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *repository) FindByStudent(ctx context.Context, studentID string) ([]Payment, error) {
	var payments []Payment
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("paid_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *repository) FindByStudentAndPeriod(
	ctx context.Context,
	studentID, academicYear, session string,
) ([]Payment, error) {
	var payments []Payment
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND academic_year = ? AND session = ?", studentID, academicYear, session).
		Order("paid_at ASC").
		Find(&payments).Error
	return payments, err
}

func (r *repository) StudentExists(ctx context.Context, studentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("students").
		Where("id = ?", studentID).
		Count(&count).Error
	return count > 0, err
}
