package billing

import (
	"context"

	"gorm.io/gorm"

	"github.com/grehub24-dot/campusflow/internal/feeitem"
	"github.com/grehub24-dot/campusflow/internal/feestructure"
	"github.com/grehub24-dot/campusflow/internal/payment"
	"github.com/grehub24-dot/campusflow/internal/student"
	"github.com/grehub24-dot/campusflow/internal/term"
)

// Repository is read-only: billing derives everything from records owned by
// the term, student, fee, and payment modules.
type Repository interface {
	CurrentTerm(ctx context.Context) (*term.AcademicTerm, error)
	FindStudent(ctx context.Context, id string) (*student.Student, error)
	FindActiveStudents(ctx context.Context) ([]student.Student, error)
	FindStructure(ctx context.Context, classID, termID string) (*feestructure.FeeStructure, error)
	FindDefinitions(ctx context.Context) (map[string]ItemDefinition, error)
	FindPayments(ctx context.Context, studentID, academicYear, session string) ([]payment.Payment, error)
	FindPaymentsForPeriod(ctx context.Context, academicYear, session string) ([]payment.Payment, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CurrentTerm(ctx context.Context) (*term.AcademicTerm, error) {
	var t term.AcademicTerm
	err := r.db.WithContext(ctx).First(&t, "is_current = true").Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindStudent(ctx context.Context, id string) (*student.Student, error) {
	var s student.Student
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindActiveStudents(ctx context.Context) ([]student.Student, error) {
	var students []student.Student
	err := r.db.WithContext(ctx).
		Where("status = ?", student.StatusActive).
		Order("admission_number ASC").
		Find(&students).Error
	return students, err
}

func (r *repository) FindStructure(ctx context.Context, classID, termID string) (*feestructure.FeeStructure, error) {
	var structure feestructure.FeeStructure
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&structure, "class_id = ? AND academic_term_id = ?", classID, termID).Error
	if err != nil {
		return nil, err
	}
	return &structure, nil
}

func (r *repository) FindDefinitions(ctx context.Context) (map[string]ItemDefinition, error) {
	var items []feeitem.FeeItemDefinition
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}

	definitions := make(map[string]ItemDefinition, len(items))
	for _, item := range items {
		definitions[item.ID.String()] = ItemDefinition{
			ID:        item.ID.String(),
			Name:      item.Name,
			Optional:  item.IsOptional,
			AppliesTo: item.AppliesTo,
		}
	}
	return definitions, nil
}

func (r *repository) FindPayments(ctx context.Context, studentID, academicYear, session string) ([]payment.Payment, error) {
	var payments []payment.Payment
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND academic_year = ? AND session = ?", studentID, academicYear, session).
		Find(&payments).Error
	return payments, err
}

func (r *repository) FindPaymentsForPeriod(ctx context.Context, academicYear, session string) ([]payment.Payment, error) {
	var payments []payment.Payment
	err := r.db.WithContext(ctx).
		Where("academic_year = ? AND session = ?", academicYear, session).
		Find(&payments).Error
	return payments, err
}
