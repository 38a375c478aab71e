package student

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, student *Student) error
	ListAdmissionNumbers(ctx context.Context, prefix string) ([]string, error)
	FindAll(ctx context.Context) ([]Student, error)
	FindByID(ctx context.Context, id string) (*Student, error)
	FindActiveByClass(ctx context.Context, classID string) ([]Student, error)
	Update(ctx context.Context, student *Student) error
	Delete(ctx context.Context, id string) error
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

// Create goes through the transaction when one is attached so the insert and
// the admission-number scan commit under the same isolation level.
func (r *repository) Create(ctx context.Context, student *Student) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx,
			`INSERT INTO students (
				id, admission_number, full_name, class_id, admission_year, admission_term,
				date_of_birth, guardian_name, guardian_phone, status, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())`,
			student.ID, student.AdmissionNumber, student.FullName, student.ClassID,
			student.AdmissionYear, student.AdmissionTerm, student.DateOfBirth,
			student.GuardianName, student.GuardianPhone, student.Status,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(student).Error
}

// ListAdmissionNumbers reads every identifier with the configured prefix.
// Inside a serializable transaction this read becomes part of the validated
// read set, which is what makes the max+1 allocation safe under concurrency.
func (r *repository) ListAdmissionNumbers(ctx context.Context, prefix string) ([]string, error) {
	pattern := prefix + "-%"

	if r.tx != nil {
		rows, err := r.tx.QueryContext(ctx,
			`SELECT admission_number FROM students WHERE admission_number LIKE $1`, pattern)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		var numbers []string
		for rows.Next() {
			var n string
			if err := rows.Scan(&n); err != nil {
				return nil, err
			}
			numbers = append(numbers, n)
		}
		return numbers, rows.Err()
	}

	var numbers []string
	err := r.db.WithContext(ctx).
		Model(&Student{}).
		Where("admission_number LIKE ?", pattern).
		Pluck("admission_number", &numbers).Error
	return numbers, err
}

func (r *repository) FindAll(ctx context.Context) ([]Student, error) {
	var students []Student
	err := r.db.WithContext(ctx).
		Order("admission_number ASC").
		Find(&students).Error
	return students, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Student, error) {
	var student Student
	err := r.db.WithContext(ctx).First(&student, "id = ?", id).Error
	return &student, err
}

func (r *repository) FindActiveByClass(ctx context.Context, classID string) ([]Student, error) {
	var students []Student
	err := r.db.WithContext(ctx).
		Where("class_id = ? AND status = ?", classID, StatusActive).
		Order("admission_number ASC").
		Find(&students).Error
	return students, err
}

func (r *repository) Update(ctx context.Context, student *Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Student{}, "id = ?", id).Error
}
