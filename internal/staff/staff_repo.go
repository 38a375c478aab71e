package staff

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, member *StaffMember) error
	FindAll(ctx context.Context) ([]StaffMember, error)
	FindActive(ctx context.Context) ([]StaffMember, error)
	FindByID(ctx context.Context, id string) (*StaffMember, error)
	Update(ctx context.Context, member *StaffMember) error
	Delete(ctx context.Context, id string) error
	ClearArrears(ctx context.Context, staffIDs []string) error
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

func (r *repository) Create(ctx context.Context, member *StaffMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *repository) FindAll(ctx context.Context) ([]StaffMember, error) {
	var members []StaffMember
	err := r.db.WithContext(ctx).
		Order("staff_number ASC").
		Find(&members).Error
	return members, err
}

func (r *repository) FindActive(ctx context.Context) ([]StaffMember, error) {
	if r.tx != nil {
		return r.findActiveTx(ctx)
	}

	var members []StaffMember
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusActive).
		Order("staff_number ASC").
		Find(&members).Error
	return members, err
}

// findActiveTx reads the roster inside the caller's transaction, so a payroll
// commit computes payslips and clears arrears from the same snapshot.
func (r *repository) findActiveTx(ctx context.Context) ([]StaffMember, error) {
	const query = `SELECT id, staff_number, full_name, role, gross_salary, arrears, deductions, status, created_at, updated_at
FROM staff_members WHERE status = $1 ORDER BY staff_number ASC`

	rows, err := r.tx.QueryContext(ctx, query, StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []StaffMember
	for rows.Next() {
		var m StaffMember
		if err := rows.Scan(
			&m.ID, &m.StaffNumber, &m.FullName, &m.Role, &m.GrossSalary,
			&m.Arrears, &m.Deductions, &m.Status, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *repository) FindByID(ctx context.Context, id string) (*StaffMember, error) {
	var member StaffMember
	err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error
	return &member, err
}

func (r *repository) Update(ctx context.Context, member *StaffMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&StaffMember{}, "id = ?", id).Error
}

// ClearArrears zeroes consumed arrears as part of the payroll-run commit; it
// only runs through the commit transaction so the clear cannot outlive a
// rolled-back run.
func (r *repository) ClearArrears(ctx context.Context, staffIDs []string) error {
	if r.tx == nil {
		return sql.ErrTxDone
	}

	for _, id := range staffIDs {
		if _, err := r.tx.ExecContext(ctx,
			`UPDATE staff_members SET arrears = '[]', updated_at = NOW() WHERE id = $1`, id); err != nil {
			return err
		}
	}
	return nil
}
