package feeitem

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, item *FeeItemDefinition) error
	FindAll(ctx context.Context) ([]FeeItemDefinition, error)
	FindByID(ctx context.Context, id string) (*FeeItemDefinition, error)
	Update(ctx context.Context, item *FeeItemDefinition) error
	Delete(ctx context.Context, id string) error
	IsReferencedByStructure(ctx context.Context, id string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, item *FeeItemDefinition) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) FindAll(ctx context.Context) ([]FeeItemDefinition, error) {
	var items []FeeItemDefinition
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*FeeItemDefinition, error) {
	var item FeeItemDefinition
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	return &item, err
}

func (r *repository) Update(ctx context.Context, item *FeeItemDefinition) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&FeeItemDefinition{}, "id = ?", id).Error
}

func (r *repository) IsReferencedByStructure(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("fee_structure_items").
		Where("fee_item_id = ?", id).
		Count(&count).Error
	return count > 0, err
}
