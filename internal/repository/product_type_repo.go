package repository

import (
	"context"
	"errors"
	"fmt"

	"go-product-catalog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductTypeRepository interface {
	Create(ctx context.Context, productType *model.ProductType) error
	FindByID(ctx context.Context, id uint64) (*model.ProductType, error)
	FindAll(ctx context.Context) ([]model.ProductType, error)
	FindChildren(ctx context.Context, id uint64) ([]model.ProductType, error)
	Update(ctx context.Context, productType *model.ProductType) error
	Delete(ctx context.Context, id uint64) error
}

type productTypeRepo struct {
	db *gorm.DB
}

func NewProductTypeRepo(db *gorm.DB) ProductTypeRepository {
	return &productTypeRepo{db}
}

func (r *productTypeRepo) Create(ctx context.Context, productType *model.ProductType) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(productType).Error)
}

func (r *productTypeRepo) FindByID(ctx context.Context, id uint64) (*model.ProductType, error) {
	var productType model.ProductType
	err := r.db.WithContext(ctx).
		Preload("Parent").
		Preload("Children", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC, id ASC") }).
		First(&productType, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &productType, nil
}

func (r *productTypeRepo) FindAll(ctx context.Context) ([]model.ProductType, error) {
	var types []model.ProductType
	err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&types).Error
	return types, translateError(err)
}

func (r *productTypeRepo) FindChildren(ctx context.Context, id uint64) ([]model.ProductType, error) {
	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}
	var types []model.ProductType
	err := r.db.WithContext(ctx).Where("parent_id = ?", id).Order("name ASC, id ASC").Find(&types).Error
	return types, translateError(err)
}

func (r *productTypeRepo) Update(ctx context.Context, productType *model.ProductType) error {
	return translateError(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if productType.ParentID != nil {
			if err := checkProductTypeParent(tx, productType.ID, *productType.ParentID); err != nil {
				return err
			}
		}
		res := tx.Model(&model.ProductType{}).Where("id = ?", productType.ID).
			Updates(map[string]interface{}{
				"name":      productType.Name,
				"parent_id": productType.ParentID,
			})
		return notFoundIfNoRows(res, "product type", productType.ID)
	}))
}

func checkProductTypeParent(tx *gorm.DB, id, parentID uint64) error {
	seen := map[uint64]bool{}
	for current := &parentID; current != nil; {
		if *current == id {
			return fmt.Errorf("product type %d cannot be its own ancestor: %w", id, ErrConstraint)
		}
		if seen[*current] {
			return nil
		}
		seen[*current] = true

		var parent model.ProductType
		if err := tx.Select("id", "parent_id").First(&parent, "id = ?", *current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("parent product type %d: %w", *current, ErrInvalidReference)
			}
			return err
		}
		current = parent.ParentID
	}
	return nil
}

// Delete removes the product type, its whole subtree, and their product links.
func (r *productTypeRepo) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&model.ProductType{}, id)
	if res.Error != nil {
		return translateDeleteError(res.Error)
	}
	return notFoundIfNoRows(res, "product type", id)
}
