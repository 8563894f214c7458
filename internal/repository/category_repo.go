package repository

import (
	"context"
	"errors"
	"fmt"

	"go-product-catalog/internal/model"

	"gorm.io/gorm"
)

type CategoryFilter struct {
	ParentID   *uint64
	RootsOnly  bool
	ActiveOnly bool
}

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id uint64) (*model.Category, error)
	FindBySlug(ctx context.Context, slug string) (*model.Category, error)
	FindAll(ctx context.Context, filter CategoryFilter) ([]model.Category, error)
	FindChildren(ctx context.Context, id uint64) ([]model.Category, error)
	Tree(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id uint64) error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(ctx context.Context, category *model.Category) error {
	active := category.IsActive
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return insertKeepingFlag(tx, category, active)
	})
	category.IsActive = active
	return translateError(err)
}

func (r *categoryRepo) FindByID(ctx context.Context, id uint64) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).Preload("Parent").First(&category, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

func (r *categoryRepo) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, "slug = ?", slug).Error; err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

func (r *categoryRepo) FindAll(ctx context.Context, filter CategoryFilter) ([]model.Category, error) {
	query := r.db.WithContext(ctx).Model(&model.Category{})
	switch {
	case filter.RootsOnly:
		query = query.Where("parent_id IS NULL")
	case filter.ParentID != nil:
		query = query.Where("parent_id = ?", *filter.ParentID)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var categories []model.Category
	if err := query.Order("name ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, translateError(err)
	}
	return categories, nil
}

func (r *categoryRepo) FindChildren(ctx context.Context, id uint64) ([]model.Category, error) {
	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return r.FindAll(ctx, CategoryFilter{ParentID: &id})
}

// Tree loads every category and nests them under their parents. Roots come
// back in name order; rows unreachable from a root are dropped.
func (r *categoryRepo) Tree(ctx context.Context) ([]model.Category, error) {
	var all []model.Category
	if err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&all).Error; err != nil {
		return nil, translateError(err)
	}

	byParent := make(map[uint64][]model.Category)
	for _, c := range all {
		var parent uint64
		if c.ParentID != nil {
			parent = *c.ParentID
		}
		byParent[parent] = append(byParent[parent], c)
	}

	visited := make(map[uint64]bool, len(all))
	var build func(parent uint64) []model.Category
	build = func(parent uint64) []model.Category {
		var nodes []model.Category
		for _, c := range byParent[parent] {
			if visited[c.ID] {
				continue
			}
			visited[c.ID] = true
			c.Children = build(c.ID)
			nodes = append(nodes, c)
		}
		return nodes
	}
	return build(0), nil
}

func (r *categoryRepo) Update(ctx context.Context, category *model.Category) error {
	return translateError(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if category.ParentID != nil {
			if err := checkCategoryParent(tx, category.ID, *category.ParentID); err != nil {
				return err
			}
		}
		res := tx.Model(&model.Category{}).Where("id = ?", category.ID).
			Updates(map[string]interface{}{
				"name":      category.Name,
				"slug":      category.Slug,
				"is_active": category.IsActive,
				"parent_id": category.ParentID,
			})
		return notFoundIfNoRows(res, "category", category.ID)
	}))
}

// checkCategoryParent rejects a parent that is the category itself or one of its descendants.
func checkCategoryParent(tx *gorm.DB, id, parentID uint64) error {
	seen := map[uint64]bool{}
	for current := &parentID; current != nil; {
		if *current == id {
			return fmt.Errorf("category %d cannot be its own ancestor: %w", id, ErrConstraint)
		}
		if seen[*current] {
			return nil
		}
		seen[*current] = true

		var parent model.Category
		if err := tx.Select("id", "parent_id").First(&parent, "id = ?", *current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("parent category %d: %w", *current, ErrInvalidReference)
			}
			return err
		}
		current = parent.ParentID
	}
	return nil
}

// Delete removes a category. Categories with children are protected; products
// pointing at the category keep existing with a NULL category.
func (r *categoryRepo) Delete(ctx context.Context, id uint64) error {
	return translateError(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var children int64
		if err := tx.Model(&model.Category{}).Where("parent_id = ?", id).Count(&children).Error; err != nil {
			return err
		}
		if children > 0 {
			return fmt.Errorf("category %d has %d child categories: %w", id, children, ErrProtected)
		}
		res := tx.Delete(&model.Category{}, id)
		if res.Error != nil {
			return translateDeleteError(res.Error)
		}
		return notFoundIfNoRows(res, "category", id)
	}))
}
