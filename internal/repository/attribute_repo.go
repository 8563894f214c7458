package repository

import (
	"context"

	"go-product-catalog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttributeRepository interface {
	Create(ctx context.Context, attribute *model.Attribute) error
	FindByID(ctx context.Context, id uint64) (*model.Attribute, error)
	FindAll(ctx context.Context) ([]model.Attribute, error)
	Update(ctx context.Context, attribute *model.Attribute) error
	Delete(ctx context.Context, id uint64) error

	AddValue(ctx context.Context, value *model.AttributeValue) error
	FindValue(ctx context.Context, id uint64) (*model.AttributeValue, error)
	FindValues(ctx context.Context, attributeID uint64) ([]model.AttributeValue, error)
	UpdateValue(ctx context.Context, value *model.AttributeValue) error
	DeleteValue(ctx context.Context, id uint64) error
}

type attributeRepo struct {
	db *gorm.DB
}

func NewAttributeRepo(db *gorm.DB) AttributeRepository {
	return &attributeRepo{db}
}

func (r *attributeRepo) Create(ctx context.Context, attribute *model.Attribute) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(attribute).Error)
}

func (r *attributeRepo) FindByID(ctx context.Context, id uint64) (*model.Attribute, error) {
	var attribute model.Attribute
	err := r.db.WithContext(ctx).
		Preload("Values", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&attribute, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &attribute, nil
}

func (r *attributeRepo) FindAll(ctx context.Context) ([]model.Attribute, error) {
	var attributes []model.Attribute
	err := r.db.WithContext(ctx).
		Preload("Values", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Order("name ASC, id ASC").
		Find(&attributes).Error
	return attributes, translateError(err)
}

func (r *attributeRepo) Update(ctx context.Context, attribute *model.Attribute) error {
	res := r.db.WithContext(ctx).Model(&model.Attribute{}).Where("id = ?", attribute.ID).
		Updates(map[string]interface{}{
			"name":        attribute.Name,
			"description": attribute.Description,
		})
	return translateError(notFoundIfNoRows(res, "attribute", attribute.ID))
}

// Delete removes the attribute together with all of its values.
func (r *attributeRepo) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&model.Attribute{}, id)
	if res.Error != nil {
		return translateDeleteError(res.Error)
	}
	return notFoundIfNoRows(res, "attribute", id)
}

func (r *attributeRepo) AddValue(ctx context.Context, value *model.AttributeValue) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(value).Error)
}

func (r *attributeRepo) FindValue(ctx context.Context, id uint64) (*model.AttributeValue, error) {
	var value model.AttributeValue
	if err := r.db.WithContext(ctx).Preload("Attribute").First(&value, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &value, nil
}

func (r *attributeRepo) FindValues(ctx context.Context, attributeID uint64) ([]model.AttributeValue, error) {
	var values []model.AttributeValue
	err := r.db.WithContext(ctx).Where("attribute_id = ?", attributeID).Order("id ASC").Find(&values).Error
	return values, translateError(err)
}

func (r *attributeRepo) UpdateValue(ctx context.Context, value *model.AttributeValue) error {
	res := r.db.WithContext(ctx).Model(&model.AttributeValue{}).Where("id = ?", value.ID).
		Updates(map[string]interface{}{
			"attribute_value": value.Value,
			"attribute_id":    value.AttributeID,
		})
	return translateError(notFoundIfNoRows(res, "attribute value", value.ID))
}

func (r *attributeRepo) DeleteValue(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&model.AttributeValue{}, id)
	if res.Error != nil {
		return translateDeleteError(res.Error)
	}
	return notFoundIfNoRows(res, "attribute value", id)
}
