package repository

import (
	"context"
	"fmt"

	"go-product-catalog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductLineRepository interface {
	Create(ctx context.Context, line *model.ProductLine) error
	FindByID(ctx context.Context, id uint64) (*model.ProductLine, error)
	FindBySKU(ctx context.Context, sku uuid.UUID) (*model.ProductLine, error)
	FindByProduct(ctx context.Context, productID uint64) ([]model.ProductLine, error)
	Update(ctx context.Context, line *model.ProductLine) error
	Delete(ctx context.Context, id uint64) error

	AddAttributeValue(ctx context.Context, lineID, attributeValueID uint64) error
	RemoveAttributeValue(ctx context.Context, lineID, attributeValueID uint64) error
	AttributeValues(ctx context.Context, lineID uint64) ([]model.AttributeValue, error)
}

type productLineRepo struct {
	db *gorm.DB
}

func NewProductLineRepo(db *gorm.DB) ProductLineRepository {
	return &productLineRepo{db}
}

func (r *productLineRepo) Create(ctx context.Context, line *model.ProductLine) error {
	active := line.IsActive
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return insertKeepingFlag(tx, line, active)
	})
	line.IsActive = active
	return translateError(err)
}

func preloadLine(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("AttributeValueLinks", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("AttributeValueLinks.AttributeValue")
}

func flattenLineLinks(l *model.ProductLine) {
	l.AttributeValues = make([]model.AttributeValue, 0, len(l.AttributeValueLinks))
	for _, link := range l.AttributeValueLinks {
		if link.AttributeValue != nil {
			l.AttributeValues = append(l.AttributeValues, *link.AttributeValue)
		}
	}
}

func (r *productLineRepo) FindByID(ctx context.Context, id uint64) (*model.ProductLine, error) {
	var line model.ProductLine
	if err := preloadLine(r.db.WithContext(ctx)).First(&line, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	flattenLineLinks(&line)
	return &line, nil
}

func (r *productLineRepo) FindBySKU(ctx context.Context, sku uuid.UUID) (*model.ProductLine, error) {
	var line model.ProductLine
	if err := preloadLine(r.db.WithContext(ctx)).First(&line, "sku = ?", sku).Error; err != nil {
		return nil, translateError(err)
	}
	flattenLineLinks(&line)
	return &line, nil
}

// FindByProduct returns the lines of a product in display order.
func (r *productLineRepo) FindByProduct(ctx context.Context, productID uint64) ([]model.ProductLine, error) {
	var lines []model.ProductLine
	err := preloadLine(r.db.WithContext(ctx)).
		Where("product_id = ?", productID).
		Order(`"order" ASC, id ASC`).
		Find(&lines).Error
	if err != nil {
		return nil, translateError(err)
	}
	for i := range lines {
		flattenLineLinks(&lines[i])
	}
	return lines, nil
}

func (r *productLineRepo) Update(ctx context.Context, line *model.ProductLine) error {
	res := r.db.WithContext(ctx).Model(&model.ProductLine{}).Where("id = ?", line.ID).
		Updates(map[string]interface{}{
			"price":      line.Price,
			"sku":        line.SKU,
			"stock_qty":  line.StockQty,
			"is_active":  line.IsActive,
			"order":      line.Order,
			"weight":     line.Weight,
			"product_id": line.ProductID,
		})
	return translateError(notFoundIfNoRows(res, "product line", line.ID))
}

// Delete removes the line together with its images and attribute value links.
func (r *productLineRepo) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&model.ProductLine{}, id)
	if res.Error != nil {
		return translateDeleteError(res.Error)
	}
	return notFoundIfNoRows(res, "product line", id)
}

// AddAttributeValue links an attribute value to the line. Linking twice is a no-op.
func (r *productLineRepo) AddAttributeValue(ctx context.Context, lineID, attributeValueID uint64) error {
	link := model.ProductLineAttributeValue{ProductLineID: lineID, AttributeValueID: attributeValueID}
	err := r.db.WithContext(ctx).
		Where("product_line_id = ? AND attribute_value_id = ?", lineID, attributeValueID).
		FirstOrCreate(&link).Error
	return translateError(err)
}

func (r *productLineRepo) RemoveAttributeValue(ctx context.Context, lineID, attributeValueID uint64) error {
	res := r.db.WithContext(ctx).
		Where("product_line_id = ? AND attribute_value_id = ?", lineID, attributeValueID).
		Delete(&model.ProductLineAttributeValue{})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product line %d has no attribute value %d: %w", lineID, attributeValueID, ErrNotFound)
	}
	return nil
}

func (r *productLineRepo) AttributeValues(ctx context.Context, lineID uint64) ([]model.AttributeValue, error) {
	var values []model.AttributeValue
	err := r.db.WithContext(ctx).
		Joins("JOIN product_line_attribute_values plav ON plav.attribute_value_id = attribute_values.id").
		Where("plav.product_line_id = ?", lineID).
		Order("attribute_values.id ASC").
		Find(&values).Error
	return values, translateError(err)
}
