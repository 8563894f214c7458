package repository

import (
	"context"

	"go-product-catalog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductImageRepository interface {
	Create(ctx context.Context, image *model.ProductImage) error
	FindByID(ctx context.Context, id uint64) (*model.ProductImage, error)
	FindByProductLine(ctx context.Context, lineID uint64) ([]model.ProductImage, error)
	Update(ctx context.Context, image *model.ProductImage) error
	Delete(ctx context.Context, id uint64) error
}

type productImageRepo struct {
	db *gorm.DB
}

func NewProductImageRepo(db *gorm.DB) ProductImageRepository {
	return &productImageRepo{db}
}

func (r *productImageRepo) Create(ctx context.Context, image *model.ProductImage) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(image).Error)
}

func (r *productImageRepo) FindByID(ctx context.Context, id uint64) (*model.ProductImage, error) {
	var image model.ProductImage
	if err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &image, nil
}

func (r *productImageRepo) FindByProductLine(ctx context.Context, lineID uint64) ([]model.ProductImage, error) {
	var images []model.ProductImage
	err := r.db.WithContext(ctx).Where("product_line_id = ?", lineID).Order("id ASC").Find(&images).Error
	return images, translateError(err)
}

func (r *productImageRepo) Update(ctx context.Context, image *model.ProductImage) error {
	res := r.db.WithContext(ctx).Model(&model.ProductImage{}).Where("id = ?", image.ID).
		Updates(map[string]interface{}{
			"name":             image.Name,
			"alternative_text": image.AlternativeText,
			"url":              image.URL,
			"product_line_id":  image.ProductLineID,
		})
	return translateError(notFoundIfNoRows(res, "product image", image.ID))
}

func (r *productImageRepo) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&model.ProductImage{}, id)
	if res.Error != nil {
		return translateDeleteError(res.Error)
	}
	return notFoundIfNoRows(res, "product image", id)
}
