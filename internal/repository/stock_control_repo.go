package repository

import (
	"context"
	"fmt"

	"go-product-catalog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockControlRepository interface {
	Create(ctx context.Context, stock *model.StockControl) error
	FindByID(ctx context.Context, id uint64) (*model.StockControl, error)
	FindByProduct(ctx context.Context, productID uint64) (*model.StockControl, error)
	Update(ctx context.Context, stock *model.StockControl) error
	Delete(ctx context.Context, id uint64) error
}

type stockControlRepo struct {
	db *gorm.DB
}

func NewStockControlRepo(db *gorm.DB) StockControlRepository {
	return &stockControlRepo{db}
}

// Create adds the stock control row of a product. A second row for the same
// product fails with ErrDuplicate.
func (r *stockControlRepo) Create(ctx context.Context, stock *model.StockControl) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(stock).Error)
}

func (r *stockControlRepo) FindByID(ctx context.Context, id uint64) (*model.StockControl, error) {
	var stock model.StockControl
	if err := r.db.WithContext(ctx).First(&stock, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &stock, nil
}

func (r *stockControlRepo) FindByProduct(ctx context.Context, productID uint64) (*model.StockControl, error) {
	var stock model.StockControl
	if err := r.db.WithContext(ctx).First(&stock, "product_id = ?", productID).Error; err != nil {
		return nil, fmt.Errorf("stock control of product %d: %w", productID, translateError(err))
	}
	return &stock, nil
}

func (r *stockControlRepo) Update(ctx context.Context, stock *model.StockControl) error {
	res := r.db.WithContext(ctx).Model(&model.StockControl{}).Where("id = ?", stock.ID).
		Update("stock_qty", stock.StockQty)
	return translateError(notFoundIfNoRows(res, "stock control", stock.ID))
}

func (r *stockControlRepo) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&model.StockControl{}, id)
	if res.Error != nil {
		return translateDeleteError(res.Error)
	}
	return notFoundIfNoRows(res, "stock control", id)
}
