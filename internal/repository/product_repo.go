package repository

import (
	"context"
	"fmt"

	"go-product-catalog/internal/model"

	"gorm.io/gorm"
)

type ProductFilter struct {
	CategoryID      *uint64
	SeasonalEventID *uint64
	ProductTypeID   *uint64
	StockStatus     model.StockStatus
	ActiveOnly      bool
	Search          string
}

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id uint64) (*model.Product, error)
	FindBySlug(ctx context.Context, slug string) (*model.Product, error)
	FindAll(ctx context.Context, filter ProductFilter, offset, limit int) ([]model.Product, int64, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uint64) error

	AddProductType(ctx context.Context, productID, productTypeID uint64) error
	RemoveProductType(ctx context.Context, productID, productTypeID uint64) error
	ProductTypes(ctx context.Context, productID uint64) ([]model.ProductType, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	active := product.IsActive
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return insertKeepingFlag(tx, product, active)
	})
	product.IsActive = active
	return translateError(err)
}

// preloadDetail loads everything an admin product page shows.
func preloadDetail(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("SeasonalEvent").
		Preload("StockControl").
		Preload("ProductLines", func(db *gorm.DB) *gorm.DB { return db.Order(`"order" ASC, id ASC`) }).
		Preload("ProductLines.Images", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("ProductLines.AttributeValueLinks", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("ProductLines.AttributeValueLinks.AttributeValue").
		Preload("ProductTypeLinks", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("ProductTypeLinks.ProductType")
}

// flattenLinks copies the rows behind the join entities into the plain slices used in responses.
func flattenLinks(p *model.Product) {
	p.ProductTypes = make([]model.ProductType, 0, len(p.ProductTypeLinks))
	for _, link := range p.ProductTypeLinks {
		if link.ProductType != nil {
			p.ProductTypes = append(p.ProductTypes, *link.ProductType)
		}
	}
	for i := range p.ProductLines {
		flattenLineLinks(&p.ProductLines[i])
	}
}

func (r *productRepo) FindByID(ctx context.Context, id uint64) (*model.Product, error) {
	var product model.Product
	if err := preloadDetail(r.db.WithContext(ctx)).First(&product, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	flattenLinks(&product)
	return &product, nil
}

func (r *productRepo) FindBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var product model.Product
	if err := preloadDetail(r.db.WithContext(ctx)).First(&product, "slug = ?", slug).Error; err != nil {
		return nil, translateError(err)
	}
	flattenLinks(&product)
	return &product, nil
}

// scope narrows a products query to the filter.
func (f ProductFilter) scope(db *gorm.DB) *gorm.DB {
	if f.CategoryID != nil {
		db = db.Where("products.category_id = ?", *f.CategoryID)
	}
	if f.SeasonalEventID != nil {
		db = db.Where("products.seasonal_event_id = ?", *f.SeasonalEventID)
	}
	if f.ProductTypeID != nil {
		db = db.Where("EXISTS (SELECT 1 FROM product_product_types ppt WHERE ppt.product_id = products.id AND ppt.product_type_id = ?)", *f.ProductTypeID)
	}
	if f.StockStatus != "" {
		db = db.Where("products.stock_status = ?", f.StockStatus)
	}
	if f.ActiveOnly {
		db = db.Where("products.is_active = ?", true)
	}
	if f.Search != "" {
		db = db.Where("(LOWER(products.name) LIKE LOWER(?) OR products.pid = ?)", "%"+f.Search+"%", f.Search)
	}
	return db
}

func (r *productRepo) FindAll(ctx context.Context, filter ProductFilter, offset, limit int) ([]model.Product, int64, error) {
	offset, limit = paginate(offset, limit)

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Scopes(filter.scope).Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var products []model.Product
	err := r.db.WithContext(ctx).Scopes(filter.scope).
		Preload("Category").
		Order("products.id ASC").
		Offset(offset).Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, translateError(err)
	}
	return products, total, nil
}

func (r *productRepo) Update(ctx context.Context, product *model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"pid":               product.PID,
			"name":              product.Name,
			"slug":              product.Slug,
			"description":       product.Description,
			"is_digital":        product.IsDigital,
			"is_active":         product.IsActive,
			"stock_status":      product.StockStatus,
			"category_id":       product.CategoryID,
			"seasonal_event_id": product.SeasonalEventID,
		})
	return translateError(notFoundIfNoRows(res, "product", product.ID))
}

// Delete removes a product with its stock control row and product type links.
// A product that still has product lines is protected.
func (r *productRepo) Delete(ctx context.Context, id uint64) error {
	return translateError(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lines int64
		if err := tx.Model(&model.ProductLine{}).Where("product_id = ?", id).Count(&lines).Error; err != nil {
			return err
		}
		if lines > 0 {
			return fmt.Errorf("product %d has %d product lines: %w", id, lines, ErrProtected)
		}
		res := tx.Delete(&model.Product{}, id)
		if res.Error != nil {
			return translateDeleteError(res.Error)
		}
		return notFoundIfNoRows(res, "product", id)
	}))
}

// AddProductType links the product to a product type. Linking twice is a no-op.
func (r *productRepo) AddProductType(ctx context.Context, productID, productTypeID uint64) error {
	link := model.ProductProductType{ProductID: productID, ProductTypeID: productTypeID}
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND product_type_id = ?", productID, productTypeID).
		FirstOrCreate(&link).Error
	return translateError(err)
}

func (r *productRepo) RemoveProductType(ctx context.Context, productID, productTypeID uint64) error {
	res := r.db.WithContext(ctx).
		Where("product_id = ? AND product_type_id = ?", productID, productTypeID).
		Delete(&model.ProductProductType{})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %d has no product type %d: %w", productID, productTypeID, ErrNotFound)
	}
	return nil
}

func (r *productRepo) ProductTypes(ctx context.Context, productID uint64) ([]model.ProductType, error) {
	var types []model.ProductType
	err := r.db.WithContext(ctx).
		Joins("JOIN product_product_types ppt ON ppt.product_type_id = product_types.id").
		Where("ppt.product_id = ?", productID).
		Order("product_types.name ASC, product_types.id ASC").
		Find(&types).Error
	return types, translateError(err)
}
