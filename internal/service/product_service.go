package service

import (
	"context"

	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"

	"github.com/shopspring/decimal"
)

// decimal(10,2)
var maxPrice = decimal.New(1, 8)

func validatePrice(price decimal.Decimal) error {
	if !price.Equal(price.Round(2)) {
		return invalidField("ProductLineRequest.Price", "decimal_places", "2")
	}
	if price.Abs().GreaterThanOrEqual(maxPrice) {
		return invalidField("ProductLineRequest.Price", "max_digits", "10")
	}
	return nil
}

func (s *catalogService) CreateProduct(ctx context.Context, req ProductRequest) (*model.Product, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	product := &model.Product{
		PID:             req.PID,
		Name:            req.Name,
		Slug:            req.Slug,
		Description:     req.Description,
		IsDigital:       req.IsDigital,
		IsActive:        boolOr(req.IsActive, true),
		StockStatus:     req.StockStatus,
		CategoryID:      req.CategoryID,
		SeasonalEventID: req.SeasonalEventID,
	}
	err := s.inTx(ctx, func(r catalogRepos) error {
		if err := r.products.Create(ctx, product); err != nil {
			return err
		}
		for _, typeID := range req.ProductTypeIDs {
			if err := r.products.AddProductType(ctx, product.ID, typeID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publish(EntityProduct, ActionCreated, product.ID)
	return s.repos.products.FindByID(ctx, product.ID)
}

func (s *catalogService) GetProduct(ctx context.Context, id uint64) (*model.Product, error) {
	return s.repos.products.FindByID(ctx, id)
}

func (s *catalogService) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return s.repos.products.FindBySlug(ctx, slug)
}

func (s *catalogService) ListProducts(ctx context.Context, filter repository.ProductFilter, offset, limit int) (*ProductPage, error) {
	if filter.StockStatus != "" && !filter.StockStatus.Valid() {
		return nil, invalidField("stock_status", "stock_status", string(filter.StockStatus))
	}
	if limit == 0 {
		limit = repository.DefaultPageSize
	}
	items, total, err := s.repos.products.FindAll(ctx, filter, offset, limit)
	if err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit > repository.MaxPageSize {
		limit = repository.MaxPageSize
	}
	return &ProductPage{Items: items, Total: total, Offset: offset, Limit: limit}, nil
}

// UpdateProduct replaces the editable fields. Empty slug and stock status,
// or a missing is_active, keep the stored values. A non-nil product_type_ids
// replaces the product's type links.
func (s *catalogService) UpdateProduct(ctx context.Context, id uint64, req ProductRequest) (*model.Product, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	err := s.inTx(ctx, func(r catalogRepos) error {
		existing, err := r.products.FindByID(ctx, id)
		if err != nil {
			return err
		}
		existing.PID = req.PID
		existing.Name = req.Name
		if req.Slug != "" {
			existing.Slug = req.Slug
		}
		existing.Description = req.Description
		existing.IsDigital = req.IsDigital
		existing.IsActive = boolOr(req.IsActive, existing.IsActive)
		if req.StockStatus != "" {
			existing.StockStatus = req.StockStatus
		}
		existing.CategoryID = req.CategoryID
		existing.SeasonalEventID = req.SeasonalEventID
		if err := r.products.Update(ctx, existing); err != nil {
			return err
		}
		if req.ProductTypeIDs == nil {
			return nil
		}
		return syncLinks(ctx, typeIDs(existing.ProductTypes), req.ProductTypeIDs,
			func(typeID uint64) error { return r.products.AddProductType(ctx, id, typeID) },
			func(typeID uint64) error { return r.products.RemoveProductType(ctx, id, typeID) })
	})
	if err != nil {
		return nil, err
	}
	s.publish(EntityProduct, ActionUpdated, id)
	return s.repos.products.FindByID(ctx, id)
}

// DeleteProduct fails with repository.ErrProtected while product lines exist.
func (s *catalogService) DeleteProduct(ctx context.Context, id uint64) error {
	if err := s.repos.products.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(EntityProduct, ActionDeleted, id)
	return nil
}

func (s *catalogService) AddProductType(ctx context.Context, productID, productTypeID uint64) error {
	if _, err := s.repos.products.FindByID(ctx, productID); err != nil {
		return err
	}
	if err := s.repos.products.AddProductType(ctx, productID, productTypeID); err != nil {
		return err
	}
	s.publish(EntityProduct, ActionUpdated, productID)
	return nil
}

func (s *catalogService) RemoveProductType(ctx context.Context, productID, productTypeID uint64) error {
	if err := s.repos.products.RemoveProductType(ctx, productID, productTypeID); err != nil {
		return err
	}
	s.publish(EntityProduct, ActionUpdated, productID)
	return nil
}

func (s *catalogService) CreateProductLine(ctx context.Context, productID uint64, req ProductLineRequest) (*model.ProductLine, error) {
	if err := validatePrice(req.Price); err != nil {
		return nil, err
	}
	if _, err := s.repos.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	line := &model.ProductLine{
		Price:     req.Price,
		StockQty:  req.StockQty,
		IsActive:  boolOr(req.IsActive, true),
		Order:     req.Order,
		Weight:    req.Weight,
		ProductID: productID,
	}
	if req.SKU != nil {
		line.SKU = *req.SKU
	}
	err := s.inTx(ctx, func(r catalogRepos) error {
		if err := r.lines.Create(ctx, line); err != nil {
			return err
		}
		for _, valueID := range req.AttributeValueIDs {
			if err := r.lines.AddAttributeValue(ctx, line.ID, valueID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publish(EntityProductLine, ActionCreated, line.ID)
	return s.repos.lines.FindByID(ctx, line.ID)
}

func (s *catalogService) GetProductLine(ctx context.Context, id uint64) (*model.ProductLine, error) {
	return s.repos.lines.FindByID(ctx, id)
}

func (s *catalogService) ListProductLines(ctx context.Context, productID uint64) ([]model.ProductLine, error) {
	if _, err := s.repos.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.repos.lines.FindByProduct(ctx, productID)
}

// UpdateProductLine replaces the editable fields. A missing sku or is_active
// keeps the stored value; a non-nil attribute_value_ids replaces the links.
func (s *catalogService) UpdateProductLine(ctx context.Context, id uint64, req ProductLineRequest) (*model.ProductLine, error) {
	if err := validatePrice(req.Price); err != nil {
		return nil, err
	}
	err := s.inTx(ctx, func(r catalogRepos) error {
		existing, err := r.lines.FindByID(ctx, id)
		if err != nil {
			return err
		}
		existing.Price = req.Price
		if req.SKU != nil {
			existing.SKU = *req.SKU
		}
		existing.StockQty = req.StockQty
		existing.IsActive = boolOr(req.IsActive, existing.IsActive)
		existing.Order = req.Order
		existing.Weight = req.Weight
		if err := r.lines.Update(ctx, existing); err != nil {
			return err
		}
		if req.AttributeValueIDs == nil {
			return nil
		}
		current := make([]uint64, 0, len(existing.AttributeValues))
		for _, v := range existing.AttributeValues {
			current = append(current, v.ID)
		}
		return syncLinks(ctx, current, req.AttributeValueIDs,
			func(valueID uint64) error { return r.lines.AddAttributeValue(ctx, id, valueID) },
			func(valueID uint64) error { return r.lines.RemoveAttributeValue(ctx, id, valueID) })
	})
	if err != nil {
		return nil, err
	}
	s.publish(EntityProductLine, ActionUpdated, id)
	return s.repos.lines.FindByID(ctx, id)
}

func (s *catalogService) DeleteProductLine(ctx context.Context, id uint64) error {
	if err := s.repos.lines.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(EntityProductLine, ActionDeleted, id)
	return nil
}

func (s *catalogService) AddLineAttributeValue(ctx context.Context, lineID, attributeValueID uint64) error {
	if _, err := s.repos.lines.FindByID(ctx, lineID); err != nil {
		return err
	}
	if err := s.repos.lines.AddAttributeValue(ctx, lineID, attributeValueID); err != nil {
		return err
	}
	s.publish(EntityProductLine, ActionUpdated, lineID)
	return nil
}

func (s *catalogService) RemoveLineAttributeValue(ctx context.Context, lineID, attributeValueID uint64) error {
	if err := s.repos.lines.RemoveAttributeValue(ctx, lineID, attributeValueID); err != nil {
		return err
	}
	s.publish(EntityProductLine, ActionUpdated, lineID)
	return nil
}

func (s *catalogService) AddProductImage(ctx context.Context, lineID uint64, req ProductImageRequest) (*model.ProductImage, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if _, err := s.repos.lines.FindByID(ctx, lineID); err != nil {
		return nil, err
	}
	image := &model.ProductImage{
		Name:            req.Name,
		AlternativeText: req.AlternativeText,
		URL:             req.URL,
		ProductLineID:   lineID,
	}
	if err := s.repos.images.Create(ctx, image); err != nil {
		return nil, err
	}
	s.publish(EntityProductImage, ActionCreated, image.ID)
	return image, nil
}

func (s *catalogService) ListProductImages(ctx context.Context, lineID uint64) ([]model.ProductImage, error) {
	if _, err := s.repos.lines.FindByID(ctx, lineID); err != nil {
		return nil, err
	}
	return s.repos.images.FindByProductLine(ctx, lineID)
}

func (s *catalogService) UpdateProductImage(ctx context.Context, id uint64, req ProductImageRequest) (*model.ProductImage, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	existing, err := s.repos.images.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = req.Name
	existing.AlternativeText = req.AlternativeText
	existing.URL = req.URL
	if err := s.repos.images.Update(ctx, existing); err != nil {
		return nil, err
	}
	s.publish(EntityProductImage, ActionUpdated, id)
	return existing, nil
}

func (s *catalogService) DeleteProductImage(ctx context.Context, id uint64) error {
	if err := s.repos.images.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(EntityProductImage, ActionDeleted, id)
	return nil
}

func (s *catalogService) CreateStockControl(ctx context.Context, productID uint64, req StockControlRequest) (*model.StockControl, error) {
	if _, err := s.repos.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	stock := &model.StockControl{StockQty: req.StockQty, ProductID: productID}
	if err := s.repos.stockControls.Create(ctx, stock); err != nil {
		return nil, err
	}
	s.publish(EntityStockControl, ActionCreated, stock.ID)
	return stock, nil
}

func (s *catalogService) GetStockControl(ctx context.Context, productID uint64) (*model.StockControl, error) {
	return s.repos.stockControls.FindByProduct(ctx, productID)
}

func (s *catalogService) UpdateStockControl(ctx context.Context, productID uint64, req StockControlRequest) (*model.StockControl, error) {
	stock, err := s.repos.stockControls.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	stock.StockQty = req.StockQty
	if err := s.repos.stockControls.Update(ctx, stock); err != nil {
		return nil, err
	}
	s.publish(EntityStockControl, ActionUpdated, stock.ID)
	return stock, nil
}

func (s *catalogService) DeleteStockControl(ctx context.Context, productID uint64) error {
	stock, err := s.repos.stockControls.FindByProduct(ctx, productID)
	if err != nil {
		return err
	}
	if err := s.repos.stockControls.Delete(ctx, stock.ID); err != nil {
		return err
	}
	s.publish(EntityStockControl, ActionDeleted, stock.ID)
	return nil
}

func typeIDs(types []model.ProductType) []uint64 {
	ids := make([]uint64, 0, len(types))
	for _, t := range types {
		ids = append(ids, t.ID)
	}
	return ids
}

// syncLinks adds the ids in want that are missing from current and removes
// the ids in current that are no longer wanted. current may repeat an id when
// the join table holds duplicate rows; remove drops all of them at once.
func syncLinks(ctx context.Context, current, want []uint64, add, remove func(uint64) error) error {
	keep := make(map[uint64]bool, len(want))
	for _, id := range want {
		keep[id] = true
	}
	have := make(map[uint64]bool, len(current))
	for _, id := range current {
		if have[id] {
			continue
		}
		have[id] = true
		if !keep[id] {
			if err := remove(id); err != nil {
				return err
			}
		}
	}
	for _, id := range want {
		if have[id] {
			continue
		}
		have[id] = true
		if err := add(id); err != nil {
			return err
		}
	}
	return ctx.Err()
}
