package service

import (
	"time"

	"go-product-catalog/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CategoryRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Slug     string  `json:"slug" validate:"omitempty,slug"`
	IsActive *bool   `json:"is_active"`
	ParentID *uint64 `json:"parent_id"`
}

type SeasonalEventRequest struct {
	Name      string    `json:"name" validate:"required,max=100"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required,gtefield=StartDate"`
}

type AttributeRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description"`
}

type AttributeValueRequest struct {
	Value string `json:"attribute_value" validate:"required,max=100"`
}

type ProductTypeRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	ParentID *uint64 `json:"parent_id"`
}

type ProductRequest struct {
	PID             string            `json:"pid" validate:"required,max=255"`
	Name            string            `json:"name" validate:"required,max=100"`
	Slug            string            `json:"slug" validate:"omitempty,slug"`
	Description     *string           `json:"description"`
	IsDigital       bool              `json:"is_digital"`
	IsActive        *bool             `json:"is_active"`
	StockStatus     model.StockStatus `json:"stock_status" validate:"omitempty,stock_status"`
	CategoryID      *uint64           `json:"category_id"`
	SeasonalEventID *uint64           `json:"seasonal_event_id"`
	ProductTypeIDs  []uint64          `json:"product_type_ids"`
}

type ProductLineRequest struct {
	Price             decimal.Decimal `json:"price"`
	SKU               *uuid.UUID      `json:"sku"`
	StockQty          int             `json:"stock_qty"`
	IsActive          *bool           `json:"is_active"`
	Order             int             `json:"order"`
	Weight            float64         `json:"weight"`
	AttributeValueIDs []uint64        `json:"attribute_value_ids"`
}

type ProductImageRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	AlternativeText string `json:"alternative_text" validate:"required,max=100"`
	URL             string `json:"url" validate:"required,max=100"`
}

type StockControlRequest struct {
	StockQty int `json:"stock_qty"`
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Items  []model.Product `json:"items"`
	Total  int64           `json:"total"`
	Offset int             `json:"offset"`
	Limit  int             `json:"limit"`
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
