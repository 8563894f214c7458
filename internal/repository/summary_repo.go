package repository

import (
	"context"

	"go-product-catalog/internal/model"

	"gorm.io/gorm"
)

// CatalogSummary is the overview shown on the admin landing page.
type CatalogSummary struct {
	Categories         int64                       `json:"categories"`
	SeasonalEvents     int64                       `json:"seasonal_events"`
	Attributes         int64                       `json:"attributes"`
	ProductTypes       int64                       `json:"product_types"`
	Products           int64                       `json:"products"`
	ActiveProducts     int64                       `json:"active_products"`
	ProductLines       int64                       `json:"product_lines"`
	ActiveProductLines int64                       `json:"active_product_lines"`
	LineStockTotal     int64                       `json:"line_stock_total"`
	ByStockStatus      map[model.StockStatus]int64 `json:"by_stock_status"`
}

type SummaryRepository interface {
	GetSummary(ctx context.Context) (*CatalogSummary, error)
}

type summaryRepo struct {
	db *gorm.DB
}

func NewSummaryRepo(db *gorm.DB) SummaryRepository {
	return &summaryRepo{db}
}

type statusCount struct {
	StockStatus model.StockStatus
	Total       int64
}

func (r *summaryRepo) GetSummary(ctx context.Context) (*CatalogSummary, error) {
	db := r.db.WithContext(ctx)
	stats := CatalogSummary{ByStockStatus: make(map[model.StockStatus]int64)}

	counts := []struct {
		table interface{}
		where string
		dest  *int64
	}{
		{&model.Category{}, "", &stats.Categories},
		{&model.SeasonalEvent{}, "", &stats.SeasonalEvents},
		{&model.Attribute{}, "", &stats.Attributes},
		{&model.ProductType{}, "", &stats.ProductTypes},
		{&model.Product{}, "", &stats.Products},
		{&model.Product{}, "is_active = ?", &stats.ActiveProducts},
		{&model.ProductLine{}, "", &stats.ProductLines},
		{&model.ProductLine{}, "is_active = ?", &stats.ActiveProductLines},
	}
	for _, c := range counts {
		q := db.Model(c.table)
		if c.where != "" {
			q = q.Where(c.where, true)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, translateError(err)
		}
	}

	if err := db.Model(&model.ProductLine{}).Select("COALESCE(SUM(stock_qty), 0)").Scan(&stats.LineStockTotal).Error; err != nil {
		return nil, translateError(err)
	}

	var rows []statusCount
	err := db.Model(&model.Product{}).
		Select("stock_status, COUNT(*) AS total").
		Group("stock_status").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}
	for _, s := range model.StockStatuses() {
		stats.ByStockStatus[s] = 0
	}
	for _, row := range rows {
		stats.ByStockStatus[row.StockStatus] = row.Total
	}
	return &stats, nil
}
