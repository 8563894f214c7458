package repository_test

import (
	"context"
	"testing"

	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"
	"go-product-catalog/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type repos struct {
	db            *gorm.DB
	categories    repository.CategoryRepository
	events        repository.SeasonalEventRepository
	attributes    repository.AttributeRepository
	productTypes  repository.ProductTypeRepository
	products      repository.ProductRepository
	lines         repository.ProductLineRepository
	images        repository.ProductImageRepository
	stockControls repository.StockControlRepository
	summary       repository.SummaryRepository
}

func newRepos(t *testing.T) *repos {
	db := testutil.NewDB(t)
	return &repos{
		db:            db,
		categories:    repository.NewCategoryRepo(db),
		events:        repository.NewSeasonalEventRepo(db),
		attributes:    repository.NewAttributeRepo(db),
		productTypes:  repository.NewProductTypeRepo(db),
		products:      repository.NewProductRepo(db),
		lines:         repository.NewProductLineRepo(db),
		images:        repository.NewProductImageRepo(db),
		stockControls: repository.NewStockControlRepo(db),
		summary:       repository.NewSummaryRepo(db),
	}
}

func (r *repos) category(t *testing.T, name string, parentID *uint64) *model.Category {
	t.Helper()
	c := &model.Category{Name: name, IsActive: true, ParentID: parentID}
	require.NoError(t, r.categories.Create(context.Background(), c))
	return c
}

func (r *repos) product(t *testing.T, name string) *model.Product {
	t.Helper()
	p := &model.Product{PID: "PID-" + model.MakeSlug(name), Name: name, IsActive: true}
	require.NoError(t, r.products.Create(context.Background(), p))
	return p
}

func (r *repos) line(t *testing.T, productID uint64, order int) *model.ProductLine {
	t.Helper()
	l := &model.ProductLine{
		Price:     decimal.RequireFromString("19.99"),
		StockQty:  5,
		IsActive:  true,
		Order:     order,
		Weight:    1.5,
		ProductID: productID,
	}
	require.NoError(t, r.lines.Create(context.Background(), l))
	return l
}

func (r *repos) attributeValue(t *testing.T, attribute, value string) *model.AttributeValue {
	t.Helper()
	ctx := context.Background()
	a := &model.Attribute{Name: attribute}
	require.NoError(t, r.attributes.Create(ctx, a))
	v := &model.AttributeValue{Value: value, AttributeID: a.ID}
	require.NoError(t, r.attributes.AddValue(ctx, v))
	return v
}

func count(t *testing.T, db *gorm.DB, table interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(table).Count(&n).Error)
	return n
}
