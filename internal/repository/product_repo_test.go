package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepo_CreateDefaults(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	p := r.product(t, "Trail Runner")

	found, err := r.products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "trail-runner", found.Slug)
	assert.Equal(t, model.StockOutOfStock, found.StockStatus)
	assert.True(t, found.IsActive)
	assert.False(t, found.IsDigital)
	assert.False(t, found.CreatedAt.IsZero())
	assert.False(t, found.UpdatedAt.IsZero())
	assert.Empty(t, found.ProductLines)
	assert.Empty(t, found.ProductTypes)
	assert.Nil(t, found.StockControl)
}

func TestProductRepo_CreateInactive(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	p := &model.Product{PID: "P", Name: "Retired", IsActive: false, StockStatus: model.StockBackordered}
	require.NoError(t, r.products.Create(ctx, p))

	found, err := r.products.FindBySlug(ctx, "retired")
	require.NoError(t, err)
	assert.False(t, found.IsActive)
	assert.Equal(t, model.StockBackordered, found.StockStatus)
}

func TestProductRepo_DuplicateSlug(t *testing.T) {
	r := newRepos(t)
	r.product(t, "Runner")
	err := r.products.Create(context.Background(), &model.Product{PID: "P2", Name: "Runner", IsActive: true})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestProductRepo_DeleteProtectedByLines(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	p := r.product(t, "Runner")
	l := r.line(t, p.ID, 1)

	assert.ErrorIs(t, r.products.Delete(ctx, p.ID), repository.ErrProtected)

	require.NoError(t, r.lines.Delete(ctx, l.ID))
	require.NoError(t, r.products.Delete(ctx, p.ID))
	_, err := r.products.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProductRepo_DeleteCascadesStockAndTypes(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	p := r.product(t, "Runner")
	pt := &model.ProductType{Name: "Footwear"}
	require.NoError(t, r.productTypes.Create(ctx, pt))
	require.NoError(t, r.products.AddProductType(ctx, p.ID, pt.ID))
	require.NoError(t, r.stockControls.Create(ctx, &model.StockControl{StockQty: 3, ProductID: p.ID}))

	require.NoError(t, r.products.Delete(ctx, p.ID))

	assert.Zero(t, count(t, r.db, &model.StockControl{}))
	assert.Zero(t, count(t, r.db, &model.ProductProductType{}))
	assert.Equal(t, int64(1), count(t, r.db, &model.ProductType{}))
}

func TestProductRepo_SeasonalEventSetNull(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	ev := &model.SeasonalEvent{
		Name:      "Summer",
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, r.events.Create(ctx, ev))
	p := &model.Product{PID: "P", Name: "Sandal", IsActive: true, SeasonalEventID: &ev.ID}
	require.NoError(t, r.products.Create(ctx, p))

	found, err := r.products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, found.SeasonalEvent)
	assert.Equal(t, "Summer", found.SeasonalEvent.Name)

	require.NoError(t, r.events.Delete(ctx, ev.ID))
	found, err = r.products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, found.SeasonalEventID)
}

func TestProductRepo_ProductTypeLinks(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	p := r.product(t, "Runner")
	shoes := &model.ProductType{Name: "Shoes"}
	sport := &model.ProductType{Name: "Sport"}
	require.NoError(t, r.productTypes.Create(ctx, shoes))
	require.NoError(t, r.productTypes.Create(ctx, sport))

	require.NoError(t, r.products.AddProductType(ctx, p.ID, sport.ID))
	require.NoError(t, r.products.AddProductType(ctx, p.ID, shoes.ID))
	require.NoError(t, r.products.AddProductType(ctx, p.ID, shoes.ID))
	assert.Equal(t, int64(2), count(t, r.db, &model.ProductProductType{}))

	types, err := r.products.ProductTypes(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "Shoes", types[0].Name)

	found, err := r.products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, found.ProductTypes, 2)

	assert.ErrorIs(t, r.products.AddProductType(ctx, p.ID, 999), repository.ErrInvalidReference)

	require.NoError(t, r.products.RemoveProductType(ctx, p.ID, shoes.ID))
	assert.ErrorIs(t, r.products.RemoveProductType(ctx, p.ID, shoes.ID), repository.ErrNotFound)
}

func TestProductRepo_Update(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	c := r.category(t, "Shoes", nil)
	p := r.product(t, "Runner")

	desc := "Light and fast"
	p.Name = "Runner 2"
	p.Description = &desc
	p.StockStatus = model.StockInStock
	p.CategoryID = &c.ID
	p.IsActive = false
	require.NoError(t, r.products.Update(ctx, p))

	found, err := r.products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Runner 2", found.Name)
	assert.Equal(t, "runner", found.Slug)
	require.NotNil(t, found.Description)
	assert.Equal(t, desc, *found.Description)
	assert.Equal(t, model.StockInStock, found.StockStatus)
	assert.False(t, found.IsActive)
	require.NotNil(t, found.Category)
	assert.Equal(t, c.ID, found.Category.ID)

	bad := uint64(999)
	p.CategoryID = &bad
	assert.ErrorIs(t, r.products.Update(ctx, p), repository.ErrInvalidReference)
}

func TestProductRepo_FindAllPaginates(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	for i := 0; i < 12; i++ {
		r.product(t, fmt.Sprintf("Product %02d", i))
	}

	page, total, err := r.products.FindAll(ctx, repository.ProductFilter{}, 0, repository.DefaultPageSize)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, page, 10)
	assert.Equal(t, "Product 00", page[0].Name)

	page, total, err = r.products.FindAll(ctx, repository.ProductFilter{}, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, page, 2)
	assert.Equal(t, "Product 11", page[1].Name)

	page, _, err = r.products.FindAll(ctx, repository.ProductFilter{}, -5, 0)
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

func TestProductRepo_FindAllFilters(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	c := r.category(t, "Shoes", nil)
	pt := &model.ProductType{Name: "Footwear"}
	require.NoError(t, r.productTypes.Create(ctx, pt))

	runner := &model.Product{PID: "RUN-1", Name: "Road Runner", IsActive: true, CategoryID: &c.ID, StockStatus: model.StockInStock}
	require.NoError(t, r.products.Create(ctx, runner))
	require.NoError(t, r.products.AddProductType(ctx, runner.ID, pt.ID))
	hidden := &model.Product{PID: "HID-1", Name: "Hidden Boot", IsActive: false, CategoryID: &c.ID}
	require.NoError(t, r.products.Create(ctx, hidden))
	r.product(t, "Scarf")

	tests := []struct {
		name   string
		filter repository.ProductFilter
		want   []string
	}{
		{"category", repository.ProductFilter{CategoryID: &c.ID}, []string{"Road Runner", "Hidden Boot"}},
		{"category active", repository.ProductFilter{CategoryID: &c.ID, ActiveOnly: true}, []string{"Road Runner"}},
		{"product type", repository.ProductFilter{ProductTypeID: &pt.ID}, []string{"Road Runner"}},
		{"stock status", repository.ProductFilter{StockStatus: model.StockOutOfStock}, []string{"Hidden Boot", "Scarf"}},
		{"search name", repository.ProductFilter{Search: "boot"}, []string{"Hidden Boot"}},
		{"search pid", repository.ProductFilter{Search: "RUN-1"}, []string{"Road Runner"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, total, err := r.products.FindAll(ctx, tt.filter, 0, repository.MaxPageSize)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.want)), total)
			var names []string
			for _, p := range products {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
