package repository_test

import (
	"context"
	"testing"
	"time"

	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeRepo_DeleteCascadesValues(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	v := r.attributeValue(t, "Colour", "Red")
	require.NoError(t, r.attributes.AddValue(ctx, &model.AttributeValue{Value: "Green", AttributeID: v.AttributeID}))

	attr, err := r.attributes.FindByID(ctx, v.AttributeID)
	require.NoError(t, err)
	require.Len(t, attr.Values, 2)
	assert.Equal(t, "Red", attr.Values[0].Value)

	require.NoError(t, r.attributes.Delete(ctx, v.AttributeID))
	assert.Zero(t, count(t, r.db, &model.AttributeValue{}))
	_, err = r.attributes.FindValue(ctx, v.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAttributeRepo_Values(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	v := r.attributeValue(t, "Size", "M")

	v.Value = "L"
	require.NoError(t, r.attributes.UpdateValue(ctx, v))
	found, err := r.attributes.FindValue(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "L", found.Value)
	require.NotNil(t, found.Attribute)
	assert.Equal(t, "Size", found.Attribute.Name)

	desc := "Garment size"
	require.NoError(t, r.attributes.Update(ctx, &model.Attribute{CatalogModel: model.CatalogModel{ID: v.AttributeID}, Name: "Size", Description: &desc}))
	all, err := r.attributes.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].Description)
	assert.Equal(t, desc, *all[0].Description)

	assert.ErrorIs(t, r.attributes.AddValue(ctx, &model.AttributeValue{Value: "S", AttributeID: 999}), repository.ErrInvalidReference)

	require.NoError(t, r.attributes.DeleteValue(ctx, v.ID))
	values, err := r.attributes.FindValues(ctx, v.AttributeID)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestProductTypeRepo_DeleteCascadesSubtree(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	root := &model.ProductType{Name: "Clothing"}
	require.NoError(t, r.productTypes.Create(ctx, root))
	child := &model.ProductType{Name: "Shirts", ParentID: &root.ID}
	require.NoError(t, r.productTypes.Create(ctx, child))
	grandchild := &model.ProductType{Name: "Polo", ParentID: &child.ID}
	require.NoError(t, r.productTypes.Create(ctx, grandchild))
	other := &model.ProductType{Name: "Tools"}
	require.NoError(t, r.productTypes.Create(ctx, other))

	p := r.product(t, "Polo Shirt")
	require.NoError(t, r.products.AddProductType(ctx, p.ID, grandchild.ID))

	found, err := r.productTypes.FindByID(ctx, root.ID)
	require.NoError(t, err)
	require.Len(t, found.Children, 1)
	assert.Equal(t, "Shirts", found.Children[0].Name)

	require.NoError(t, r.productTypes.Delete(ctx, root.ID))

	all, err := r.productTypes.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Tools", all[0].Name)
	assert.Zero(t, count(t, r.db, &model.ProductProductType{}))
	assert.Equal(t, int64(1), count(t, r.db, &model.Product{}))
}

func TestProductTypeRepo_UpdateRejectsCycles(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	root := &model.ProductType{Name: "Root"}
	require.NoError(t, r.productTypes.Create(ctx, root))
	child := &model.ProductType{Name: "Child", ParentID: &root.ID}
	require.NoError(t, r.productTypes.Create(ctx, child))

	root.ParentID = &child.ID
	assert.ErrorIs(t, r.productTypes.Update(ctx, root), repository.ErrConstraint)

	children, err := r.productTypes.FindChildren(ctx, root.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)

	_, err = r.productTypes.FindChildren(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSeasonalEventRepo_FindActiveAt(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	day := func(m time.Month, d int) time.Time { return time.Date(2026, m, d, 0, 0, 0, 0, time.UTC) }

	summer := &model.SeasonalEvent{Name: "Summer", StartDate: day(6, 1), EndDate: day(8, 31)}
	winter := &model.SeasonalEvent{Name: "Winter", StartDate: day(12, 1), EndDate: day(12, 31)}
	require.NoError(t, r.events.Create(ctx, winter))
	require.NoError(t, r.events.Create(ctx, summer))

	all, err := r.events.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Summer", all[0].Name)

	active, err := r.events.FindActiveAt(ctx, day(6, 1))
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, summer.ID, active[0].ID)

	active, err = r.events.FindActiveAt(ctx, day(10, 1))
	require.NoError(t, err)
	assert.Empty(t, active)

	summer.EndDate = day(10, 15)
	require.NoError(t, r.events.Update(ctx, summer))
	active, err = r.events.FindActiveAt(ctx, day(10, 1))
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestStockControlRepo_OnePerProduct(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	p := r.product(t, "Runner")

	sc := &model.StockControl{StockQty: 4, ProductID: p.ID}
	require.NoError(t, r.stockControls.Create(ctx, sc))
	err := r.stockControls.Create(ctx, &model.StockControl{StockQty: 1, ProductID: p.ID})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	sc.StockQty = 9
	require.NoError(t, r.stockControls.Update(ctx, sc))
	found, err := r.stockControls.FindByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, found.StockQty)

	product, err := r.products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, product.StockControl)
	assert.Equal(t, sc.ID, product.StockControl.ID)

	require.NoError(t, r.stockControls.Delete(ctx, sc.ID))
	_, err = r.stockControls.FindByProduct(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSummaryRepo_GetSummary(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	r.category(t, "Shoes", nil)
	p := r.product(t, "Runner")
	r.line(t, p.ID, 1)
	r.line(t, p.ID, 2)
	require.NoError(t, r.products.Create(ctx, &model.Product{PID: "X", Name: "Boot", StockStatus: model.StockInStock}))

	s, err := r.summary.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.Categories)
	assert.Equal(t, int64(2), s.Products)
	assert.Equal(t, int64(1), s.ActiveProducts)
	assert.Equal(t, int64(2), s.ProductLines)
	assert.Equal(t, int64(2), s.ActiveProductLines)
	assert.Equal(t, int64(10), s.LineStockTotal)
	assert.Equal(t, int64(1), s.ByStockStatus[model.StockInStock])
	assert.Equal(t, int64(1), s.ByStockStatus[model.StockOutOfStock])
	assert.Zero(t, s.ByStockStatus[model.StockBackordered])
}
