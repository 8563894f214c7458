package repository_test

import (
	"context"
	"testing"

	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductLineRepo_SKUGenerated(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	p := r.product(t, "Runner")
	a := r.line(t, p.ID, 1)
	b := r.line(t, p.ID, 2)

	assert.NotEqual(t, uuid.Nil, a.SKU)
	assert.NotEqual(t, a.SKU, b.SKU)

	found, err := r.lines.FindBySKU(ctx, a.SKU)
	require.NoError(t, err)
	assert.Equal(t, a.ID, found.ID)
	assert.True(t, decimal.RequireFromString("19.99").Equal(found.Price))
	assert.Equal(t, 5, found.StockQty)
	assert.InDelta(t, 1.5, found.Weight, 0.0001)
}

func TestProductLineRepo_DuplicateSKU(t *testing.T) {
	r := newRepos(t)
	p := r.product(t, "Runner")
	a := r.line(t, p.ID, 1)

	err := r.lines.Create(context.Background(), &model.ProductLine{SKU: a.SKU, IsActive: true, ProductID: p.ID})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestProductLineRepo_RequiresProduct(t *testing.T) {
	r := newRepos(t)
	err := r.lines.Create(context.Background(), &model.ProductLine{IsActive: true, ProductID: 999})
	assert.ErrorIs(t, err, repository.ErrInvalidReference)
}

func TestProductLineRepo_FindByProductOrdersLines(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	p := r.product(t, "Runner")
	third := r.line(t, p.ID, 3)
	first := r.line(t, p.ID, 1)
	inactive := &model.ProductLine{ProductID: p.ID, Order: 2, IsActive: false}
	require.NoError(t, r.lines.Create(ctx, inactive))

	lines, err := r.lines.FindByProduct(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, first.ID, lines[0].ID)
	assert.Equal(t, inactive.ID, lines[1].ID)
	assert.False(t, lines[1].IsActive)
	assert.Equal(t, third.ID, lines[2].ID)
	assert.True(t, decimal.Zero.Equal(lines[1].Price))
}

func TestProductLineRepo_AttributeValues(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	p := r.product(t, "Runner")
	l := r.line(t, p.ID, 1)
	red := r.attributeValue(t, "Colour", "Red")
	big := r.attributeValue(t, "Size", "XL")

	require.NoError(t, r.lines.AddAttributeValue(ctx, l.ID, red.ID))
	require.NoError(t, r.lines.AddAttributeValue(ctx, l.ID, big.ID))
	require.NoError(t, r.lines.AddAttributeValue(ctx, l.ID, red.ID))
	assert.Equal(t, int64(2), count(t, r.db, &model.ProductLineAttributeValue{}))

	values, err := r.lines.AttributeValues(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, "Red", values[0].Value)

	found, err := r.lines.FindByID(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, found.AttributeValues, 2)
	assert.Equal(t, "XL", found.AttributeValues[1].Value)

	product, err := r.products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, product.ProductLines, 1)
	assert.Len(t, product.ProductLines[0].AttributeValues, 2)

	require.NoError(t, r.lines.RemoveAttributeValue(ctx, l.ID, red.ID))
	assert.ErrorIs(t, r.lines.RemoveAttributeValue(ctx, l.ID, red.ID), repository.ErrNotFound)
	assert.ErrorIs(t, r.lines.AddAttributeValue(ctx, l.ID, 999), repository.ErrInvalidReference)
}

func TestProductLineRepo_DeleteCascades(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	p := r.product(t, "Runner")
	l := r.line(t, p.ID, 1)
	v := r.attributeValue(t, "Colour", "Blue")
	require.NoError(t, r.lines.AddAttributeValue(ctx, l.ID, v.ID))
	require.NoError(t, r.images.Create(ctx, &model.ProductImage{
		Name: "front", AlternativeText: "Front view", URL: model.ImagePath("front.jpg"), ProductLineID: l.ID,
	}))

	require.NoError(t, r.lines.Delete(ctx, l.ID))

	assert.Zero(t, count(t, r.db, &model.ProductImage{}))
	assert.Zero(t, count(t, r.db, &model.ProductLineAttributeValue{}))
	assert.Equal(t, int64(1), count(t, r.db, &model.AttributeValue{}))
	assert.ErrorIs(t, r.lines.Delete(ctx, l.ID), repository.ErrNotFound)
}

func TestProductLineRepo_Update(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	p := r.product(t, "Runner")
	l := r.line(t, p.ID, 1)

	l.Price = decimal.RequireFromString("24.50")
	l.StockQty = 0
	l.IsActive = false
	require.NoError(t, r.lines.Update(ctx, l))

	found, err := r.lines.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("24.5").Equal(found.Price))
	assert.Zero(t, found.StockQty)
	assert.False(t, found.IsActive)
	assert.Equal(t, l.SKU, found.SKU)
}

func TestProductImageRepo_CRUD(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	p := r.product(t, "Runner")
	l := r.line(t, p.ID, 1)

	img := &model.ProductImage{Name: "side", AlternativeText: "Side view", URL: model.ImagePath("side.png"), ProductLineID: l.ID}
	require.NoError(t, r.images.Create(ctx, img))

	img.AlternativeText = "Left side"
	require.NoError(t, r.images.Update(ctx, img))

	images, err := r.images.FindByProductLine(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "Left side", images[0].AlternativeText)
	assert.Equal(t, "product_images/side.png", images[0].URL)

	assert.ErrorIs(t, r.images.Create(ctx, &model.ProductImage{Name: "x", ProductLineID: 999}), repository.ErrInvalidReference)

	require.NoError(t, r.images.Delete(ctx, img.ID))
	_, err = r.images.FindByID(ctx, img.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
