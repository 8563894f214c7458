package repository_test

import (
	"context"
	"testing"

	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepo_CreateDefaultsSlug(t *testing.T) {
	r := newRepos(t)
	c := r.category(t, "Running Shoes", nil)

	assert.NotZero(t, c.ID)
	assert.Equal(t, "running-shoes", c.Slug)

	found, err := r.categories.FindBySlug(context.Background(), "running-shoes")
	require.NoError(t, err)
	assert.Equal(t, c.ID, found.ID)
}

func TestCategoryRepo_DuplicateSlug(t *testing.T) {
	r := newRepos(t)
	r.category(t, "Shoes", nil)

	err := r.categories.Create(context.Background(), &model.Category{Name: "Shoes", IsActive: true})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestCategoryRepo_CreateInactiveIsKept(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	c := &model.Category{Name: "Archive", IsActive: false}
	require.NoError(t, r.categories.Create(ctx, c))
	assert.False(t, c.IsActive)

	found, err := r.categories.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)
}

func TestCategoryRepo_UnknownParent(t *testing.T) {
	r := newRepos(t)
	missing := uint64(999)

	err := r.categories.Create(context.Background(), &model.Category{Name: "Orphan", IsActive: true, ParentID: &missing})
	assert.ErrorIs(t, err, repository.ErrInvalidReference)
}

func TestCategoryRepo_FindByIDNotFound(t *testing.T) {
	r := newRepos(t)
	_, err := r.categories.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCategoryRepo_FindAllFilters(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	shoes := r.category(t, "Shoes", nil)
	r.category(t, "Boots", &shoes.ID)
	hidden := &model.Category{Name: "Hidden", IsActive: false}
	require.NoError(t, r.categories.Create(ctx, hidden))

	all, err := r.categories.FindAll(ctx, repository.CategoryFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	roots, err := r.categories.FindAll(ctx, repository.CategoryFilter{RootsOnly: true, ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "Shoes", roots[0].Name)

	children, err := r.categories.FindChildren(ctx, shoes.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "Boots", children[0].Name)
}

func TestCategoryRepo_Tree(t *testing.T) {
	r := newRepos(t)
	shoes := r.category(t, "Shoes", nil)
	r.category(t, "Sneakers", &shoes.ID)
	r.category(t, "Boots", &shoes.ID)
	r.category(t, "Accessories", nil)

	tree, err := r.categories.Tree(context.Background())
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, "Accessories", tree[0].Name)
	assert.Empty(t, tree[0].Children)
	assert.Equal(t, "Shoes", tree[1].Name)
	require.Len(t, tree[1].Children, 2)
	assert.Equal(t, "Boots", tree[1].Children[0].Name)
	assert.Equal(t, "Sneakers", tree[1].Children[1].Name)
}

func TestCategoryRepo_UpdateRejectsCycles(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	root := r.category(t, "Root", nil)
	child := r.category(t, "Child", &root.ID)

	root.ParentID = &root.ID
	assert.ErrorIs(t, r.categories.Update(ctx, root), repository.ErrConstraint)

	root.ParentID = &child.ID
	assert.ErrorIs(t, r.categories.Update(ctx, root), repository.ErrConstraint)

	missing := uint64(999)
	root.ParentID = &missing
	assert.ErrorIs(t, r.categories.Update(ctx, root), repository.ErrInvalidReference)

	child.Name = "Renamed"
	child.ParentID = nil
	require.NoError(t, r.categories.Update(ctx, child))
	found, err := r.categories.FindByID(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", found.Name)
	assert.Nil(t, found.ParentID)
}

func TestCategoryRepo_UpdateMissing(t *testing.T) {
	r := newRepos(t)
	err := r.categories.Update(context.Background(), &model.Category{CatalogModel: model.CatalogModel{ID: 77}, Name: "x", Slug: "x"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCategoryRepo_DeleteProtectsParents(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	parent := r.category(t, "Parent", nil)
	child := r.category(t, "Child", &parent.ID)

	assert.ErrorIs(t, r.categories.Delete(ctx, parent.ID), repository.ErrProtected)

	require.NoError(t, r.categories.Delete(ctx, child.ID))
	require.NoError(t, r.categories.Delete(ctx, parent.ID))
	assert.ErrorIs(t, r.categories.Delete(ctx, parent.ID), repository.ErrNotFound)
}

func TestCategoryRepo_DeleteNullsProducts(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	c := r.category(t, "Shoes", nil)
	p := &model.Product{PID: "P1", Name: "Runner", IsActive: true, CategoryID: &c.ID}
	require.NoError(t, r.products.Create(ctx, p))

	require.NoError(t, r.categories.Delete(ctx, c.ID))

	found, err := r.products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, found.CategoryID)
	assert.Nil(t, found.Category)
}
