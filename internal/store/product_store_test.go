package store

import (
	"context"
	"fmt"
	"testing"

	"inventory-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductStore_Create(t *testing.T) {
	s := New(setupTestDB(t), nil)
	ctx := context.Background()

	p := model.NewProduct("Nike", "test")
	require.NoError(t, s.Products.Create(ctx, p))
	assert.NotZero(t, p.ID)
	assert.False(t, p.DateCreated.IsZero())

	found, err := s.Products.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nike", found.Brand)
	assert.Equal(t, model.CategoryMedicine, found.Category)
	assert.Equal(t, "DRAFT", found.Status)
}

func TestProductStore_CreateRejectsInvalid(t *testing.T) {
	s := New(setupTestDB(t), nil)
	ctx := context.Background()

	p := model.NewProduct("", "test")
	err := s.Products.Create(ctx, p)
	requireValidationField(t, err, "brand")
	assert.Zero(t, p.ID)

	_, total, err := s.Products.List(ctx, ProductFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestProductStore_GetNotFound(t *testing.T) {
	s := New(setupTestDB(t), nil)

	_, err := s.Products.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductStore_List(t *testing.T) {
	s := New(setupTestDB(t), nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		createProduct(t, s, model.CategoryMedicine, fmt.Sprintf("Biogesic %d", i))
	}
	createProduct(t, s, model.CategoryGeneralGoods, "Toothbrush")

	t.Run("all", func(t *testing.T) {
		products, total, err := s.Products.List(ctx, ProductFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		assert.Len(t, products, 4)
	})

	t.Run("by category", func(t *testing.T) {
		products, total, err := s.Products.List(ctx, ProductFilter{Category: model.CategoryGeneralGoods})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "Toothbrush", products[0].Name)
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		_, total, err := s.Products.List(ctx, ProductFilter{Search: "BIOGESIC"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("paged", func(t *testing.T) {
		products, total, err := s.Products.List(ctx, ProductFilter{ListOptions: ListOptions{Page: 2, Limit: 3}})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		assert.Len(t, products, 1)
	})
}

func TestProductStore_Update(t *testing.T) {
	s := New(setupTestDB(t), nil)
	ctx := context.Background()

	p := createProduct(t, s, model.CategoryMedicine, "Original")
	before, err := s.Products.Get(ctx, p.ID)
	require.NoError(t, err)

	before.Name = "Renamed"
	before.Status = "PUBLISHED"
	require.NoError(t, s.Products.Update(ctx, before))

	after, err := s.Products.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", after.Name)
	assert.Equal(t, "PUBLISHED", after.Status)
	assert.True(t, after.DateCreated.Equal(before.DateCreated), "date_created changed on update")
}

func TestProductStore_UpdateRejects(t *testing.T) {
	s := New(setupTestDB(t), nil)
	ctx := context.Background()

	t.Run("invalid field", func(t *testing.T) {
		p := createProduct(t, s, model.CategoryMedicine, "Original")
		p.Category = "CLOTHING"
		requireValidationField(t, s.Products.Update(ctx, p), "category")
	})

	t.Run("missing product", func(t *testing.T) {
		p := model.NewProduct("Acme", "Ghost")
		p.ID = 404
		assert.ErrorIs(t, s.Products.Update(ctx, p), ErrNotFound)
	})

	t.Run("category change with extension", func(t *testing.T) {
		p := createProduct(t, s, model.CategoryMedicine, "Amoxicillin")
		form := createForm(t, s, "Capsule")
		createMedicine(t, s, p.ID, form.ID, "Amoxicillin")

		p.Category = model.CategoryGeneralGoods
		assert.ErrorIs(t, s.Products.Update(ctx, p), ErrCategoryMismatch)
	})

	t.Run("category change without extension", func(t *testing.T) {
		p := createProduct(t, s, model.CategoryMedicine, "Cotton")
		p.Category = model.CategoryGeneralGoods
		assert.NoError(t, s.Products.Update(ctx, p))
	})
}

func TestProductStore_DeleteCascades(t *testing.T) {
	s := New(setupTestDB(t), nil)
	ctx := context.Background()

	medProduct := createProduct(t, s, model.CategoryMedicine, "Paracetamol")
	form := createForm(t, s, "Tablet")
	med := createMedicine(t, s, medProduct.ID, form.ID, "Paracetamol")

	ggProduct := createProduct(t, s, model.CategoryGeneralGoods, "Soap")
	gg := model.NewGeneralGood(ggProduct.ID, "Toiletries", "Unscented")
	require.NoError(t, s.GeneralGoods.Create(ctx, gg))

	require.NoError(t, s.Products.Delete(ctx, medProduct.ID))
	require.NoError(t, s.Products.Delete(ctx, ggProduct.ID))

	_, err := s.Medicines.Get(ctx, med.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GeneralGoods.Get(ctx, gg.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Lookups.GetMedicineForm(ctx, form.ID)
	assert.NoError(t, err, "deleting a product must keep the medicine form")

	assert.ErrorIs(t, s.Products.Delete(ctx, medProduct.ID), ErrNotFound)
}
