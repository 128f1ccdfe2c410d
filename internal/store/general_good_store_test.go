package store

import (
	"context"
	"testing"

	"inventory-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneralGoodStore_CreateAndGet(t *testing.T) {
	s := New(setupTestDB(t), nil)
	ctx := context.Background()
	p := createProduct(t, s, model.CategoryGeneralGoods, "Cotton Balls")

	g := model.NewGeneralGood(p.ID, "First Aid", "100 pieces")
	require.NoError(t, s.GeneralGoods.Create(ctx, g))

	found, err := s.GeneralGoods.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "-", found.Unit)
	assert.Equal(t, "Cotton Balls", found.String())

	byProduct, err := s.GeneralGoods.GetByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, byProduct.ID)
}

func TestGeneralGoodStore_CreateRejects(t *testing.T) {
	s := New(setupTestDB(t), nil)
	ctx := context.Background()

	t.Run("medicine product", func(t *testing.T) {
		p := createProduct(t, s, model.CategoryMedicine, "Aspirin")
		err := s.GeneralGoods.Create(ctx, model.NewGeneralGood(p.ID, "Misc", "n/a"))
		assert.ErrorIs(t, err, ErrCategoryMismatch)
	})

	t.Run("second extension", func(t *testing.T) {
		p := createProduct(t, s, model.CategoryGeneralGoods, "Tissue")
		require.NoError(t, s.GeneralGoods.Create(ctx, model.NewGeneralGood(p.ID, "Paper", "2-ply")))
		err := s.GeneralGoods.Create(ctx, model.NewGeneralGood(p.ID, "Paper", "3-ply"))
		assert.ErrorIs(t, err, ErrAlreadyExtended)
	})

	t.Run("invalid field", func(t *testing.T) {
		p := createProduct(t, s, model.CategoryGeneralGoods, "Mask")
		g := model.NewGeneralGood(p.ID, "", "Surgical")
		requireValidationField(t, s.GeneralGoods.Create(ctx, g), "type")
	})
}

func TestGeneralGoodStore_UpdateListDelete(t *testing.T) {
	s := New(setupTestDB(t), nil)
	ctx := context.Background()
	p := createProduct(t, s, model.CategoryGeneralGoods, "Alcohol")
	g := model.NewGeneralGood(p.ID, "Antiseptic", "70% isopropyl")
	require.NoError(t, s.GeneralGoods.Create(ctx, g))

	g.Unit = "bottle"
	require.NoError(t, s.GeneralGoods.Update(ctx, g))

	goods, total, err := s.GeneralGoods.List(ctx, GeneralGoodFilter{Type: "Antiseptic"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "bottle", goods[0].Unit)

	_, total, err = s.GeneralGoods.List(ctx, GeneralGoodFilter{Type: "Food"})
	require.NoError(t, err)
	assert.Zero(t, total)

	require.NoError(t, s.GeneralGoods.Delete(ctx, g.ID))
	assert.ErrorIs(t, s.GeneralGoods.Delete(ctx, g.ID), ErrNotFound)
	_, err = s.Products.Get(ctx, p.ID)
	assert.NoError(t, err)
}
