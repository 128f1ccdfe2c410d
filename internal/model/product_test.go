package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireFieldError asserts err is a *ValidationError that names field
func requireFieldError(t *testing.T, err error, field string) *ValidationError {
	t.Helper()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)
	assert.True(t, verr.Has(field), "expected error on %q, got %v", field, verr.Fields)
	return verr
}

func TestNewProduct_Defaults(t *testing.T) {
	p := NewProduct("Nike", "test")

	require.NoError(t, p.FullClean())
	assert.Equal(t, CategoryMedicine, p.Category)
	assert.Equal(t, "DRAFT", p.Status)
	assert.Equal(t, "Medicine", p.CategoryDisplay())
	assert.Equal(t, "test", p.String())
}

func TestProduct_FullClean_MaxLength(t *testing.T) {
	tests := []struct {
		field string
		limit int
		set   func(p *Product, v string)
	}{
		{"brand", 150, func(p *Product, v string) { p.Brand = v }},
		{"name", 150, func(p *Product, v string) { p.Name = v }},
		{"status", 15, func(p *Product, v string) { p.Status = v }},
	}

	for _, tt := range tests {
		t.Run(tt.field+" at limit", func(t *testing.T) {
			p := NewProduct("Nike", "test")
			tt.set(p, strings.Repeat("a", tt.limit))
			assert.NoError(t, p.FullClean())
		})

		t.Run(tt.field+" over limit", func(t *testing.T) {
			p := NewProduct("Nike", "test")
			tt.set(p, strings.Repeat("a", tt.limit+1))
			verr := requireFieldError(t, p.FullClean(), tt.field)
			assert.Equal(t, []string{MsgMaxLength}, verr.Fields[tt.field])
		})
	}
}

func TestProduct_FullClean_MaxLengthCountsCharacters(t *testing.T) {
	p := NewProduct(strings.Repeat("é", 150), "test")
	assert.NoError(t, p.FullClean())
}

func TestProduct_FullClean_Required(t *testing.T) {
	tests := []struct {
		field string
		set   func(p *Product)
	}{
		{"brand", func(p *Product) { p.Brand = "" }},
		{"name", func(p *Product) { p.Name = "" }},
		{"category", func(p *Product) { p.Category = "" }},
		{"status", func(p *Product) { p.Status = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			p := NewProduct("Nike", "test")
			tt.set(p)
			verr := requireFieldError(t, p.FullClean(), tt.field)
			assert.Equal(t, []string{MsgRequired}, verr.Fields[tt.field])
		})
	}
}

func TestProduct_FullClean_Category(t *testing.T) {
	t.Run("medicine", func(t *testing.T) {
		p := NewProduct("Nike", "test")
		p.Category = CategoryMedicine
		assert.NoError(t, p.FullClean())
	})

	t.Run("general goods", func(t *testing.T) {
		p := NewProduct("Nike", "test")
		p.Category = CategoryGeneralGoods
		assert.NoError(t, p.FullClean())
		assert.Equal(t, "General Goods", p.CategoryDisplay())
	})

	t.Run("over max length", func(t *testing.T) {
		p := NewProduct("Nike", "test")
		p.Category = "MEDICINESSSS"
		requireFieldError(t, p.FullClean(), "category")
	})

	t.Run("not in choices", func(t *testing.T) {
		p := NewProduct("Nike", "test")
		p.Category = "CLOTHING"
		verr := requireFieldError(t, p.FullClean(), "category")
		assert.Equal(t, []string{MsgInvalidChoice}, verr.Fields["category"])
	})
}

func TestProduct_FullClean_ReportsEveryField(t *testing.T) {
	p := &Product{}
	err := p.FullClean()

	verr := requireFieldError(t, err, "brand")
	assert.Len(t, verr.Fields, 4)
	assert.True(t, verr.Has("name"))
	assert.True(t, verr.Has("category"))
	assert.True(t, verr.Has("status"))
	assert.Contains(t, err.Error(), "brand: required")
}
