// Package store persists inventory records. Every write cleans the record first so nothing
// invalid reaches the database.
package store

import (
	"errors"
	"fmt"

	"inventory-service/internal/model"
	"inventory-service/pkg/cache"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrCategoryMismatch is returned when an extension does not match its product's category
	ErrCategoryMismatch = errors.New("product category does not match extension")

	// ErrAlreadyExtended is returned when a product already has a medicine or general good record
	ErrAlreadyExtended = errors.New("product already has an extension")
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// ListOptions selects a page of results. Zero values pick the first page of 20.
type ListOptions struct {
	Page  int
	Limit int
}

// Normalize clamps page and limit to their allowed ranges
func (o ListOptions) Normalize() ListOptions {
	if o.Page <= 0 {
		o.Page = 1
	}
	if o.Limit <= 0 || o.Limit > maxLimit {
		o.Limit = defaultLimit
	}
	return o
}

func (o ListOptions) offset() int {
	return (o.Page - 1) * o.Limit
}

// Store groups the repositories of every inventory model
type Store struct {
	Products     *ProductStore
	Medicines    *MedicineStore
	GeneralGoods *GeneralGoodStore
	Lookups      *LookupStore
	Suppliers    *SupplierStore
}

// New creates the repositories on top of db. c may be nil to disable lookup caching.
func New(db *gorm.DB, c *cache.Cache) *Store {
	return &Store{
		Products:     NewProductStore(db),
		Medicines:    NewMedicineStore(db),
		GeneralGoods: NewGeneralGoodStore(db),
		Lookups:      NewLookupStore(db, c),
		Suppliers:    NewSupplierStore(db),
	}
}

func findErr(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return fmt.Errorf("failed to find %s %d: %w", what, id, err)
}

// attachable checks that productID names a product of the wanted category with no extension yet
func attachable(tx *gorm.DB, productID uint, want model.ProductCategory) error {
	var product model.Product
	if err := tx.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.NewValidationError("product_id", model.MsgDoesNotExist)
		}
		return fmt.Errorf("failed to find product %d: %w", productID, err)
	}
	if product.Category != want {
		return fmt.Errorf("%w: product %d is %s, expected %s", ErrCategoryMismatch, productID, product.Category, want)
	}

	extended, err := hasExtension(tx, productID)
	if err != nil {
		return err
	}
	if extended {
		return fmt.Errorf("%w: product %d", ErrAlreadyExtended, productID)
	}
	return nil
}

func hasExtension(tx *gorm.DB, productID uint) (bool, error) {
	for _, m := range []any{&model.Medicine{}, &model.GeneralGood{}} {
		var count int64
		if err := tx.Model(m).Where("product_id = ?", productID).Count(&count).Error; err != nil {
			return false, fmt.Errorf("failed to count product extensions: %w", err)
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}
