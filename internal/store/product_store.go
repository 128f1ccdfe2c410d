package store

import (
	"context"
	"fmt"
	"strings"

	"inventory-service/internal/model"

	"gorm.io/gorm"
)

// ProductFilter narrows a product listing
type ProductFilter struct {
	ListOptions
	Category model.ProductCategory
	Status   string
	Search   string
}

// ProductStore provides access to product storage
type ProductStore struct {
	db *gorm.DB
}

// NewProductStore creates a new product repository
func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

// Create cleans and saves a new product
func (s *ProductStore) Create(ctx context.Context, p *model.Product) error {
	if err := p.FullClean(); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Get retrieves a product by its ID
func (s *ProductStore) Get(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, findErr(err, "product", id)
	}
	return &p, nil
}

// List returns one page of products matching f, newest first, and the total match count
func (s *ProductStore) List(ctx context.Context, f ProductFilter) ([]model.Product, int64, error) {
	opts := f.ListOptions.Normalize()

	query := s.db.WithContext(ctx).Model(&model.Product{})
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(brand) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []model.Product
	if err := query.Order("date_created desc, id desc").Limit(opts.Limit).Offset(opts.offset()).Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// Update cleans and saves the editable fields of p. A product that already has an extension
// cannot move to the other category.
func (s *ProductStore) Update(ctx context.Context, p *model.Product) error {
	if err := p.FullClean(); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.Product
		if err := tx.First(&current, p.ID).Error; err != nil {
			return findErr(err, "product", p.ID)
		}

		if current.Category != p.Category {
			extended, err := hasExtension(tx, p.ID)
			if err != nil {
				return err
			}
			if extended {
				return fmt.Errorf("%w: product %d has %s details", ErrCategoryMismatch, p.ID, current.Category)
			}
		}

		if err := tx.Model(p).Select("brand", "name", "category", "status").Updates(p).Error; err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		p.DateCreated = current.DateCreated
		return nil
	})
}

// Delete removes a product together with its medicine or general good record
func (s *ProductStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.Medicine{}).Error; err != nil {
			return fmt.Errorf("failed to delete medicine of product %d: %w", id, err)
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.GeneralGood{}).Error; err != nil {
			return fmt.Errorf("failed to delete general good of product %d: %w", id, err)
		}

		result := tx.Delete(&model.Product{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete product: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil
	})
}
