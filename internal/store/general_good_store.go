package store

import (
	"context"
	"fmt"

	"inventory-service/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GeneralGoodFilter narrows a general good listing
type GeneralGoodFilter struct {
	ListOptions
	Type string
}

// GeneralGoodStore provides access to general good storage
type GeneralGoodStore struct {
	db *gorm.DB
}

// NewGeneralGoodStore creates a new general good repository
func NewGeneralGoodStore(db *gorm.DB) *GeneralGoodStore {
	return &GeneralGoodStore{db: db}
}

// Create cleans g and attaches it to its GG product
func (s *GeneralGoodStore) Create(ctx context.Context, g *model.GeneralGood) error {
	if err := g.FullClean(); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := attachable(tx, g.ProductID, model.CategoryGeneralGoods); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(g).Error; err != nil {
			return fmt.Errorf("failed to create general good: %w", err)
		}
		return nil
	})
}

// Get retrieves a general good with its product
func (s *GeneralGoodStore) Get(ctx context.Context, id uint) (*model.GeneralGood, error) {
	var g model.GeneralGood
	if err := s.db.WithContext(ctx).Preload("Product").First(&g, id).Error; err != nil {
		return nil, findErr(err, "general good", id)
	}
	return &g, nil
}

// GetByProduct retrieves the general good attached to a product
func (s *GeneralGoodStore) GetByProduct(ctx context.Context, productID uint) (*model.GeneralGood, error) {
	var g model.GeneralGood
	if err := s.db.WithContext(ctx).Preload("Product").Where("product_id = ?", productID).First(&g).Error; err != nil {
		return nil, findErr(err, "general good for product", productID)
	}
	return &g, nil
}

// List returns one page of general goods matching f and the total match count
func (s *GeneralGoodStore) List(ctx context.Context, f GeneralGoodFilter) ([]model.GeneralGood, int64, error) {
	opts := f.ListOptions.Normalize()

	query := s.db.WithContext(ctx).Model(&model.GeneralGood{})
	if f.Type != "" {
		query = query.Where("type = ?", f.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count general goods: %w", err)
	}

	var goods []model.GeneralGood
	err := query.Preload("Product").
		Order("date_created desc, id desc").
		Limit(opts.Limit).
		Offset(opts.offset()).
		Find(&goods).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list general goods: %w", err)
	}
	return goods, total, nil
}

// Update cleans and saves the editable fields of g. The owning product cannot change.
func (s *GeneralGoodStore) Update(ctx context.Context, g *model.GeneralGood) error {
	if err := g.FullClean(); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.GeneralGood
		if err := tx.First(&current, g.ID).Error; err != nil {
			return findErr(err, "general good", g.ID)
		}
		if current.ProductID != g.ProductID {
			return model.NewValidationError("product_id", model.MsgInvalid)
		}

		if err := tx.Model(g).Select("type", "unit", "notes").Omit(clause.Associations).Updates(g).Error; err != nil {
			return fmt.Errorf("failed to update general good: %w", err)
		}
		g.DateCreated = current.DateCreated
		return nil
	})
}

// Delete removes a general good; its product is kept
func (s *GeneralGoodStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&model.GeneralGood{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete general good: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("general good %d: %w", id, ErrNotFound)
	}
	return nil
}
