package store

import (
	"context"
	"fmt"
	"strings"

	"inventory-service/internal/model"

	"gorm.io/gorm"
)

// SupplierFilter narrows a supplier listing
type SupplierFilter struct {
	ListOptions
	Search string
}

// SupplierStore provides access to supplier storage
type SupplierStore struct {
	db *gorm.DB
}

// NewSupplierStore creates a new supplier repository
func NewSupplierStore(db *gorm.DB) *SupplierStore {
	return &SupplierStore{db: db}
}

// Create cleans and saves a new supplier
func (s *SupplierStore) Create(ctx context.Context, sup *model.Supplier) error {
	if err := sup.FullClean(); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(sup).Error; err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

// Get retrieves a supplier by its ID
func (s *SupplierStore) Get(ctx context.Context, id uint) (*model.Supplier, error) {
	var sup model.Supplier
	if err := s.db.WithContext(ctx).First(&sup, id).Error; err != nil {
		return nil, findErr(err, "supplier", id)
	}
	return &sup, nil
}

// List returns one page of suppliers matching f, newest first, and the total match count
func (s *SupplierStore) List(ctx context.Context, f SupplierFilter) ([]model.Supplier, int64, error) {
	opts := f.ListOptions.Normalize()

	query := s.db.WithContext(ctx).Model(&model.Supplier{})
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(contact_person) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count suppliers: %w", err)
	}

	var suppliers []model.Supplier
	if err := query.Order("date_created desc, id desc").Limit(opts.Limit).Offset(opts.offset()).Find(&suppliers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, total, nil
}

// Update cleans and saves every editable field of sup
func (s *SupplierStore) Update(ctx context.Context, sup *model.Supplier) error {
	if err := sup.FullClean(); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.Supplier
		if err := tx.First(&current, sup.ID).Error; err != nil {
			return findErr(err, "supplier", sup.ID)
		}

		err := tx.Model(sup).
			Select("name", "address", "telephone_number", "mobile_number", "email_address", "contact_person", "remarks").
			Updates(sup).Error
		if err != nil {
			return fmt.Errorf("failed to update supplier: %w", err)
		}
		sup.DateCreated = current.DateCreated
		return nil
	})
}

// Delete removes a supplier
func (s *SupplierStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&model.Supplier{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete supplier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("supplier %d: %w", id, ErrNotFound)
	}
	return nil
}
