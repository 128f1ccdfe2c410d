package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inventory-service/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MedicineFilter narrows a medicine listing
type MedicineFilter struct {
	ListOptions
	PrescriptionType model.MedicineType
	FormID           uint
	Search           string
}

// MedicineStore provides access to medicine storage
type MedicineStore struct {
	db *gorm.DB
}

// NewMedicineStore creates a new medicine repository
func NewMedicineStore(db *gorm.DB) *MedicineStore {
	return &MedicineStore{db: db}
}

// Create cleans m and attaches it to its MEDICINE product
func (s *MedicineStore) Create(ctx context.Context, m *model.Medicine) error {
	if err := m.FullClean(); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := attachable(tx, m.ProductID, model.CategoryMedicine); err != nil {
			return err
		}
		if err := formExists(tx, m.FormID); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return fmt.Errorf("failed to create medicine: %w", err)
		}
		return nil
	})
}

// Get retrieves a medicine with its product and form
func (s *MedicineStore) Get(ctx context.Context, id uint) (*model.Medicine, error) {
	var m model.Medicine
	if err := s.db.WithContext(ctx).Preload("Product").Preload("Form").First(&m, id).Error; err != nil {
		return nil, findErr(err, "medicine", id)
	}
	return &m, nil
}

// GetByProduct retrieves the medicine attached to a product
func (s *MedicineStore) GetByProduct(ctx context.Context, productID uint) (*model.Medicine, error) {
	var m model.Medicine
	err := s.db.WithContext(ctx).Preload("Product").Preload("Form").Where("product_id = ?", productID).First(&m).Error
	if err != nil {
		return nil, findErr(err, "medicine for product", productID)
	}
	return &m, nil
}

// List returns one page of medicines matching f and the total match count
func (s *MedicineStore) List(ctx context.Context, f MedicineFilter) ([]model.Medicine, int64, error) {
	opts := f.ListOptions.Normalize()

	query := s.db.WithContext(ctx).Model(&model.Medicine{})
	if f.PrescriptionType != "" {
		query = query.Where("prescription_type = ?", f.PrescriptionType)
	}
	if f.FormID != 0 {
		query = query.Where("form_id = ?", f.FormID)
	}
	if f.Search != "" {
		query = query.Where("LOWER(generic_name) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count medicines: %w", err)
	}

	var medicines []model.Medicine
	err := query.Preload("Product").Preload("Form").
		Order("date_created desc, id desc").
		Limit(opts.Limit).
		Offset(opts.offset()).
		Find(&medicines).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list medicines: %w", err)
	}
	return medicines, total, nil
}

// Update cleans and saves the editable fields of m. The owning product cannot change.
func (s *MedicineStore) Update(ctx context.Context, m *model.Medicine) error {
	if err := m.FullClean(); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.Medicine
		if err := tx.First(&current, m.ID).Error; err != nil {
			return findErr(err, "medicine", m.ID)
		}
		if current.ProductID != m.ProductID {
			return model.NewValidationError("product_id", model.MsgInvalid)
		}
		if err := formExists(tx, m.FormID); err != nil {
			return err
		}

		err := tx.Model(m).
			Select("generic_name", "dosage", "form_id", "usage", "side_effects", "prescription_type").
			Omit(clause.Associations).
			Updates(m).Error
		if err != nil {
			return fmt.Errorf("failed to update medicine: %w", err)
		}
		m.DateCreated = current.DateCreated
		return nil
	})
}

// Delete removes a medicine; its product is kept
func (s *MedicineStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&model.Medicine{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete medicine: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("medicine %d: %w", id, ErrNotFound)
	}
	return nil
}

func formExists(tx *gorm.DB, formID uint) error {
	var form model.MedicineForm
	if err := tx.Select("id").First(&form, formID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.NewValidationError("form_id", model.MsgDoesNotExist)
		}
		return fmt.Errorf("failed to find medicine form %d: %w", formID, err)
	}
	return nil
}
