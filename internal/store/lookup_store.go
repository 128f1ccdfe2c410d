package store

import (
	"context"
	"fmt"

	"inventory-service/internal/model"
	"inventory-service/pkg/cache"

	"gorm.io/gorm"
)

const (
	medicineFormsKey = "medicine_forms"
	dosageUnitsKey   = "dosage_units"
)

// LookupStore provides access to the medicine form and dosage unit tables.
// Full listings are read through the cache; writes invalidate it.
type LookupStore struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewLookupStore creates a lookup repository; c may be nil
func NewLookupStore(db *gorm.DB, c *cache.Cache) *LookupStore {
	return &LookupStore{db: db, cache: c}
}

// invalidate retires a cached listing. On failure the old entry expires with its TTL.
func (s *LookupStore) invalidate(ctx context.Context, key string) {
	_ = s.cache.Invalidate(ctx, key)
}

// CreateMedicineForm cleans and saves a new medicine form
func (s *LookupStore) CreateMedicineForm(ctx context.Context, f *model.MedicineForm) error {
	if err := f.FullClean(); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(f).Error; err != nil {
		return fmt.Errorf("failed to create medicine form: %w", err)
	}
	s.invalidate(ctx, medicineFormsKey)
	return nil
}

// GetMedicineForm retrieves a medicine form by its ID
func (s *LookupStore) GetMedicineForm(ctx context.Context, id uint) (*model.MedicineForm, error) {
	var f model.MedicineForm
	if err := s.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, findErr(err, "medicine form", id)
	}
	return &f, nil
}

// ListMedicineForms returns every medicine form ordered by name
func (s *LookupStore) ListMedicineForms(ctx context.Context) ([]model.MedicineForm, error) {
	var forms []model.MedicineForm
	err := s.cache.GetOrLoad(ctx, medicineFormsKey, &forms, func(ctx context.Context) (any, error) {
		var loaded []model.MedicineForm
		if err := s.db.WithContext(ctx).Order("name, id").Find(&loaded).Error; err != nil {
			return nil, fmt.Errorf("failed to list medicine forms: %w", err)
		}
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return forms, nil
}

// UpdateMedicineForm cleans and saves the editable fields of f
func (s *LookupStore) UpdateMedicineForm(ctx context.Context, f *model.MedicineForm) error {
	if err := f.FullClean(); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.MedicineForm
		if err := tx.First(&current, f.ID).Error; err != nil {
			return findErr(err, "medicine form", f.ID)
		}
		if err := tx.Model(f).Select("name", "description").Updates(f).Error; err != nil {
			return fmt.Errorf("failed to update medicine form: %w", err)
		}
		f.DateCreated = current.DateCreated
		return nil
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx, medicineFormsKey)
	return nil
}

// DeleteMedicineForm removes a medicine form together with the medicines of that form
func (s *LookupStore) DeleteMedicineForm(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("form_id = ?", id).Delete(&model.Medicine{}).Error; err != nil {
			return fmt.Errorf("failed to delete medicines of form %d: %w", id, err)
		}
		result := tx.Delete(&model.MedicineForm{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete medicine form: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("medicine form %d: %w", id, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx, medicineFormsKey)
	return nil
}

// CreateDosageUnit cleans and saves a new dosage unit
func (s *LookupStore) CreateDosageUnit(ctx context.Context, u *model.DosageUnit) error {
	if err := u.FullClean(); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("failed to create dosage unit: %w", err)
	}
	s.invalidate(ctx, dosageUnitsKey)
	return nil
}

// GetDosageUnit retrieves a dosage unit by its ID
func (s *LookupStore) GetDosageUnit(ctx context.Context, id uint) (*model.DosageUnit, error) {
	var u model.DosageUnit
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, findErr(err, "dosage unit", id)
	}
	return &u, nil
}

// ListDosageUnits returns every dosage unit ordered by name
func (s *LookupStore) ListDosageUnits(ctx context.Context) ([]model.DosageUnit, error) {
	var units []model.DosageUnit
	err := s.cache.GetOrLoad(ctx, dosageUnitsKey, &units, func(ctx context.Context) (any, error) {
		var loaded []model.DosageUnit
		if err := s.db.WithContext(ctx).Order("name, id").Find(&loaded).Error; err != nil {
			return nil, fmt.Errorf("failed to list dosage units: %w", err)
		}
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return units, nil
}

// UpdateDosageUnit cleans and saves the editable fields of u
func (s *LookupStore) UpdateDosageUnit(ctx context.Context, u *model.DosageUnit) error {
	if err := u.FullClean(); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.DosageUnit
		if err := tx.First(&current, u.ID).Error; err != nil {
			return findErr(err, "dosage unit", u.ID)
		}
		if err := tx.Model(u).Select("name", "description").Updates(u).Error; err != nil {
			return fmt.Errorf("failed to update dosage unit: %w", err)
		}
		u.DateCreated = current.DateCreated
		return nil
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx, dosageUnitsKey)
	return nil
}

// DeleteDosageUnit removes a dosage unit
func (s *LookupStore) DeleteDosageUnit(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&model.DosageUnit{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete dosage unit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("dosage unit %d: %w", id, ErrNotFound)
	}
	s.invalidate(ctx, dosageUnitsKey)
	return nil
}
