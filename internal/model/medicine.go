package model

import "time"

// Medicine holds the medicine specific details of a MEDICINE product
type Medicine struct {
	ID               uint          `json:"id" gorm:"primaryKey"`
	ProductID        uint          `json:"product_id" gorm:"not null;uniqueIndex" validate:"required"`
	Product          *Product      `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" validate:"-"`
	GenericName      string        `json:"generic_name" gorm:"type:varchar(250);not null" validate:"required,max=250"`
	Dosage           string        `json:"dosage" gorm:"type:varchar(150);not null" validate:"required,max=150"`
	FormID           uint          `json:"form_id" gorm:"not null;index" validate:"required"`
	Form             *MedicineForm `json:"form,omitempty" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE" validate:"-"`
	Usage            string        `json:"usage" gorm:"type:text;not null" validate:"required"`
	SideEffects      string        `json:"side_effects" gorm:"type:text;not null" validate:"required"`
	PrescriptionType MedicineType  `json:"prescription_type" gorm:"type:varchar(15);not null;default:'PRESCRIPTION'" validate:"required,max=15,oneof=OTC PRESCRIPTION"`
	DateCreated      time.Time     `json:"date_created" gorm:"autoCreateTime;<-:create"`
}

func (Medicine) TableName() string {
	return "medicines"
}

// NewMedicine returns a medicine for the given product and form with the prescription default applied
func NewMedicine(productID, formID uint, genericName, dosage string) *Medicine {
	return &Medicine{
		ProductID:        productID,
		FormID:           formID,
		GenericName:      genericName,
		Dosage:           dosage,
		PrescriptionType: MedicineTypePrescription,
	}
}

// FullClean validates every field of the medicine.
// The product category rule is checked by the store when the medicine is attached.
func (m *Medicine) FullClean() error {
	return fullClean(m)
}

// PrescriptionTypeDisplay returns the human-readable label of the prescription type
func (m *Medicine) PrescriptionTypeDisplay() string {
	return m.PrescriptionType.Label()
}

func (m *Medicine) String() string {
	return m.GenericName
}
