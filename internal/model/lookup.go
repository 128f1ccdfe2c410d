package model

import "time"

// MedicineForm describes a physical form a medicine is dispensed in (tablet, syrup, ...)
type MedicineForm struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(30);not null" validate:"required,max=30"`
	Description string    `json:"description" gorm:"type:text;not null" validate:"required"`
	DateCreated time.Time `json:"date_created" gorm:"autoCreateTime;<-:create"`
}

func (MedicineForm) TableName() string {
	return "medicine_forms"
}

// FullClean validates every field of the medicine form
func (f *MedicineForm) FullClean() error {
	return fullClean(f)
}

func (f *MedicineForm) String() string {
	return f.Name
}

// DosageUnit describes a unit medicines are measured in
type DosageUnit struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(10);not null" validate:"required,max=10"`
	Description string    `json:"description" gorm:"type:text;not null" validate:"required"`
	DateCreated time.Time `json:"date_created" gorm:"autoCreateTime;<-:create"`
}

func (DosageUnit) TableName() string {
	return "dosage_units"
}

// FullClean validates every field of the dosage unit
func (u *DosageUnit) FullClean() error {
	return fullClean(u)
}

func (u *DosageUnit) String() string {
	return u.Name
}
