package model

import "time"

// Supplier represents the general information about a supplier
type Supplier struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"type:varchar(150);index;not null" validate:"required,max=150"`
	Address         string    `json:"address" gorm:"type:text;not null" validate:"required"`
	TelephoneNumber string    `json:"telephone_number" gorm:"type:varchar(25);not null" validate:"required,max=25"`
	MobileNumber    string    `json:"mobile_number" gorm:"type:varchar(15);not null" validate:"required,max=15"`
	EmailAddress    string    `json:"email_address" gorm:"type:varchar(254);not null" validate:"required,max=254,email_address"`
	ContactPerson   string    `json:"contact_person" gorm:"type:varchar(150);not null" validate:"required,max=150"`
	Remarks         string    `json:"remarks" gorm:"type:text;not null" validate:"required"`
	DateCreated     time.Time `json:"date_created" gorm:"autoCreateTime;<-:create"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

// FullClean validates every field of the supplier
func (s *Supplier) FullClean() error {
	return fullClean(s)
}

func (s *Supplier) String() string {
	return s.Name
}
