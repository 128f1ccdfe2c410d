package model

import "time"

// DefaultGeneralGoodUnit is used when a general good has no unit of measure
const DefaultGeneralGoodUnit = "-"

// GeneralGood holds the details specific to a GG product
type GeneralGood struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProductID   uint      `json:"product_id" gorm:"not null;uniqueIndex" validate:"required"`
	Product     *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" validate:"-"`
	Type        string    `json:"type" gorm:"type:varchar(35);not null" validate:"required,max=35"`
	Unit        string    `json:"unit" gorm:"type:varchar(20);not null;default:'-'" validate:"required,max=20"`
	Notes       string    `json:"notes" gorm:"type:text;not null" validate:"required"`
	DateCreated time.Time `json:"date_created" gorm:"autoCreateTime;<-:create"`
}

func (GeneralGood) TableName() string {
	return "general_goods"
}

// NewGeneralGood returns a general good for the given product with the unit default applied
func NewGeneralGood(productID uint, goodType, notes string) *GeneralGood {
	return &GeneralGood{
		ProductID: productID,
		Type:      goodType,
		Unit:      DefaultGeneralGoodUnit,
		Notes:     notes,
	}
}

// FullClean validates every field of the general good
func (g *GeneralGood) FullClean() error {
	return fullClean(g)
}

// String returns the name of the linked product; empty when the product is not loaded
func (g *GeneralGood) String() string {
	if g.Product == nil {
		return ""
	}
	return g.Product.Name
}
