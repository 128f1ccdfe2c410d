package model

import "time"

// DefaultProductStatus is assigned to products that have not been published yet
const DefaultProductStatus = "DRAFT"

// Product holds the details shared by every inventory item
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Brand       string          `json:"brand" gorm:"type:varchar(150);not null" validate:"required,max=150"`
	Name        string          `json:"name" gorm:"type:varchar(150);not null" validate:"required,max=150"`
	Category    ProductCategory `json:"category" gorm:"type:varchar(10);not null;default:'MEDICINE';index" validate:"required,max=10,oneof=GG MEDICINE"`
	Status      string          `json:"status" gorm:"type:varchar(15);not null;default:'DRAFT';index" validate:"required,max=15"`
	DateCreated time.Time       `json:"date_created" gorm:"autoCreateTime;<-:create"`
}

// TableName returns the table name for Product model
func (Product) TableName() string {
	return "products"
}

// NewProduct returns a product with the category and status defaults applied
func NewProduct(brand, name string) *Product {
	return &Product{
		Brand:    brand,
		Name:     name,
		Category: CategoryMedicine,
		Status:   DefaultProductStatus,
	}
}

// FullClean validates every field of the product
func (p *Product) FullClean() error {
	return fullClean(p)
}

// CategoryDisplay returns the human-readable label of the category
func (p *Product) CategoryDisplay() string {
	return p.Category.Label()
}

func (p *Product) String() string {
	return p.Name
}
