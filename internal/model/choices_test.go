package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductCategory_Values(t *testing.T) {
	assert.Equal(t, ProductCategory("GG"), CategoryGeneralGoods)
	assert.Equal(t, ProductCategory("MEDICINE"), CategoryMedicine)
	assert.ElementsMatch(t, []string{"GG", "MEDICINE"}, ProductCategoryValues())
}

func TestProductCategory_Labels(t *testing.T) {
	assert.Equal(t, "General Goods", CategoryGeneralGoods.Label())
	assert.Equal(t, "Medicine", CategoryMedicine.Label())
	assert.Equal(t, "CLOTHING", ProductCategory("CLOTHING").Label())
}

func TestMedicineType_Values(t *testing.T) {
	assert.Equal(t, MedicineType("OTC"), MedicineTypeOTC)
	assert.Equal(t, MedicineType("PRESCRIPTION"), MedicineTypePrescription)
	assert.ElementsMatch(t, []string{"OTC", "PRESCRIPTION"}, MedicineTypeValues())
}

func TestMedicineType_Labels(t *testing.T) {
	assert.Equal(t, "Over-the-counter", MedicineTypeOTC.Label())
	assert.Equal(t, "Prescription Drugs", MedicineTypePrescription.Label())
}

func TestChoices_NoDuplicates(t *testing.T) {
	tests := []struct {
		name   string
		values []string
	}{
		{"category values", ProductCategoryValues()},
		{"category labels", ProductCategoryLabels()},
		{"medicine type values", MedicineTypeValues()},
		{"medicine type labels", MedicineTypeLabels()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make(map[string]bool)
			for _, v := range tt.values {
				assert.False(t, seen[v], "duplicate %q", v)
				seen[v] = true
			}
		})
	}
}

func TestChoices_IsValid(t *testing.T) {
	assert.True(t, CategoryMedicine.IsValid())
	assert.False(t, ProductCategory("CLOTHING").IsValid())
	assert.False(t, ProductCategory("").IsValid())
	assert.True(t, MedicineTypeOTC.IsValid())
	assert.False(t, MedicineType("otc").IsValid())
}

func TestChoices_ReturnCopies(t *testing.T) {
	choices := ProductCategoryChoices()
	choices[0].Label = "changed"
	assert.Equal(t, "General Goods", CategoryGeneralGoods.Label())
}
