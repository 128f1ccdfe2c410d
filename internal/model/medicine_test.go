package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validMedicine() *Medicine {
	m := NewMedicine(1, 1, "Paracetamol", "500mg")
	m.Usage = "Take one tablet every six hours"
	m.SideEffects = "Nausea"
	return m
}

func TestNewMedicine_Defaults(t *testing.T) {
	m := validMedicine()

	assert.NoError(t, m.FullClean())
	assert.Equal(t, MedicineTypePrescription, m.PrescriptionType)
	assert.Equal(t, "Prescription Drugs", m.PrescriptionTypeDisplay())
	assert.Equal(t, "Paracetamol", m.String())
}

func TestMedicine_FullClean(t *testing.T) {
	tests := []struct {
		name  string
		field string
		set   func(m *Medicine)
		ok    bool
	}{
		{"generic name at limit", "generic_name", func(m *Medicine) { m.GenericName = strings.Repeat("a", 250) }, true},
		{"generic name over limit", "generic_name", func(m *Medicine) { m.GenericName = strings.Repeat("a", 251) }, false},
		{"generic name empty", "generic_name", func(m *Medicine) { m.GenericName = "" }, false},
		{"dosage at limit", "dosage", func(m *Medicine) { m.Dosage = strings.Repeat("a", 150) }, true},
		{"dosage over limit", "dosage", func(m *Medicine) { m.Dosage = strings.Repeat("a", 151) }, false},
		{"usage empty", "usage", func(m *Medicine) { m.Usage = "" }, false},
		{"side effects empty", "side_effects", func(m *Medicine) { m.SideEffects = "" }, false},
		{"missing product", "product_id", func(m *Medicine) { m.ProductID = 0 }, false},
		{"missing form", "form_id", func(m *Medicine) { m.FormID = 0 }, false},
		{"otc", "prescription_type", func(m *Medicine) { m.PrescriptionType = MedicineTypeOTC }, true},
		{"unknown prescription type", "prescription_type", func(m *Medicine) { m.PrescriptionType = "HERBAL" }, false},
		{"prescription type over limit", "prescription_type", func(m *Medicine) { m.PrescriptionType = "PRESCRIPTIONSSSS" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMedicine()
			tt.set(m)
			err := m.FullClean()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			requireFieldError(t, err, tt.field)
		})
	}
}

func TestMedicine_FullCleanIgnoresAssociations(t *testing.T) {
	m := validMedicine()
	m.Product = &Product{}
	m.Form = &MedicineForm{}
	assert.NoError(t, m.FullClean())
}
