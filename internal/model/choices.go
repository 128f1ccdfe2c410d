package model

// Choice pairs a stored value with its human-readable label
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type choiceSet []Choice

func (s choiceSet) values() []string {
	values := make([]string, 0, len(s))
	for _, c := range s {
		values = append(values, c.Value)
	}
	return values
}

func (s choiceSet) labels() []string {
	labels := make([]string, 0, len(s))
	for _, c := range s {
		labels = append(labels, c.Label)
	}
	return labels
}

func (s choiceSet) label(value string) (string, bool) {
	for _, c := range s {
		if c.Value == value {
			return c.Label, true
		}
	}
	return "", false
}

// ProductCategory classifies a product as a general good or a medicine
type ProductCategory string

const (
	CategoryGeneralGoods ProductCategory = "GG"
	CategoryMedicine     ProductCategory = "MEDICINE"
)

var productCategories = choiceSet{
	{Value: string(CategoryGeneralGoods), Label: "General Goods"},
	{Value: string(CategoryMedicine), Label: "Medicine"},
}

// ProductCategoryChoices returns the category choices in declaration order
func ProductCategoryChoices() []Choice {
	return append([]Choice(nil), productCategories...)
}

// ProductCategoryValues returns the stored values of every category
func ProductCategoryValues() []string { return productCategories.values() }

// ProductCategoryLabels returns the display labels of every category
func ProductCategoryLabels() []string { return productCategories.labels() }

// Label returns the display label, or the raw value when it is not a known choice
func (c ProductCategory) Label() string {
	if l, ok := productCategories.label(string(c)); ok {
		return l
	}
	return string(c)
}

// IsValid reports whether c is one of the declared categories
func (c ProductCategory) IsValid() bool {
	_, ok := productCategories.label(string(c))
	return ok
}

// MedicineType tells whether a medicine needs a prescription
type MedicineType string

const (
	MedicineTypeOTC          MedicineType = "OTC"
	MedicineTypePrescription MedicineType = "PRESCRIPTION"
)

var medicineTypes = choiceSet{
	{Value: string(MedicineTypeOTC), Label: "Over-the-counter"},
	{Value: string(MedicineTypePrescription), Label: "Prescription Drugs"},
}

// MedicineTypeChoices returns the prescription type choices in declaration order
func MedicineTypeChoices() []Choice {
	return append([]Choice(nil), medicineTypes...)
}

// MedicineTypeValues returns the stored values of every medicine type
func MedicineTypeValues() []string { return medicineTypes.values() }

// MedicineTypeLabels returns the display labels of every medicine type
func MedicineTypeLabels() []string { return medicineTypes.labels() }

// Label returns the display label, or the raw value when it is not a known choice
func (t MedicineType) Label() string {
	if l, ok := medicineTypes.label(string(t)); ok {
		return l
	}
	return string(t)
}

// IsValid reports whether t is one of the declared medicine types
func (t MedicineType) IsValid() bool {
	_, ok := medicineTypes.label(string(t))
	return ok
}
