// Package model declares the inventory records and the field rules they are cleaned against.
package model

// Models lists every persisted model in migration order
func Models() []any {
	return []any{
		&Product{},
		&MedicineForm{},
		&DosageUnit{},
		&Medicine{},
		&GeneralGood{},
		&Supplier{},
	}
}
