package store

import (
	"context"
	"testing"

	"inventory-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSupplier(name string) *model.Supplier {
	return &model.Supplier{
		Name:            name,
		Address:         "12 Rizal Ave, Manila",
		TelephoneNumber: "+63 2 8123 4567",
		MobileNumber:    "09171234567",
		EmailAddress:    "orders@example.com",
		ContactPerson:   "Ana Cruz",
		Remarks:         "Net 30",
	}
}

func TestSupplierStore_CRUD(t *testing.T) {
	s := New(setupTestDB(t), nil)
	ctx := context.Background()

	sup := newSupplier("MedSupply")
	require.NoError(t, s.Suppliers.Create(ctx, sup))
	require.NoError(t, s.Suppliers.Create(ctx, newSupplier("PharmaLink")))

	created, err := s.Suppliers.Get(ctx, sup.ID)
	require.NoError(t, err)

	suppliers, total, err := s.Suppliers.List(ctx, SupplierFilter{Search: "pharma"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "PharmaLink", suppliers[0].Name)

	created.Remarks = "Net 60"
	require.NoError(t, s.Suppliers.Update(ctx, created))
	updated, err := s.Suppliers.Get(ctx, sup.ID)
	require.NoError(t, err)
	assert.Equal(t, "Net 60", updated.Remarks)
	assert.True(t, updated.DateCreated.Equal(created.DateCreated))

	require.NoError(t, s.Suppliers.Delete(ctx, sup.ID))
	_, err = s.Suppliers.Get(ctx, sup.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSupplierStore_RejectsInvalidEmail(t *testing.T) {
	s := New(setupTestDB(t), nil)

	sup := newSupplier("Bad Email Trading")
	sup.EmailAddress = "orders-at-example.com"
	requireValidationField(t, s.Suppliers.Create(context.Background(), sup), "email_address")
}
