package service_test

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/kasirhq/kasir/internal/supplier/domain"
	"github.com/kasirhq/kasir/internal/supplier/repository"
	"github.com/kasirhq/kasir/internal/supplier/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Supplier{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return service.New(service.Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func TestCreateSupplier(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateSupplierRequest{
		Name:          "  Kopi Nusantara  ",
		ContactPerson: "Rina Wulandari",
		Email:         "rina@kopinusantara.id",
		Phone:         "+62 21 555 0101",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Kopi Nusantara", created.Name)

	got, err := svc.GetByID(ctx, domain.GetSupplierRequest{ID: created.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, created.ContactPerson, got.ContactPerson)
}

func TestCreateSupplierValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateSupplierRequest{ContactPerson: "Rina"})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Create(ctx, domain.CreateSupplierRequest{Name: "Kopi Nusantara"})
	assert.ErrorIs(t, err, domain.ErrInvalidContact)

	_, err = svc.Create(ctx, domain.CreateSupplierRequest{
		Name:          "Kopi Nusantara",
		ContactPerson: "Rina",
		Phone:         "call-me",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPhone)
}

func TestUpdateSupplier(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateSupplierRequest{
		Name:          "Teh Sejahtera",
		ContactPerson: "Agus",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, domain.UpdateSupplierRequest{
		ID: created.ID.String(),
		CreateSupplierRequest: domain.CreateSupplierRequest{
			Name:          "Teh Sejahtera Abadi",
			ContactPerson: "Agus Salim",
			Address:       "Jl. Kenanga 12",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Teh Sejahtera Abadi", updated.Name)
	assert.Equal(t, "Jl. Kenanga 12", updated.Address)

	_, err = svc.Update(ctx, domain.UpdateSupplierRequest{
		ID: "99999",
		CreateSupplierRequest: domain.CreateSupplierRequest{
			Name:          "Nobody",
			ContactPerson: "Nobody",
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteSupplier(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateSupplierRequest{
		Name:          "Gula Manis",
		ContactPerson: "Sari",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, domain.GetSupplierRequest{ID: created.ID.String()}))
	assert.ErrorIs(t, svc.Delete(ctx, domain.GetSupplierRequest{ID: created.ID.String()}), domain.ErrNotFound)
}

func TestGetSupplierByLegacyID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	legacy := int64(31)
	_, err := svc.Create(ctx, domain.CreateSupplierRequest{
		Name:          "Beras Makmur",
		ContactPerson: "Hendra",
		LegacyID:      &legacy,
	})
	require.NoError(t, err)

	got, err := svc.GetByLegacyID(ctx, 31)
	require.NoError(t, err)
	assert.Equal(t, "Beras Makmur", got.Name)

	_, err = svc.GetByLegacyID(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearchSuppliersCaseInsensitive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateSupplierRequest{
		Name:          "Kopi Nusantara",
		ContactPerson: "Rina Wulandari",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateSupplierRequest{
		Name:          "Teh Sejahtera",
		ContactPerson: "Agus Salim",
	})
	require.NoError(t, err)

	resp, err := svc.Search(ctx, domain.SearchSupplierRequest{Query: "WULANDARI"})
	require.NoError(t, err)
	require.Len(t, resp.Suppliers, 1)
	assert.Equal(t, "Kopi Nusantara", resp.Suppliers[0].Name)

	resp, err = svc.Search(ctx, domain.SearchSupplierRequest{Query: "sejahtera"})
	require.NoError(t, err)
	assert.Len(t, resp.Suppliers, 1)
}
