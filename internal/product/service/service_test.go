package service_test

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/kasirhq/kasir/internal/product/domain"
	"github.com/kasirhq/kasir/internal/product/repository"
	"github.com/kasirhq/kasir/internal/product/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// The redis client is left nil so every read and invalidation takes the
// store path.
func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Product{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return service.New(service.Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func money(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCreateProduct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateProductRequest{
		Name:      "  Kopi Bubuk 250g  ",
		Barcode:   "8991234567890",
		SalePrice: money("35.00"),
		Category:  "beverages",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Kopi Bubuk 250g", created.Name)

	got, err := svc.GetByID(ctx, domain.GetProductRequest{ID: created.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, created.Barcode, got.Barcode)
	assert.True(t, got.SalePrice.Equal(money("35.00")))
}

func TestCreateProductValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateProductRequest{Barcode: "899"})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Create(ctx, domain.CreateProductRequest{Name: "Kopi"})
	assert.ErrorIs(t, err, domain.ErrInvalidBarcode)

	_, err = svc.Create(ctx, domain.CreateProductRequest{
		Name:      "Kopi",
		Barcode:   "899",
		SalePrice: money("-1.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestUpdateProduct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateProductRequest{
		Name:      "Teh Celup",
		Barcode:   "8990001112223",
		SalePrice: money("12.00"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, domain.UpdateProductRequest{
		ID: created.ID.String(),
		CreateProductRequest: domain.CreateProductRequest{
			Name:      "Teh Celup Premium",
			Barcode:   "8990001112223",
			SalePrice: money("15.00"),
			Category:  "beverages",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Teh Celup Premium", updated.Name)
	assert.True(t, updated.SalePrice.Equal(money("15.00")))

	got, err := svc.GetByID(ctx, domain.GetProductRequest{ID: created.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, "Teh Celup Premium", got.Name)

	_, err = svc.Update(ctx, domain.UpdateProductRequest{
		ID: "99999",
		CreateProductRequest: domain.CreateProductRequest{
			Name:      "Nobody",
			Barcode:   "000",
			SalePrice: money("1.00"),
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateProductRequest{
		Name:      "Gula Pasir 1kg",
		Barcode:   "8993334445556",
		SalePrice: money("16.50"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, domain.GetProductRequest{ID: created.ID.String()}))

	_, err = svc.GetByID(ctx, domain.GetProductRequest{ID: created.ID.String()})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, domain.GetProductRequest{ID: created.ID.String()}), domain.ErrNotFound)
}

func TestGetProductByLegacyID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	legacy := int64(12)
	_, err := svc.Create(ctx, domain.CreateProductRequest{
		Name:      "Beras Premium 5kg",
		Barcode:   "8996667778889",
		SalePrice: money("78.00"),
		LegacyID:  &legacy,
	})
	require.NoError(t, err)

	got, err := svc.GetByLegacyID(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, "Beras Premium 5kg", got.Name)

	_, err = svc.GetByLegacyID(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListProductsByCategoryAndSupplier(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	supplier := int64(7)
	_, err := svc.Create(ctx, domain.CreateProductRequest{
		Name:       "Kopi Bubuk",
		Barcode:    "899111",
		SalePrice:  money("35.00"),
		Category:   "beverages",
		SupplierID: &supplier,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateProductRequest{
		Name:      "Sabun Mandi",
		Barcode:   "899222",
		SalePrice: money("5.00"),
		Category:  "toiletries",
	})
	require.NoError(t, err)

	resp, err := svc.List(ctx, domain.ListProductRequest{
		ListProductFilter: domain.ListProductFilter{Category: "beverages"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Kopi Bubuk", resp.Products[0].Name)

	resp, err = svc.List(ctx, domain.ListProductRequest{
		ListProductFilter: domain.ListProductFilter{SupplierID: &supplier},
	})
	require.NoError(t, err)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Kopi Bubuk", resp.Products[0].Name)
}

func TestSearchProductsCaseInsensitive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateProductRequest{
		Name:      "Kopi Bubuk",
		Barcode:   "899111",
		SalePrice: money("35.00"),
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateProductRequest{
		Name:      "Sabun Mandi",
		Barcode:   "899222",
		SalePrice: money("5.00"),
	})
	require.NoError(t, err)

	resp, err := svc.Search(ctx, domain.SearchProductRequest{Query: "KOPI"})
	require.NoError(t, err)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Kopi Bubuk", resp.Products[0].Name)
}
