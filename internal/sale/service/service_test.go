package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/kasirhq/kasir/internal/sale/domain"
	"github.com/kasirhq/kasir/internal/sale/repository"
	"github.com/kasirhq/kasir/internal/sale/service"
	"github.com/kasirhq/kasir/pkg/db/pagination"
	"github.com/kasirhq/kasir/pkg/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Sale{}, &domain.SaleItem{}))

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

func createReq(saleID string, paid string) domain.CreateSaleRequest {
	return domain.CreateSaleRequest{
		SaleID:         saleID,
		TaxAmount:      money("5.00"),
		DiscountAmount: money("2.00"),
		PaidAmount:     money(paid),
		PaymentMethod:  "cash",
		Items: []domain.SaleItemInput{
			{ProductID: 101, ProductName: "Beans", Quantity: 2, UnitPrice: money("25.00")},
		},
	}
}

func TestCreateSaleDerivesTotals(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sale, err := svc.Create(ctx, createReq("INV-001", "60.00"))
	require.NoError(t, err)

	assert.NotZero(t, sale.ID)
	assert.True(t, sale.SubTotal.Equal(money("50.00")))
	assert.True(t, sale.TotalAmount.Equal(money("53.00")))
	assert.True(t, sale.ChangeAmount.Equal(money("7.00")))

	got, err := svc.GetByID(ctx, domain.GetSaleRequest{ID: sale.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, "INV-001", got.SaleID)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].SubTotal.Equal(money("50.00")))
}

func TestCreateSaleInsufficientPayment(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), createReq("INV-002", "40.00"))
	require.Error(t, err)

	var verrs *validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, err.Error(), "insufficient")
}

func TestCreateSaleDuplicateSaleID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, createReq("INV-DUP", "60.00"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, createReq("INV-DUP", "60.00"))
	require.Error(t, err)

	var verrs *validation.Errors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs.Violations, 1)
	assert.Equal(t, "sale_id", verrs.Violations[0].Field)
	assert.Equal(t, "duplicate", verrs.Violations[0].Code)

	other, err := svc.Create(ctx, createReq("INV-OTHER", "60.00"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, domain.UpdateSaleRequest{
		ID:                other.ID.String(),
		CreateSaleRequest: createReq("INV-DUP", "60.00"),
	})
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "duplicate", verrs.Violations[0].Code)
}

func TestCreateSaleWithoutItems(t *testing.T) {
	svc := newTestService(t)

	req := createReq("INV-003", "60.00")
	req.Items = nil

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	var verrs *validation.Errors
	require.True(t, errors.As(err, &verrs))
}

func TestGetSaleNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetByID(context.Background(), domain.GetSaleRequest{ID: "12345"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetByID(context.Background(), domain.GetSaleRequest{ID: "not-a-number"})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestGetSaleByLegacyID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	legacy := int64(77)
	req := createReq("INV-004", "60.00")
	req.LegacyID = &legacy

	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	got, err := svc.GetByLegacyID(ctx, 77)
	require.NoError(t, err)
	assert.Equal(t, "INV-004", got.SaleID)

	_, err = svc.GetByLegacyID(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateSaleReplacesItems(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sale, err := svc.Create(ctx, createReq("INV-005", "60.00"))
	require.NoError(t, err)

	req := domain.UpdateSaleRequest{
		ID: sale.ID.String(),
		CreateSaleRequest: domain.CreateSaleRequest{
			SaleID:     "INV-005",
			PaidAmount: money("30.00"),
			Items: []domain.SaleItemInput{
				{ProductID: 201, Quantity: 3, UnitPrice: money("10.00")},
			},
		},
	}

	updated, err := svc.Update(ctx, req)
	require.NoError(t, err)
	assert.True(t, updated.TotalAmount.Equal(money("30.00")))
	assert.True(t, updated.ChangeAmount.IsZero())

	got, err := svc.GetByID(ctx, domain.GetSaleRequest{ID: sale.ID.String()})
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(201), got.Items[0].ProductID)
	assert.Equal(t, 3, got.Items[0].Quantity)
}

func TestDeleteSale(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sale, err := svc.Create(ctx, createReq("INV-006", "60.00"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, domain.GetSaleRequest{ID: sale.ID.String()}))

	_, err = svc.GetByID(ctx, domain.GetSaleRequest{ID: sale.ID.String()})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Delete(ctx, domain.GetSaleRequest{ID: sale.ID.String()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListSalesPagination(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := svc.Create(ctx, createReq(fmt.Sprintf("INV-%03d", i), "60.00"))
		require.NoError(t, err)
	}

	resp, err := svc.List(ctx, domain.ListSaleRequest{
		Pagination: pagination.Pagination{Page: 2, Limit: 10},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(25), resp.TotalCount)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Len(t, resp.Sales, 10)
	assert.True(t, resp.HasNext())
}

func TestListSalesDateAndCustomerFilter(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	day := func(d int) *time.Time {
		ts := time.Date(2026, time.March, d, 12, 0, 0, 0, time.UTC)
		return &ts
	}
	customer := int64(42)

	inside := createReq("INV-IN", "60.00")
	inside.SaleDate = day(10)
	inside.CustomerID = &customer
	_, err := svc.Create(ctx, inside)
	require.NoError(t, err)

	outside := createReq("INV-OUT", "60.00")
	outside.SaleDate = day(25)
	_, err = svc.Create(ctx, outside)
	require.NoError(t, err)

	resp, err := svc.List(ctx, domain.ListSaleRequest{
		ListSaleFilter: domain.ListSaleFilter{StartDate: day(1), EndDate: day(15)},
	})
	require.NoError(t, err)
	require.Len(t, resp.Sales, 1)
	assert.Equal(t, "INV-IN", resp.Sales[0].SaleID)

	resp, err = svc.List(ctx, domain.ListSaleRequest{
		ListSaleFilter: domain.ListSaleFilter{CustomerID: &customer},
	})
	require.NoError(t, err)
	require.Len(t, resp.Sales, 1)
	assert.Equal(t, "INV-IN", resp.Sales[0].SaleID)
}

func TestSearchSales(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, createReq("INV-ALPHA", "60.00"))
	require.NoError(t, err)

	card := createReq("INV-BETA", "60.00")
	card.PaymentMethod = "Card"
	_, err = svc.Create(ctx, card)
	require.NoError(t, err)

	resp, err := svc.Search(ctx, domain.SearchSaleRequest{Query: "alpha"})
	require.NoError(t, err)
	require.Len(t, resp.Sales, 1)
	assert.Equal(t, "INV-ALPHA", resp.Sales[0].SaleID)

	resp, err = svc.Search(ctx, domain.SearchSaleRequest{Query: "CARD"})
	require.NoError(t, err)
	require.Len(t, resp.Sales, 1)
	assert.Equal(t, "INV-BETA", resp.Sales[0].SaleID)
}

func TestAnalytics(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	day := func(d int) *time.Time {
		ts := time.Date(2026, time.March, d, 12, 0, 0, 0, time.UTC)
		return &ts
	}

	first := createReq("INV-A", "60.00") // total 53.00, one line
	first.SaleDate = day(5)
	_, err := svc.Create(ctx, first)
	require.NoError(t, err)

	second := domain.CreateSaleRequest{
		SaleID:     "INV-B",
		PaidAmount: money("47.00"),
		SaleDate:   day(8),
		Items: []domain.SaleItemInput{
			{ProductID: 102, Quantity: 1, UnitPrice: money("27.00")},
			{ProductID: 103, Quantity: 4, UnitPrice: money("5.00")},
		},
	}
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	got, err := svc.Analytics(ctx, domain.AnalyticsRequest{StartDate: day(1), EndDate: day(10)})
	require.NoError(t, err)

	assert.Equal(t, int64(2), got.TotalSales)
	assert.True(t, got.TotalRevenue.Equal(money("100.00")), "revenue %s", got.TotalRevenue)
	assert.Equal(t, int64(3), got.TotalItemsSold)
	assert.True(t, got.AverageSaleAmount.Equal(money("50.00")))

	// one-sided window keeps the same zero-drift contract
	single, err := svc.Analytics(ctx, domain.AnalyticsRequest{StartDate: day(6)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), single.TotalSales)
	assert.Equal(t, int64(2), single.TotalItemsSold)
}

func TestAnalyticsEmptyWindow(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, createReq("INV-A", "60.00"))
	require.NoError(t, err)

	future := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	got, err := svc.Analytics(ctx, domain.AnalyticsRequest{StartDate: &future})
	require.NoError(t, err)

	assert.Zero(t, got.TotalSales)
	assert.True(t, got.TotalRevenue.IsZero())
	assert.Zero(t, got.TotalItemsSold)
	assert.True(t, got.AverageSaleAmount.IsZero())
}
