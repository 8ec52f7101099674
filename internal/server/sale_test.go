package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	saledomain "github.com/kasirhq/kasir/internal/sale/domain"
	"github.com/kasirhq/kasir/pkg/db/pagination"
	"github.com/kasirhq/kasir/pkg/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSaleService struct {
	createCalls int
	createErr   error
	lastCreate  saledomain.CreateSaleRequest

	analyticsCalls int
}

func (f *fakeSaleService) Create(ctx context.Context, req saledomain.CreateSaleRequest) (saledomain.Sale, error) {
	f.createCalls++
	f.lastCreate = req
	_ = ctx
	if f.createErr != nil {
		return saledomain.Sale{}, f.createErr
	}
	sale := saledomain.Sale{
		SaleID:     req.SaleID,
		TaxAmount:  req.TaxAmount,
		PaidAmount: req.PaidAmount,
	}
	for _, in := range req.Items {
		sale.AddItem(saledomain.SaleItem{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
		})
	}
	return sale, nil
}

func (f *fakeSaleService) List(ctx context.Context, req saledomain.ListSaleRequest) (saledomain.ListSaleResponse, error) {
	_ = ctx
	_ = req
	return saledomain.ListSaleResponse{}, nil
}

func (f *fakeSaleService) GetByID(ctx context.Context, req saledomain.GetSaleRequest) (saledomain.Sale, error) {
	_ = ctx
	_ = req
	return saledomain.Sale{}, saledomain.ErrNotFound
}

func (f *fakeSaleService) GetByLegacyID(ctx context.Context, legacyID int64) (saledomain.Sale, error) {
	_ = ctx
	_ = legacyID
	return saledomain.Sale{}, saledomain.ErrNotFound
}

func (f *fakeSaleService) Update(ctx context.Context, req saledomain.UpdateSaleRequest) (saledomain.Sale, error) {
	_ = ctx
	_ = req
	return saledomain.Sale{}, saledomain.ErrNotFound
}

func (f *fakeSaleService) Delete(ctx context.Context, req saledomain.GetSaleRequest) error {
	_ = ctx
	_ = req
	return saledomain.ErrNotFound
}

func (f *fakeSaleService) Search(ctx context.Context, req saledomain.SearchSaleRequest) (saledomain.ListSaleResponse, error) {
	_ = ctx
	return saledomain.ListSaleResponse{
		PageInfo: pagination.NewPageInfo(req.Pagination, 0),
	}, nil
}

func (f *fakeSaleService) Analytics(ctx context.Context, req saledomain.AnalyticsRequest) (saledomain.SalesAnalytics, error) {
	f.analyticsCalls++
	_ = ctx
	_ = req
	return saledomain.SalesAnalytics{
		TotalRevenue:      decimal.Zero,
		AverageSaleAmount: decimal.Zero,
	}, nil
}

func newTestServer(fake *fakeSaleService) *Server {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandlingMiddleware())

	s := &Server{engine: r, saleSvc: fake}
	s.registerAPIRoutes()
	return s
}

func TestCreateSaleHandler(t *testing.T) {
	fake := &fakeSaleService{}
	s := newTestServer(fake)

	body, err := json.Marshal(map[string]any{
		"sale_id":     "INV-001",
		"tax_amount":  "5.00",
		"paid_amount": "60.00",
		"sale_items": []map[string]any{
			{"product_id": 101, "quantity": 2, "unit_price": "25.00"},
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/sales", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 1, fake.createCalls)
	assert.Equal(t, "INV-001", fake.lastCreate.SaleID)

	var resp struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Data    saledomain.Sale `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "sale recorded", resp.Message)
	assert.True(t, resp.Data.TotalAmount.Equal(decimal.RequireFromString("55.00")))
}

func TestCreateSaleHandlerValidationFailure(t *testing.T) {
	fake := &fakeSaleService{
		createErr: validation.New("paid_amount", "insufficient_payment", "paid amount 40.00 is insufficient to cover the total 53.00"),
	}
	s := newTestServer(fake)

	req := httptest.NewRequest(http.MethodPost, "/api/sales", bytes.NewBufferString(`{"sale_id":"INV-002"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "validation_error", resp.Error.Type)
	require.Len(t, resp.Error.Errors, 1)
	assert.Equal(t, "insufficient_payment", resp.Error.Errors[0].Code)
}

func TestGetSaleHandlerNotFound(t *testing.T) {
	s := newTestServer(&fakeSaleService{})

	req := httptest.NewRequest(http.MethodGet, "/api/sales/12345", nil)
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Error.Type)
}

func TestGetSalesAnalyticsHandler(t *testing.T) {
	fake := &fakeSaleService{}
	s := newTestServer(fake)

	req := httptest.NewRequest(http.MethodGet, "/api/sales/analytics?start_date=2026-03-01&end_date=2026-03-31", nil)
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, fake.analyticsCalls)

	var resp struct {
		Success bool                      `json:"success"`
		Data    saledomain.SalesAnalytics `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Zero(t, resp.Data.TotalSales)
}

func TestGetSalesAnalyticsHandlerInvalidDate(t *testing.T) {
	s := newTestServer(&fakeSaleService{})

	req := httptest.NewRequest(http.MethodGet, "/api/sales/analytics?start_date=not-a-date", nil)
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}
