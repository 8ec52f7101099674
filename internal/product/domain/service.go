package domain

import (
	"context"
	"errors"
	"time"

	"github.com/kasirhq/kasir/pkg/db/pagination"
	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name       string          `json:"name"`
	Barcode    string          `json:"barcode"`
	SalePrice  decimal.Decimal `json:"sale_price"`
	Discount   decimal.Decimal `json:"discount"`
	Tax        decimal.Decimal `json:"tax"`
	Category   string          `json:"category"`
	ExpiryDate *time.Time      `json:"expiry_date"`
	SupplierID *int64          `json:"supplier_id"`
	LegacyID   *int64          `json:"legacy_id"`
}

// UpdateProductRequest replaces the whole record and re-validates the full
// payload.
type UpdateProductRequest struct {
	ID string
	CreateProductRequest
}

type ListProductFilter struct {
	Category   string
	SupplierID *int64
}

type ListProductRequest struct {
	pagination.Pagination
	ListProductFilter
}

type SearchProductRequest struct {
	Query string
	pagination.Pagination
}

type ListProductResponse struct {
	pagination.PageInfo
	Products []Product `json:"products"`
}

type GetProductRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateProductRequest) (Product, error)
	List(context.Context, ListProductRequest) (ListProductResponse, error)
	GetByID(context.Context, GetProductRequest) (Product, error)
	GetByLegacyID(context.Context, int64) (Product, error)
	Update(context.Context, UpdateProductRequest) (Product, error)
	Delete(context.Context, GetProductRequest) error
	Search(context.Context, SearchProductRequest) (ListProductResponse, error)
}

var (
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidBarcode = errors.New("invalid_barcode")
	ErrInvalidPrice   = errors.New("invalid_sale_price")
	ErrInvalidID      = errors.New("invalid_id")
	ErrNotFound       = errors.New("product_not_found")
)

// SortableColumns is the closed set of columns a product list may sort on.
var SortableColumns = []string{"created_at", "updated_at", "name", "sale_price", "category"}

// SearchColumns is the fixed text field set searched by free-text queries.
var SearchColumns = []string{"name", "barcode", "category"}
