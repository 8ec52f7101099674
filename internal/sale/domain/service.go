package domain

import (
	"context"
	"errors"
	"time"

	"github.com/kasirhq/kasir/pkg/db/pagination"
	"github.com/shopspring/decimal"
)

// SaleItemInput is one product line of an incoming sale payload. SubTotal is
// an optional override; when nil the line total is derived from quantity and
// unit price.
type SaleItemInput struct {
	ProductID   int64            `json:"product_id"`
	ProductName string           `json:"product_name"`
	Category    string           `json:"category"`
	Quantity    int              `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	SubTotal    *decimal.Decimal `json:"sub_total"`
}

// CreateSaleRequest carries the caller-supplied fields of a sale. Aggregates
// (sub total, total, change) are intentionally absent: the service derives
// them and ignores anything the caller might claim.
type CreateSaleRequest struct {
	SaleID          string          `json:"sale_id"`
	LegacyID        *int64          `json:"legacy_id"`
	CustomerID      *int64          `json:"customer_id"`
	CustomerContact string          `json:"customer_contact"`
	Items           []SaleItemInput `json:"sale_items"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	PaymentMethod   string          `json:"payment_method"`
	SaleDate        *time.Time      `json:"sale_date"`
	Metadata        map[string]any  `json:"metadata"`
}

// UpdateSaleRequest replaces the whole sale, items included, and re-runs the
// full derivation and validation pipeline.
type UpdateSaleRequest struct {
	ID string
	CreateSaleRequest
}

// ListSaleFilter narrows a sale listing. Date bounds are inclusive on both
// ends.
type ListSaleFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CustomerID *int64
}

type ListSaleRequest struct {
	pagination.Pagination
	ListSaleFilter
}

type SearchSaleRequest struct {
	Query string
	pagination.Pagination
}

type ListSaleResponse struct {
	pagination.PageInfo
	Sales []Sale `json:"sales"`
}

type GetSaleRequest struct {
	ID string
}

// AnalyticsRequest bounds the aggregation window; nil bounds leave that side
// open.
type AnalyticsRequest struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// SalesAnalytics summarizes the matching sales. All four fields are zero when
// nothing matches.
type SalesAnalytics struct {
	TotalSales        int64           `json:"total_sales"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalItemsSold    int64           `json:"total_items_sold"`
	AverageSaleAmount decimal.Decimal `json:"average_sale_amount"`
}

type Service interface {
	Create(context.Context, CreateSaleRequest) (Sale, error)
	List(context.Context, ListSaleRequest) (ListSaleResponse, error)
	GetByID(context.Context, GetSaleRequest) (Sale, error)
	GetByLegacyID(context.Context, int64) (Sale, error)
	Update(context.Context, UpdateSaleRequest) (Sale, error)
	Delete(context.Context, GetSaleRequest) error
	Search(context.Context, SearchSaleRequest) (ListSaleResponse, error)
	Analytics(context.Context, AnalyticsRequest) (SalesAnalytics, error)
}

var (
	ErrInvalidID = errors.New("invalid_id")
	ErrNotFound  = errors.New("sale_not_found")
)

// SortableColumns is the closed set of columns a sale list may sort on.
var SortableColumns = []string{"created_at", "updated_at", "sale_date", "total_amount", "paid_amount", "sale_id"}

// SearchColumns are the text columns matched by free-text search.
var SearchColumns = []string{"sale_id", "customer_contact", "payment_method"}
