// Package domain models the sale transaction: a settled payment over one or
// more product lines, with server-derived monetary totals.
package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Sale is a completed transaction. Aggregate monetary fields are always
// recomputed server-side via CalculateTotals; caller-supplied aggregates are
// never trusted.
type Sale struct {
	ID              snowflake.ID      `gorm:"primaryKey" json:"id"`
	LegacyID        *int64            `gorm:"index" json:"legacy_id,omitempty"`
	SaleID          string            `gorm:"uniqueIndex;not null" json:"sale_id"`
	CustomerID      *int64            `gorm:"index" json:"customer_id,omitempty"`
	CustomerContact string            `json:"customer_contact,omitempty"`
	Items           []SaleItem        `gorm:"foreignKey:SaleRecordID" json:"sale_items"`
	SubTotal        decimal.Decimal   `gorm:"type:decimal(12,2);not null" json:"sub_total"`
	TaxAmount       decimal.Decimal   `gorm:"type:decimal(12,2);not null" json:"tax_amount"`
	DiscountAmount  decimal.Decimal   `gorm:"type:decimal(12,2);not null" json:"discount_amount"`
	TotalAmount     decimal.Decimal   `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	PaidAmount      decimal.Decimal   `gorm:"type:decimal(12,2);not null" json:"paid_amount"`
	ChangeAmount    decimal.Decimal   `gorm:"type:decimal(12,2);not null" json:"change_amount"`
	PaymentMethod   string            `json:"payment_method,omitempty"`
	SaleDate        time.Time         `gorm:"not null;index" json:"sale_date"`
	Metadata        datatypes.JSONMap `json:"metadata,omitempty"`
	CreatedAt       time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Sale) TableName() string { return "sales" }

// NewSale copies the recognized request fields onto a fresh sale. Aggregates
// stay zero; CalculateTotals derives them before validation and persistence.
func NewSale(req CreateSaleRequest) Sale {
	now := time.Now().UTC()

	saleDate := now
	if req.SaleDate != nil {
		saleDate = req.SaleDate.UTC()
	}

	items := make([]SaleItem, 0, len(req.Items))
	for _, in := range req.Items {
		item := SaleItem{
			ProductID:   in.ProductID,
			ProductName: strings.TrimSpace(in.ProductName),
			Category:    strings.TrimSpace(in.Category),
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			CreatedAt:   now,
		}
		if in.SubTotal != nil {
			item.SubTotal = *in.SubTotal
		}
		items = append(items, item)
	}

	return Sale{
		LegacyID:        req.LegacyID,
		SaleID:          strings.TrimSpace(req.SaleID),
		CustomerID:      req.CustomerID,
		CustomerContact: strings.TrimSpace(req.CustomerContact),
		Items:           items,
		TaxAmount:       req.TaxAmount,
		DiscountAmount:  req.DiscountAmount,
		PaidAmount:      req.PaidAmount,
		PaymentMethod:   strings.TrimSpace(req.PaymentMethod),
		SaleDate:        saleDate,
		Metadata:        datatypes.JSONMap(req.Metadata),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// SaleItem is one product line within a sale, owned by value.
type SaleItem struct {
	ID           snowflake.ID    `gorm:"primaryKey" json:"id"`
	SaleRecordID snowflake.ID    `gorm:"index;not null" json:"-"`
	ProductID    int64           `gorm:"not null" json:"product_id"`
	ProductName  string          `json:"product_name,omitempty"`
	Category     string          `json:"category,omitempty"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	SubTotal     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"sub_total"`
	CreatedAt    time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (SaleItem) TableName() string { return "sale_items" }

// LineTotal derives a line subtotal from quantity and unit price.
func (i SaleItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CalculateTotals rederives every aggregate monetary field. Line subtotals
// supplied by the caller are kept as an override hint; absent ones fall back
// to quantity × unit price. Must run after every mutation of items, tax or
// discount, and before Validate or persistence.
func (s *Sale) CalculateTotals() {
	subTotal := decimal.Zero
	for i := range s.Items {
		item := &s.Items[i]
		if item.SubTotal.IsZero() {
			item.SubTotal = item.LineTotal()
		}
		subTotal = subTotal.Add(item.SubTotal)
	}
	s.SubTotal = subTotal
	s.TotalAmount = subTotal.Add(s.TaxAmount).Sub(s.DiscountAmount)
	s.ChangeAmount = s.PaidAmount.Sub(s.TotalAmount)
}

// AddItem appends a product line, deriving its subtotal, and recalculates the
// sale totals.
func (s *Sale) AddItem(item SaleItem) {
	if item.SubTotal.IsZero() {
		item.SubTotal = item.LineTotal()
	}
	s.Items = append(s.Items, item)
	s.CalculateTotals()
}
