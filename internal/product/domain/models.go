package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Product belongs to the legacy catalog subsystem. Monetary values are
// 2-decimal currency amounts.
type Product struct {
	ID         snowflake.ID    `gorm:"primaryKey" json:"id"`
	LegacyID   *int64          `gorm:"index" json:"legacy_id,omitempty"`
	Name       string          `gorm:"not null" json:"name"`
	Barcode    string          `gorm:"not null;index" json:"barcode"`
	SalePrice  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"sale_price"`
	Discount   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"discount"`
	Tax        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"tax"`
	Category   string          `json:"category,omitempty"`
	ExpiryDate *time.Time      `json:"expiry_date,omitempty"`
	SupplierID *int64          `gorm:"index" json:"supplier_id,omitempty"`
	CreatedAt  time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Product) TableName() string { return "products" }
