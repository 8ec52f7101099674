package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Quantity is a legacy stock-size record keyed to a product. The product
// reference is stored under the single canonical column product_id; historical
// key spellings are normalized at the request boundary (see ProductRef).
type Quantity struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	LegacyID  *int64       `gorm:"index" json:"legacy_id,omitempty"`
	ProductID int64        `gorm:"not null;index" json:"product_id"`
	Size      int          `gorm:"not null" json:"size"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Quantity) TableName() string { return "quantities" }
