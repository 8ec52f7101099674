package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Supplier is a vendor contact record.
type Supplier struct {
	ID            snowflake.ID `gorm:"primaryKey" json:"id"`
	LegacyID      *int64       `gorm:"index" json:"legacy_id,omitempty"`
	Name          string       `gorm:"not null" json:"name"`
	ContactPerson string       `gorm:"not null" json:"contact_person"`
	Email         string       `json:"email,omitempty"`
	Phone         string       `json:"phone,omitempty"`
	Address       string       `json:"address,omitempty"`
	CreatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Supplier) TableName() string { return "suppliers" }
