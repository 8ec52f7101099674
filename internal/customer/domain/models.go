package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Customer is a contact record. LegacyID carries the numeric identifier from
// the prior relational system and is kept for cross-referencing.
type Customer struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	LegacyID  *int64       `gorm:"index" json:"legacy_id,omitempty"`
	Name      string       `gorm:"not null" json:"name"`
	Email     string       `json:"email,omitempty"`
	Phone     string       `json:"phone,omitempty"`
	Address   string       `json:"address,omitempty"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }
