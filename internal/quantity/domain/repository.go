package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/kasirhq/kasir/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, quantity *Quantity) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Quantity, error)
	FindByLegacyID(ctx context.Context, db *gorm.DB, legacyID int64) (*Quantity, error)
	FindByProductID(ctx context.Context, db *gorm.DB, productID int64) (*Quantity, error)
	List(ctx context.Context, db *gorm.DB, filter ListQuantityFilter, page pagination.Pagination) ([]Quantity, int64, error)
	Update(ctx context.Context, db *gorm.DB, quantity *Quantity) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error)
}
