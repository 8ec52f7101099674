package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/kasirhq/kasir/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, supplier *Supplier) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Supplier, error)
	FindByLegacyID(ctx context.Context, db *gorm.DB, legacyID int64) (*Supplier, error)
	List(ctx context.Context, db *gorm.DB, page pagination.Pagination) ([]Supplier, int64, error)
	Search(ctx context.Context, db *gorm.DB, query string, page pagination.Pagination) ([]Supplier, int64, error)
	Update(ctx context.Context, db *gorm.DB, supplier *Supplier) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error)
}
