package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/kasirhq/kasir/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, sale *Sale) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Sale, error)
	FindByLegacyID(ctx context.Context, db *gorm.DB, legacyID int64) (*Sale, error)
	List(ctx context.Context, db *gorm.DB, filter ListSaleFilter, page pagination.Pagination) ([]Sale, int64, error)
	Search(ctx context.Context, db *gorm.DB, query string, page pagination.Pagination) ([]Sale, int64, error)
	// Replace overwrites the sale row and swaps its items for the given set.
	Replace(ctx context.Context, db *gorm.DB, sale *Sale) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error)
	Aggregate(ctx context.Context, db *gorm.DB, req AnalyticsRequest) (SalesAnalytics, error)
}
