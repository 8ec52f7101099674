package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/kasirhq/kasir/internal/sale/domain"
	pkgdb "github.com/kasirhq/kasir/pkg/db"
	"github.com/kasirhq/kasir/pkg/db/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, sale *domain.Sale) error {
	// items ride along through the association
	return db.WithContext(ctx).Create(sale).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Sale, error) {
	var sale domain.Sale
	err := db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&sale).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *repo) FindByLegacyID(ctx context.Context, db *gorm.DB, legacyID int64) (*domain.Sale, error) {
	var sale domain.Sale
	err := db.WithContext(ctx).
		Preload("Items").
		Where("legacy_id = ?", legacyID).
		First(&sale).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListSaleFilter, page pagination.Pagination) ([]domain.Sale, int64, error) {
	base := func() *gorm.DB {
		stmt := db.WithContext(ctx).Model(&domain.Sale{})
		if filter.StartDate != nil {
			stmt = stmt.Where("sale_date >= ?", *filter.StartDate)
		}
		if filter.EndDate != nil {
			stmt = stmt.Where("sale_date <= ?", *filter.EndDate)
		}
		if filter.CustomerID != nil {
			stmt = stmt.Where("customer_id = ?", *filter.CustomerID)
		}
		return stmt
	}
	return r.paginate(base, page)
}

func (r *repo) Search(ctx context.Context, db *gorm.DB, query string, page pagination.Pagination) ([]domain.Sale, int64, error) {
	cond, args := pkgdb.CaseInsensitiveLike(domain.SearchColumns, query)
	base := func() *gorm.DB {
		return db.WithContext(ctx).Model(&domain.Sale{}).Where(cond, args...)
	}
	return r.paginate(base, page)
}

// paginate counts and fetches off the same filter predicate so total_count
// cannot drift from the returned rows.
func (r *repo) paginate(base func() *gorm.DB, page pagination.Pagination) ([]domain.Sale, int64, error) {
	order, err := page.OrderClause(domain.SortableColumns, "created_at")
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sales []domain.Sale
	if err := page.Apply(base().Preload("Items").Order(order)).Find(&sales).Error; err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

// Replace rewrites the sale row and swaps its item set atomically.
func (r *repo) Replace(ctx context.Context, db *gorm.DB, sale *domain.Sale) (int64, error) {
	var affected int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Sale{}).
			Where("id = ?", sale.ID).
			Updates(map[string]interface{}{
				"legacy_id":        sale.LegacyID,
				"sale_id":          sale.SaleID,
				"customer_id":      sale.CustomerID,
				"customer_contact": sale.CustomerContact,
				"sub_total":        sale.SubTotal,
				"tax_amount":       sale.TaxAmount,
				"discount_amount":  sale.DiscountAmount,
				"total_amount":     sale.TotalAmount,
				"paid_amount":      sale.PaidAmount,
				"change_amount":    sale.ChangeAmount,
				"payment_method":   sale.PaymentMethod,
				"sale_date":        sale.SaleDate,
				"metadata":         sale.Metadata,
				"updated_at":       sale.UpdatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		if affected == 0 {
			return nil
		}

		if err := tx.Where("sale_record_id = ?", sale.ID).Delete(&domain.SaleItem{}).Error; err != nil {
			return err
		}
		if len(sale.Items) > 0 {
			if err := tx.Create(&sale.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return affected, err
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error) {
	var affected int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sale_record_id = ?", id).Delete(&domain.SaleItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&domain.Sale{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

// Aggregate computes the analytics summary over the bounded window. An empty
// window reports zeros rather than SQL NULLs.
func (r *repo) Aggregate(ctx context.Context, db *gorm.DB, req domain.AnalyticsRequest) (domain.SalesAnalytics, error) {
	window := func(stmt *gorm.DB, col string) *gorm.DB {
		if req.StartDate != nil {
			stmt = stmt.Where(col+" >= ?", *req.StartDate)
		}
		if req.EndDate != nil {
			stmt = stmt.Where(col+" <= ?", *req.EndDate)
		}
		return stmt
	}

	var row struct {
		TotalSales   int64
		TotalRevenue decimal.Decimal
	}
	err := window(db.WithContext(ctx).Model(&domain.Sale{}), "sale_date").
		Select("COUNT(*) AS total_sales, COALESCE(SUM(total_amount), 0) AS total_revenue").
		Scan(&row).Error
	if err != nil {
		return domain.SalesAnalytics{}, err
	}

	if row.TotalSales == 0 {
		return domain.SalesAnalytics{
			TotalRevenue:      decimal.Zero,
			AverageSaleAmount: decimal.Zero,
		}, nil
	}

	// items sold counts the line items of the matching sales
	var itemsSold int64
	err = window(
		db.WithContext(ctx).Model(&domain.SaleItem{}).
			Joins("JOIN sales ON sales.id = sale_items.sale_record_id"),
		"sales.sale_date",
	).Count(&itemsSold).Error
	if err != nil {
		return domain.SalesAnalytics{}, err
	}

	return domain.SalesAnalytics{
		TotalSales:        row.TotalSales,
		TotalRevenue:      row.TotalRevenue,
		TotalItemsSold:    itemsSold,
		AverageSaleAmount: row.TotalRevenue.Div(decimal.NewFromInt(row.TotalSales)).Round(2),
	}, nil
}
