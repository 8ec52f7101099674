package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/kasirhq/kasir/internal/product/domain"
	pkgdb "github.com/kasirhq/kasir/pkg/db"
	"github.com/kasirhq/kasir/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Create(product).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Product, error) {
	var product domain.Product
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repo) FindByLegacyID(ctx context.Context, db *gorm.DB, legacyID int64) (*domain.Product, error) {
	var product domain.Product
	err := db.WithContext(ctx).
		Where("legacy_id = ?", legacyID).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListProductFilter, page pagination.Pagination) ([]domain.Product, int64, error) {
	base := func() *gorm.DB {
		stmt := db.WithContext(ctx).Model(&domain.Product{})
		if filter.Category != "" {
			stmt = stmt.Where("category = ?", filter.Category)
		}
		if filter.SupplierID != nil {
			stmt = stmt.Where("supplier_id = ?", *filter.SupplierID)
		}
		return stmt
	}
	return r.paginate(base, page)
}

func (r *repo) Search(ctx context.Context, db *gorm.DB, query string, page pagination.Pagination) ([]domain.Product, int64, error) {
	cond, args := pkgdb.CaseInsensitiveLike(domain.SearchColumns, query)
	base := func() *gorm.DB {
		return db.WithContext(ctx).Model(&domain.Product{}).Where(cond, args...)
	}
	return r.paginate(base, page)
}

func (r *repo) paginate(base func() *gorm.DB, page pagination.Pagination) ([]domain.Product, int64, error) {
	order, err := page.OrderClause(domain.SortableColumns, "created_at")
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []domain.Product
	if err := page.Apply(base().Order(order)).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, product *domain.Product) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"legacy_id":   product.LegacyID,
			"name":        product.Name,
			"barcode":     product.Barcode,
			"sale_price":  product.SalePrice,
			"discount":    product.Discount,
			"tax":         product.Tax,
			"category":    product.Category,
			"expiry_date": product.ExpiryDate,
			"supplier_id": product.SupplierID,
			"updated_at":  product.UpdatedAt,
		})
	return res.RowsAffected, res.Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error) {
	res := db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Product{})
	return res.RowsAffected, res.Error
}
