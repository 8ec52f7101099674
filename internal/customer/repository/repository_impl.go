package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/kasirhq/kasir/internal/customer/domain"
	pkgdb "github.com/kasirhq/kasir/pkg/db"
	"github.com/kasirhq/kasir/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	return db.WithContext(ctx).Create(customer).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Customer, error) {
	var customer domain.Customer
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *repo) FindByLegacyID(ctx context.Context, db *gorm.DB, legacyID int64) (*domain.Customer, error) {
	var customer domain.Customer
	err := db.WithContext(ctx).
		Where("legacy_id = ?", legacyID).
		First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, page pagination.Pagination) ([]domain.Customer, int64, error) {
	base := func() *gorm.DB {
		return db.WithContext(ctx).Model(&domain.Customer{})
	}
	return r.paginate(base, page)
}

func (r *repo) Search(ctx context.Context, db *gorm.DB, query string, page pagination.Pagination) ([]domain.Customer, int64, error) {
	cond, args := pkgdb.CaseInsensitiveLike(domain.SearchColumns, query)
	base := func() *gorm.DB {
		return db.WithContext(ctx).Model(&domain.Customer{}).Where(cond, args...)
	}
	return r.paginate(base, page)
}

// paginate counts and fetches off the same filter predicate so total_count
// cannot drift from the returned rows.
func (r *repo) paginate(base func() *gorm.DB, page pagination.Pagination) ([]domain.Customer, int64, error) {
	order, err := page.OrderClause(domain.SortableColumns, "created_at")
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []domain.Customer
	if err := page.Apply(base().Order(order)).Find(&customers).Error; err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, customer *domain.Customer) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("id = ?", customer.ID).
		Updates(map[string]interface{}{
			"legacy_id":  customer.LegacyID,
			"name":       customer.Name,
			"email":      customer.Email,
			"phone":      customer.Phone,
			"address":    customer.Address,
			"updated_at": customer.UpdatedAt,
		})
	return res.RowsAffected, res.Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error) {
	res := db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Customer{})
	return res.RowsAffected, res.Error
}
