package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/kasirhq/kasir/internal/supplier/domain"
	pkgdb "github.com/kasirhq/kasir/pkg/db"
	"github.com/kasirhq/kasir/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, supplier *domain.Supplier) error {
	return db.WithContext(ctx).Create(supplier).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Supplier, error) {
	var supplier domain.Supplier
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&supplier).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *repo) FindByLegacyID(ctx context.Context, db *gorm.DB, legacyID int64) (*domain.Supplier, error) {
	var supplier domain.Supplier
	err := db.WithContext(ctx).
		Where("legacy_id = ?", legacyID).
		First(&supplier).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, page pagination.Pagination) ([]domain.Supplier, int64, error) {
	base := func() *gorm.DB {
		return db.WithContext(ctx).Model(&domain.Supplier{})
	}
	return r.paginate(base, page)
}

func (r *repo) Search(ctx context.Context, db *gorm.DB, query string, page pagination.Pagination) ([]domain.Supplier, int64, error) {
	cond, args := pkgdb.CaseInsensitiveLike(domain.SearchColumns, query)
	base := func() *gorm.DB {
		return db.WithContext(ctx).Model(&domain.Supplier{}).Where(cond, args...)
	}
	return r.paginate(base, page)
}

func (r *repo) paginate(base func() *gorm.DB, page pagination.Pagination) ([]domain.Supplier, int64, error) {
	order, err := page.OrderClause(domain.SortableColumns, "created_at")
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var suppliers []domain.Supplier
	if err := page.Apply(base().Order(order)).Find(&suppliers).Error; err != nil {
		return nil, 0, err
	}
	return suppliers, total, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, supplier *domain.Supplier) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Supplier{}).
		Where("id = ?", supplier.ID).
		Updates(map[string]interface{}{
			"legacy_id":      supplier.LegacyID,
			"name":           supplier.Name,
			"contact_person": supplier.ContactPerson,
			"email":          supplier.Email,
			"phone":          supplier.Phone,
			"address":        supplier.Address,
			"updated_at":     supplier.UpdatedAt,
		})
	return res.RowsAffected, res.Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error) {
	res := db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Supplier{})
	return res.RowsAffected, res.Error
}
