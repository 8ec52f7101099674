package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/kasirhq/kasir/internal/quantity/domain"
	"github.com/kasirhq/kasir/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, quantity *domain.Quantity) error {
	return db.WithContext(ctx).Create(quantity).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Quantity, error) {
	var quantity domain.Quantity
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&quantity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quantity, nil
}

func (r *repo) FindByLegacyID(ctx context.Context, db *gorm.DB, legacyID int64) (*domain.Quantity, error) {
	var quantity domain.Quantity
	err := db.WithContext(ctx).
		Where("legacy_id = ?", legacyID).
		First(&quantity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quantity, nil
}

func (r *repo) FindByProductID(ctx context.Context, db *gorm.DB, productID int64) (*domain.Quantity, error) {
	var quantity domain.Quantity
	err := db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&quantity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quantity, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListQuantityFilter, page pagination.Pagination) ([]domain.Quantity, int64, error) {
	order, err := page.OrderClause(domain.SortableColumns, "created_at")
	if err != nil {
		return nil, 0, err
	}

	base := func() *gorm.DB {
		stmt := db.WithContext(ctx).Model(&domain.Quantity{})
		if filter.ProductID != nil {
			stmt = stmt.Where("product_id = ?", *filter.ProductID)
		}
		return stmt
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var quantities []domain.Quantity
	if err := page.Apply(base().Order(order)).Find(&quantities).Error; err != nil {
		return nil, 0, err
	}
	return quantities, total, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, quantity *domain.Quantity) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Quantity{}).
		Where("id = ?", quantity.ID).
		Updates(map[string]interface{}{
			"legacy_id":  quantity.LegacyID,
			"product_id": quantity.ProductID,
			"size":       quantity.Size,
			"updated_at": quantity.UpdatedAt,
		})
	return res.RowsAffected, res.Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error) {
	res := db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Quantity{})
	return res.RowsAffected, res.Error
}
