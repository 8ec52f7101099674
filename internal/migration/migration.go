// Package migration brings the schema up to date on startup so the service is
// usable out of the box on any of the supported database dialects.
package migration

import (
	"errors"

	customerdomain "github.com/kasirhq/kasir/internal/customer/domain"
	productdomain "github.com/kasirhq/kasir/internal/product/domain"
	quantitydomain "github.com/kasirhq/kasir/internal/quantity/domain"
	saledomain "github.com/kasirhq/kasir/internal/sale/domain"
	supplierdomain "github.com/kasirhq/kasir/internal/supplier/domain"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	return db.AutoMigrate(
		&customerdomain.Customer{},
		&supplierdomain.Supplier{},
		&productdomain.Product{},
		&quantitydomain.Quantity{},
		&saledomain.Sale{},
		&saledomain.SaleItem{},
	)
}
