package domain

import (
	"fmt"

	"github.com/kasirhq/kasir/pkg/validation"
)

// Validate checks every business rule of a sale and reports all violations
// together. It assumes CalculateTotals already ran, so aggregate fields are
// consistent with the items.
func (s *Sale) Validate() error {
	var errs validation.Errors

	if s.SaleID == "" {
		errs.Add("sale_id", "required", "sale_id is required")
	}
	if len(s.Items) == 0 {
		errs.Add("sale_items", "required", "a sale must contain at least one item")
	}
	for i, item := range s.Items {
		if item.ProductID == 0 {
			errs.Add(fmt.Sprintf("sale_items[%d].product_id", i), "required", fmt.Sprintf("item %d is missing a product reference", i))
		}
		if item.Quantity <= 0 {
			errs.Add(fmt.Sprintf("sale_items[%d].quantity", i), "positive", fmt.Sprintf("item %d quantity must be greater than zero", i))
		}
		if item.UnitPrice.IsNegative() {
			errs.Add(fmt.Sprintf("sale_items[%d].unit_price", i), "non_negative", fmt.Sprintf("item %d unit price must not be negative", i))
		}
	}
	if s.TaxAmount.IsNegative() {
		errs.Add("tax_amount", "non_negative", "tax amount must not be negative")
	}
	if s.DiscountAmount.IsNegative() {
		errs.Add("discount_amount", "non_negative", "discount amount must not be negative")
	}
	if s.PaidAmount.IsNegative() {
		errs.Add("paid_amount", "non_negative", "paid amount must not be negative")
	}
	if s.TotalAmount.IsNegative() {
		errs.Add("total_amount", "non_negative", "total amount must not be negative")
	}
	if s.PaidAmount.LessThan(s.TotalAmount) {
		errs.Add("paid_amount", "insufficient_payment",
			fmt.Sprintf("paid amount %s is insufficient to cover the total %s", s.PaidAmount.StringFixed(2), s.TotalAmount.StringFixed(2)))
	}

	return errs.Err()
}
