package domain

// ProductRef carries the four historical spellings of the product reference.
// Prior systems wrote the key as product_id, productId, product, or
// id_product; the first populated spelling, in that order, wins. product_id is
// the canonical internal name.
type ProductRef struct {
	ProductID      *int64 `json:"product_id"`
	ProductIDCamel *int64 `json:"productId"`
	Product        *int64 `json:"product"`
	IDProduct      *int64 `json:"id_product"`
}

// Normalize resolves the canonical product reference from whichever spelling
// the payload used.
func (r ProductRef) Normalize() (int64, bool) {
	for _, candidate := range []*int64{r.ProductID, r.ProductIDCamel, r.Product, r.IDProduct} {
		if candidate != nil {
			return *candidate, true
		}
	}
	return 0, false
}
