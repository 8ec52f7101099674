package domain

import (
	"context"
	"errors"

	"github.com/kasirhq/kasir/pkg/db/pagination"
)

type CreateQuantityRequest struct {
	ProductRef
	Size     int    `json:"size"`
	LegacyID *int64 `json:"legacy_id"`
}

// UpdateQuantityRequest replaces the whole record and re-validates the full
// payload.
type UpdateQuantityRequest struct {
	ID string
	CreateQuantityRequest
}

type ListQuantityFilter struct {
	ProductID *int64
}

type ListQuantityRequest struct {
	pagination.Pagination
	ListQuantityFilter
}

// SearchQuantityRequest treats the free-text query as a product reference;
// quantities carry no searchable text fields.
type SearchQuantityRequest struct {
	Query string
	pagination.Pagination
}

type ListQuantityResponse struct {
	pagination.PageInfo
	Quantities []Quantity `json:"quantities"`
}

type GetQuantityRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateQuantityRequest) (Quantity, error)
	List(context.Context, ListQuantityRequest) (ListQuantityResponse, error)
	GetByID(context.Context, GetQuantityRequest) (Quantity, error)
	GetByLegacyID(context.Context, int64) (Quantity, error)
	GetByProductID(context.Context, int64) (Quantity, error)
	Update(context.Context, UpdateQuantityRequest) (Quantity, error)
	Delete(context.Context, GetQuantityRequest) error
	Search(context.Context, SearchQuantityRequest) (ListQuantityResponse, error)
}

var (
	ErrInvalidProductRef = errors.New("invalid_product_reference")
	ErrInvalidSize       = errors.New("invalid_size")
	ErrInvalidID         = errors.New("invalid_id")
	ErrNotFound          = errors.New("quantity_not_found")
)

// SortableColumns is the closed set of columns a quantity list may sort on.
var SortableColumns = []string{"created_at", "updated_at", "size", "product_id"}
