package domain

import (
	"context"
	"errors"

	"github.com/kasirhq/kasir/pkg/db/pagination"
)

type CreateSupplierRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	LegacyID      *int64 `json:"legacy_id"`
}

// UpdateSupplierRequest replaces the whole record and re-validates the full
// payload.
type UpdateSupplierRequest struct {
	ID string
	CreateSupplierRequest
}

type ListSupplierRequest struct {
	pagination.Pagination
}

type SearchSupplierRequest struct {
	Query string
	pagination.Pagination
}

type ListSupplierResponse struct {
	pagination.PageInfo
	Suppliers []Supplier `json:"suppliers"`
}

type GetSupplierRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateSupplierRequest) (Supplier, error)
	List(context.Context, ListSupplierRequest) (ListSupplierResponse, error)
	GetByID(context.Context, GetSupplierRequest) (Supplier, error)
	GetByLegacyID(context.Context, int64) (Supplier, error)
	Update(context.Context, UpdateSupplierRequest) (Supplier, error)
	Delete(context.Context, GetSupplierRequest) error
	Search(context.Context, SearchSupplierRequest) (ListSupplierResponse, error)
}

var (
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidContact = errors.New("invalid_contact_person")
	ErrInvalidEmail   = errors.New("invalid_email")
	ErrInvalidPhone   = errors.New("invalid_phone")
	ErrInvalidID      = errors.New("invalid_id")
	ErrNotFound       = errors.New("supplier_not_found")
)

// SortableColumns is the closed set of columns a supplier list may sort on.
var SortableColumns = []string{"created_at", "updated_at", "name", "contact_person"}

// SearchColumns is the fixed text field set searched by free-text queries.
var SearchColumns = []string{"name", "contact_person", "email", "phone", "address"}
