package domain

import (
	"context"
	"errors"

	"github.com/kasirhq/kasir/pkg/db/pagination"
)

type CreateCustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	LegacyID *int64 `json:"legacy_id"`
}

// UpdateCustomerRequest replaces the whole record; partial patches are not
// supported and the full payload is re-validated.
type UpdateCustomerRequest struct {
	ID string
	CreateCustomerRequest
}

type ListCustomerRequest struct {
	pagination.Pagination
}

type SearchCustomerRequest struct {
	Query string
	pagination.Pagination
}

type ListCustomerResponse struct {
	pagination.PageInfo
	Customers []Customer `json:"customers"`
}

type GetCustomerRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateCustomerRequest) (Customer, error)
	List(context.Context, ListCustomerRequest) (ListCustomerResponse, error)
	GetByID(context.Context, GetCustomerRequest) (Customer, error)
	GetByLegacyID(context.Context, int64) (Customer, error)
	Update(context.Context, UpdateCustomerRequest) (Customer, error)
	Delete(context.Context, GetCustomerRequest) error
	Search(context.Context, SearchCustomerRequest) (ListCustomerResponse, error)
}

var (
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidEmail = errors.New("invalid_email")
	ErrInvalidID    = errors.New("invalid_id")
	ErrNotFound     = errors.New("customer_not_found")
)

// SortableColumns is the closed set of columns a customer list may sort on.
var SortableColumns = []string{"created_at", "updated_at", "name", "email"}

// SearchColumns is the fixed text field set searched by free-text queries.
var SearchColumns = []string{"name", "email", "phone", "address"}
