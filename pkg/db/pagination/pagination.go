// Package pagination defines the offset pagination contract shared by every
// list and search operation.
package pagination

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ErrInvalidSortField is returned when sort_by is not in the entity's sortable
// column set.
var ErrInvalidSortField = errors.New("invalid_sort_field")

// Pagination carries the normalized list query parameters.
type Pagination struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}

// Normalize clamps page and limit into their documented bounds and defaults
// the sort direction to descending.
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	switch strings.ToLower(strings.TrimSpace(p.SortOrder)) {
	case OrderAsc:
		p.SortOrder = OrderAsc
	default:
		p.SortOrder = OrderDesc
	}
	p.SortBy = strings.TrimSpace(p.SortBy)
}

// Offset returns the number of rows to skip for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// OrderClause validates sort_by against the entity's closed column set and
// returns the SQL order expression. An empty sort_by falls back to def.
func (p Pagination) OrderClause(allowed []string, def string) (string, error) {
	column := p.SortBy
	if column == "" {
		column = def
	}
	found := false
	for _, c := range allowed {
		if c == column {
			found = true
			break
		}
	}
	if !found {
		return "", ErrInvalidSortField
	}
	return column + " " + p.SortOrder, nil
}

// Apply adds offset/limit to a filtered statement. Counting must run on the
// same statement before Apply so total_count reflects the full filtered set.
func (p Pagination) Apply(stmt *gorm.DB) *gorm.DB {
	return stmt.Offset(p.Offset()).Limit(p.Limit)
}

// PageInfo is the pagination envelope reported alongside every list response.
type PageInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

// NewPageInfo derives the envelope from the filtered-set count.
func NewPageInfo(p Pagination, totalCount int64) PageInfo {
	totalPages := int((totalCount + int64(p.Limit) - 1) / int64(p.Limit))
	return PageInfo{
		Page:       p.Page,
		Limit:      p.Limit,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

// HasNext reports whether pages remain after the current one.
func (pi PageInfo) HasNext() bool {
	return pi.Page < pi.TotalPages
}
