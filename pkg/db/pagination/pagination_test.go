package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBounds(t *testing.T) {
	p := Pagination{Page: 0, Limit: 0}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, OrderDesc, p.SortOrder)

	p = Pagination{Page: -3, Limit: 500, SortOrder: "ASC"}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, OrderAsc, p.SortOrder)
}

func TestOffset(t *testing.T) {
	p := Pagination{Page: 2, Limit: 10}
	p.Normalize()
	assert.Equal(t, 10, p.Offset())

	p = Pagination{Page: 5, Limit: 25}
	p.Normalize()
	assert.Equal(t, 100, p.Offset())
}

func TestOrderClause(t *testing.T) {
	allowed := []string{"created_at", "name", "sale_date"}

	p := Pagination{SortBy: "name", SortOrder: "asc"}
	p.Normalize()
	clause, err := p.OrderClause(allowed, "created_at")
	assert.NoError(t, err)
	assert.Equal(t, "name asc", clause)

	p = Pagination{}
	p.Normalize()
	clause, err = p.OrderClause(allowed, "created_at")
	assert.NoError(t, err)
	assert.Equal(t, "created_at desc", clause)

	p = Pagination{SortBy: "password"}
	p.Normalize()
	_, err = p.OrderClause(allowed, "created_at")
	assert.ErrorIs(t, err, ErrInvalidSortField)
}

func TestPageInfoTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{100, 100, 1},
		{101, 100, 2},
	}
	for _, tc := range cases {
		p := Pagination{Page: 1, Limit: tc.limit}
		p.Normalize()
		info := NewPageInfo(p, tc.total)
		assert.Equal(t, tc.want, info.TotalPages, "total=%d limit=%d", tc.total, tc.limit)
		assert.Equal(t, tc.total, info.TotalCount)
	}
}

func TestHasNext(t *testing.T) {
	p := Pagination{Page: 2, Limit: 10}
	p.Normalize()
	info := NewPageInfo(p, 25)
	assert.True(t, info.HasNext())

	p.Page = 3
	info = NewPageInfo(p, 25)
	assert.False(t, info.HasNext())
}
