package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func TestNormalizeProductRefSpellings(t *testing.T) {
	cases := []struct {
		name string
		ref  ProductRef
		want int64
	}{
		{"snake_case", ProductRef{ProductID: int64Ptr(11)}, 11},
		{"camelCase", ProductRef{ProductIDCamel: int64Ptr(22)}, 22},
		{"bare", ProductRef{Product: int64Ptr(33)}, 33},
		{"reversed", ProductRef{IDProduct: int64Ptr(44)}, 44},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.ref.Normalize()
			assert.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeProductRefPrecedence(t *testing.T) {
	ref := ProductRef{
		ProductIDCamel: int64Ptr(2),
		IDProduct:      int64Ptr(4),
	}
	got, ok := ref.Normalize()
	assert.True(t, ok)
	assert.Equal(t, int64(2), got)
}

func TestNormalizeProductRefMissing(t *testing.T) {
	_, ok := ProductRef{}.Normalize()
	assert.False(t, ok)
}
