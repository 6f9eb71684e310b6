package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 20},
		{"explicit values", "page=3&limit=50", 3, 50},
		{"zero page", "page=0", 1, 20},
		{"negative limit", "limit=-5", 1, 20},
		{"limit above cap", "limit=500", 1, 20},
		{"garbage values", "page=abc&limit=xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			page, limit := parsePagination(r)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestPaginationMeta(t *testing.T) {
	meta := paginationMeta(2, 20, 45)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	assert.Equal(t, int64(45), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	exact := paginationMeta(1, 10, 30)
	assert.Equal(t, 3, exact.TotalPages)

	empty := paginationMeta(1, 10, 0)
	assert.Equal(t, 0, empty.TotalPages)
}
