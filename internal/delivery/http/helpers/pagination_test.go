package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
	}{
		{"defaults", "", DefaultPage, DefaultPageSize},
		{"explicit", "?page=3&page_size=5", 3, 5},
		{"capped page size", "?page_size=1000", DefaultPage, MaxPageSize},
		{"zero and negative", "?page=0&page_size=-4", DefaultPage, DefaultPageSize},
		{"garbage", "?page=two&page_size=x", DefaultPage, DefaultPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePagination(httptest.NewRequest("GET", "/registrations"+tt.query, nil))
			require.Equal(t, tt.wantPage, p.Page)
			require.Equal(t, tt.wantPageSize, p.PageSize)
		})
	}
}

func TestNewPaginationMeta(t *testing.T) {
	require.Equal(t, PaginationMeta{Page: 1, PageSize: 20, Total: 41, TotalPages: 3}, NewPaginationMeta(1, 20, 41))
	require.Equal(t, 0, NewPaginationMeta(1, 0, 5).TotalPages)
	require.Equal(t, 0, NewPaginationMeta(1, 20, 0).TotalPages)
}
