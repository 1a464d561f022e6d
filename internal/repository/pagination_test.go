package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name             string
		page, pageSize   int
		wantPage, wantPS int
	}{
		{"both absent", 0, 0, 1, 10},
		{"negative values", -3, -1, 1, 10},
		{"valid values kept", 4, 25, 4, 25},
		{"page size of one", 1, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := NormalizePage(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPS, pageSize)
		})
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		totalItems int64
		wantPages  int
		wantOffset int
	}{
		{"exact multiple", 1, 10, 30, 3, 0},
		{"remainder rounds up", 1, 10, 31, 4, 0},
		{"single short page", 1, 10, 3, 1, 0},
		{"empty collection", 1, 10, 0, 0, 0},
		{"offset follows page", 3, 7, 100, 15, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.pageSize, tt.totalItems)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.totalItems, p.TotalItems)
			assert.Equal(t, tt.wantOffset, p.Offset())
		})
	}
}
