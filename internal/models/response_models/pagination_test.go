package response_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMetadata(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		pageSize  int
		page      int
		wantPages int
	}{
		{name: "empty", total: 0, pageSize: 10, page: 1, wantPages: 0},
		{name: "exact fit", total: 20, pageSize: 10, page: 2, wantPages: 2},
		{name: "partial last page", total: 21, pageSize: 10, page: 3, wantPages: 3},
		{name: "single item", total: 1, pageSize: 20, page: 1, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPaginationMetadata(tt.total, tt.pageSize, tt.page)
			assert.Equal(t, tt.total, m.TotalItemCount)
			assert.Equal(t, tt.wantPages, m.TotalPageCount)
			assert.Equal(t, tt.pageSize, m.PageSize)
			assert.Equal(t, tt.page, m.CurrentPage)
		})
	}
}
