package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePaging(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantPage   int
		wantSize   int
		wantErr    error
	}{
		{name: "within bounds", page: 2, size: 5, wantPage: 2, wantSize: 5},
		{name: "size capped", page: 1, size: 500, wantPage: 1, wantSize: 20},
		{name: "size at max", page: 3, size: 20, wantPage: 3, wantSize: 20},
		{name: "zero page", page: 0, size: 10, wantErr: ErrInvalidPage},
		{name: "negative page", page: -1, size: 10, wantErr: ErrInvalidPage},
		{name: "zero size", page: 1, size: 0, wantErr: ErrInvalidPageSize},
		{name: "offset overflows int", page: 922337203685477581, size: 20, wantErr: ErrInvalidPage},
		{name: "overflow checked after capping", page: 922337203685477581, size: 500, wantErr: ErrInvalidPage},
		{name: "largest addressable page", page: math.MaxInt/20 + 1, size: 20, wantPage: math.MaxInt/20 + 1, wantSize: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size, err := NormalizePaging(tt.page, tt.size, 20)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 10, Offset(2, 10))
	assert.Equal(t, 40, Offset(5, 10))

	page, size, err := NormalizePaging(math.MaxInt/20+1, 20, 20)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, Offset(page, size), 0)
}
