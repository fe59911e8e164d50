package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_CalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		offset int
		limit  int
	}{
		{name: "everything", params: Params{Page: 1}, offset: 0, limit: 0},
		{name: "first page", params: Params{Page: 1, PageSize: 10}, offset: 0, limit: 10},
		{name: "third page", params: Params{Page: 3, PageSize: 10}, offset: 20, limit: 10},
		{name: "page zero is the first page", params: Params{PageSize: 5}, offset: 0, limit: 5},
		{name: "capped", params: Params{Page: 2, PageSize: 10_000}, offset: MaxPageSize, limit: MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := tt.params.CalculateOffsetLimit()
			assert.Equal(t, tt.offset, offset)
			assert.Equal(t, tt.limit, limit)
		})
	}
}

func TestParams_BuildMeta(t *testing.T) {
	assert.Equal(t, Meta{Page: 2, PageSize: 10, TotalItems: 25, TotalPages: 3}, Params{Page: 2, PageSize: 10}.BuildMeta(25))
	assert.Equal(t, Meta{Page: 1, PageSize: 0, TotalItems: 4, TotalPages: 1}, Params{Page: 1}.BuildMeta(4))
	assert.Equal(t, Meta{Page: 1, PageSize: 0, TotalItems: 0, TotalPages: 0}, Params{}.BuildMeta(0))
}
