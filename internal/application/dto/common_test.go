package dto_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YudheerRM/bidding-insights/internal/application/dto"
)

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		in        dto.PageRequest
		wantPage  int
		wantLimit int
	}{
		{"defaults", dto.PageRequest{}, 1, dto.DefaultLimit},
		{"negative", dto.PageRequest{Page: -3, Limit: -1}, 1, dto.DefaultLimit},
		{"limit capped", dto.PageRequest{Page: 2, Limit: 500}, 2, dto.MaxLimit},
		{"huge page capped", dto.PageRequest{Page: math.MaxInt/10 + 2, Limit: 10}, dto.MaxPage, 10},
		{"max int page", dto.PageRequest{Page: math.MaxInt, Limit: math.MaxInt}, dto.MaxPage, dto.MaxLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.Normalize()
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.GreaterOrEqual(t, p.Offset(), 0)
		})
	}
}

func TestPageRequest_OffsetAtCap(t *testing.T) {
	p := dto.PageRequest{Page: math.MaxInt, Limit: dto.MaxLimit}
	p.Normalize()
	assert.LessOrEqual(t, p.Offset(), math.MaxInt32)
	assert.Positive(t, p.Offset())
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, dto.Pagination{Page: 3, Limit: 10, Total: 23, TotalPages: 3},
		dto.NewPagination(dto.PageRequest{Page: 3, Limit: 10}, 23))
	assert.Equal(t, 0, dto.NewPagination(dto.PageRequest{Page: 1, Limit: 10}, 0).TotalPages)
}
