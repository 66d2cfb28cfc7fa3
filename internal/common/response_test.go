package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	testCases := []struct {
		name  string
		page  int
		limit int
		total int64
		pages int64
	}{
		{"나누어 떨어지는 경우", 1, 50, 100, 2},
		{"나머지가 있으면 올림", 1, 50, 101, 3},
		{"총 0건", 1, 50, 0, 0},
		{"limit보다 작은 총건수", 2, 10, 3, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.limit, tc.total)
			assert.Equal(t, tc.page, p.Page)
			assert.Equal(t, tc.limit, p.Limit)
			assert.Equal(t, tc.total, p.Total)
			assert.Equal(t, tc.pages, p.Pages)
		})
	}
}
