package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	cases := []struct {
		name      string
		page      int
		pageSize  int
		wantItems []int
		wantPage  int
		wantCount int
	}{
		{"first page", 1, 3, []int{1, 2, 3}, 1, 3},
		{"middle page", 2, 3, []int{4, 5, 6}, 2, 3},
		{"short last page", 3, 3, []int{7}, 3, 3},
		{"page too high clamps to last", 99, 3, []int{7}, 3, 3},
		{"page too low clamps to first", -5, 3, []int{1, 2, 3}, 1, 3},
		{"page size floor of one", 1, 0, []int{1}, 1, 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, page, count := Paginate(items, tc.page, tc.pageSize)
			assert.Equal(t, tc.wantItems, got)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantCount, count)
		})
	}
}

func TestPaginate_EmptySet(t *testing.T) {
	got, page, count := Paginate([]int{}, 5, 6)

	assert.Empty(t, got)
	assert.Equal(t, 1, page, "empty sets still report page one")
	assert.Equal(t, 1, count, "page count has a floor of one")
}

func TestClampPageSize(t *testing.T) {
	assert.Equal(t, 6, ClampPageSize(0, 6, 12), "zero falls back to default")
	assert.Equal(t, 6, ClampPageSize(-3, 6, 12), "negative falls back to default")
	assert.Equal(t, 4, ClampPageSize(4, 6, 12))
	assert.Equal(t, 12, ClampPageSize(50, 6, 12), "oversized requests clamp to max")
}

func TestCapItems(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2, 3}, CapItems(items, 3))
	assert.Equal(t, items, CapItems(items, 10))
	assert.Equal(t, items, CapItems(items, 0), "zero max means no cap")
}
