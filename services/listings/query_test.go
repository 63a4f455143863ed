package listings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 10))
	assert.Equal(t, 1, totalPages(1, 10))
	assert.Equal(t, 1, totalPages(10, 10))
	assert.Equal(t, 2, totalPages(11, 10))
	// 25 matches at page size 10 means three pages, the last one short
	assert.Equal(t, 3, totalPages(25, 10))
}

func TestPageValidate(t *testing.T) {
	assert.Error(t, Page{Page: 1, PageSize: 0}.validate())
	assert.Error(t, Page{Page: 1, PageSize: -3}.validate())
	assert.Error(t, Page{Page: 1, PageSize: MaxPageSize + 1}.validate())
	assert.NoError(t, Page{Page: 1, PageSize: 1}.validate())
	assert.NoError(t, Page{Page: 99, PageSize: MaxPageSize}.validate())
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, Page{Page: 1, PageSize: 12}.offset())
	assert.Equal(t, 24, Page{Page: 3, PageSize: 12}.offset())
	// Page numbers below 1 are normalized to the first page
	assert.Equal(t, 0, Page{Page: 0, PageSize: 12}.offset())
	assert.Equal(t, 0, Page{Page: -4, PageSize: 12}.offset())
}

func TestPaginationFor(t *testing.T) {
	p := paginationFor(Page{Page: 3, PageSize: 10}, 25)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 3, p.TotalPages)

	p = paginationFor(Page{Page: 0, PageSize: 10}, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.TotalPages)
}

func TestOrderClauseAlwaysTieBreaksByID(t *testing.T) {
	assert.Equal(t, "created_at DESC, id ASC", orderClause(SortNewest))
	assert.Equal(t, "created_at ASC, id ASC", orderClause(SortOldest))
	assert.Equal(t, "views DESC, id ASC", orderClause(SortMostViewed))
	// Unknown keys fall back to newest
	assert.Equal(t, "created_at DESC, id ASC", orderClause("whatever"))
	assert.Equal(t, "created_at DESC, id ASC", orderClause(""))
}

func TestNormalizeSet(t *testing.T) {
	assert.Equal(t, []string{"Chill", "IGL"}, normalizeSet([]string{" Chill ", "", "IGL", "Chill"}))
	assert.Nil(t, normalizeSet(nil))
	assert.Nil(t, normalizeSet([]string{"", "  "}))
	// Order of first appearance is preserved for display
	assert.Equal(t, []string{"b", "a"}, normalizeSet([]string{"b", "a", "b"}))
}
