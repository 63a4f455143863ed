package listings

import (
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Query/filter/sort engine: translates optional criteria, a sort key and a
// pagination window into a deterministic slice of visible listings.

const (
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortMostViewed = "mostViewed"

	MaxPageSize = 50
)

// Criteria are AND-combined when present. Exact-match fields left empty are
// ignored; a value outside the fixed vocabulary simply matches nothing, which
// yields an empty page rather than an error.
type Criteria struct {
	Rank   string
	Server string
	Mode   string
	Size   string
	// Playstyle matches listings whose playstyle set intersects it
	Playstyle []string
	// Tags matches listings carrying every requested tag
	Tags []string
}

func (c Criteria) apply(q *gorm.DB) *gorm.DB {
	if c.Rank != "" {
		q = q.Where("rank = ?", c.Rank)
	}
	if c.Server != "" {
		q = q.Where("server = ?", c.Server)
	}
	if c.Mode != "" {
		q = q.Where("mode = ?", c.Mode)
	}
	if c.Size != "" {
		q = q.Where("size = ?", c.Size)
	}
	if len(c.Playstyle) > 0 {
		q = q.Where("playstyle && ?", pq.Array(c.Playstyle))
	}
	if len(c.Tags) > 0 {
		q = q.Where("tags @> ?", pq.Array(c.Tags))
	}
	return q
}

// Page is a 1-indexed pagination window.
type Page struct {
	Page     int
	PageSize int
}

func (p Page) validate() error {
	if p.PageSize <= 0 || p.PageSize > MaxPageSize {
		return invalid("page_size", "page size must be between 1 and 50")
	}
	return nil
}

func (p Page) offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.PageSize
}

// Pagination is the window metadata returned next to every browse result.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func paginationFor(p Page, total int64) Pagination {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return Pagination{
		Page:       page,
		PageSize:   p.PageSize,
		Total:      total,
		TotalPages: totalPages(total, p.PageSize),
	}
}

func totalPages(total int64, pageSize int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// orderClause maps a sort key to a stable total order. Every ordering
// tie-breaks by id so two consecutive page fetches over an unchanged data set
// never skip or duplicate a row. Unknown keys fall back to newest.
func orderClause(sortBy string) string {
	switch sortBy {
	case SortOldest:
		return "created_at ASC, id ASC"
	case SortMostViewed:
		return "views DESC, id ASC"
	case SortNewest:
		return "created_at DESC, id ASC"
	default:
		return "created_at DESC, id ASC"
	}
}

// normalizeSet trims every label, drops empties and deduplicates while
// preserving order. Sets are stored as the client sent them; matching does not
// care about order but display does.
func normalizeSet(values []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
