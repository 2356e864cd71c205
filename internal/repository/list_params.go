// Package repository provides data access layer implementations for the application.
package repository

// Sort orders accepted by list operations.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListParams carries pagination and ordering for list operations.
// Limit and Skip are applied to the already-sorted primary result set; joins
// are 1:1 reference lookups so pagination indices stay consistent across the
// whole filtered population.
type ListParams struct {
	Limit int
	Skip  int
	Sort  string
}

// orderClause renders the ORDER BY over creation time. Ties fall back to the
// primary key so ordering is stable within a single query.
func (p ListParams) orderClause(table string) string {
	if p.Sort == SortDesc {
		return table + ".created_on DESC, " + table + ".id DESC"
	}
	return table + ".created_on ASC, " + table + ".id ASC"
}
