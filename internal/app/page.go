package app

import "strconv"

// DefaultLimit is the page size applied when the caller specifies none.
const DefaultLimit = 5

// Page is the slicing window shared by every list endpoint.
type Page struct {
	Limit  int
	Offset int
}

// ParsePage builds a Page from raw query values. Values that are absent,
// non-numeric, or negative fall back to the defaults limit=5, offset=0.
func ParsePage(limitRaw, offsetRaw string) Page {
	p := Page{Limit: DefaultLimit, Offset: 0}
	if n, err := strconv.Atoi(limitRaw); err == nil && n >= 0 {
		p.Limit = n
	}
	if n, err := strconv.Atoi(offsetRaw); err == nil && n >= 0 {
		p.Offset = n
	}
	return p
}

// ClampWindow re-applies the page limit over an already-limited result so a
// response can never exceed the requested window, whatever the store's
// skip/limit semantics did. The offset is not re-applied: the store has
// already skipped those rows.
func ClampWindow[T any](items []T, p Page) []T {
	if len(items) > p.Limit {
		return items[:p.Limit]
	}
	return items
}
