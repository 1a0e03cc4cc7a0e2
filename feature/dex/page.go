package dex

const (
	// DefaultLimit is the page size used when none is requested.
	DefaultLimit = 50
	// MaxLimit caps the requested page size.
	MaxLimit = 200
)

// Page is one slice of a list response.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// Paginate cuts all into pages of limit records and returns page (1-based).
// A page past the end yields no items.
func Paginate[T any](all []T, page, limit int) Page[T] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	total := len(all)
	out := Page[T]{
		Items: []T{},
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: (total + limit - 1) / limit,
	}

	if page > out.Pages {
		return out
	}
	start := (page - 1) * limit
	end := min(start+limit, total)
	out.Items = append(out.Items, all[start:end]...)
	return out
}
