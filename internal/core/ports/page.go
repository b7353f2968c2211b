package ports

import (
	"ordermanagement/internal/pkg/errs"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Page is an offset/limit window over a deterministic ordering.
type Page struct {
	skip  int
	limit int
}

// NewPage validates skip >= 0 and limit in [1, MaxLimit].
func NewPage(skip, limit int) (Page, error) {
	if skip < 0 {
		return Page{}, errs.NewValueIsOutOfRangeError("skip", skip, 0, "unbounded")
	}
	if limit < 1 || limit > MaxLimit {
		return Page{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxLimit)
	}
	return Page{skip: skip, limit: limit}, nil
}

// DefaultPage returns skip=0, limit=DefaultLimit.
func DefaultPage() Page {
	return Page{skip: 0, limit: DefaultLimit}
}

func (p Page) Skip() int {
	return p.skip
}

// Limit returns the page size; a zero-value Page yields DefaultLimit.
func (p Page) Limit() int {
	if p.limit == 0 {
		return DefaultLimit
	}
	return p.limit
}
