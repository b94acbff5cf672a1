package pagination

import (
	"errors"
	"strconv"
)

const (
	// MinPage is the first valid page number.
	MinPage = 1
	// DefaultLimit is used when the limit parameter is absent.
	DefaultLimit = 10
	// MinLimit and MaxLimit bound the page size.
	MinLimit = 1
	MaxLimit = 100
)

// ErrInvalidQuery is returned when page or limit is non-numeric or out of
// range. The policy is fail-closed: nothing is silently clamped.
var ErrInvalidQuery = errors.New("invalid query parameters")

// Params holds resolved offset-mode pagination inputs.
type Params struct {
	Page  int
	Limit int
}

// Skip returns the number of records to skip for the current page.
func (p Params) Skip() int {
	return (p.Page - 1) * p.Limit
}

// Parse resolves raw page and limit query values. Empty values take the
// defaults; anything non-numeric or out of range fails the whole request.
func Parse(page, limit string) (Params, error) {
	p := Params{Page: MinPage, Limit: DefaultLimit}

	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < MinPage {
			return Params{}, ErrInvalidQuery
		}
		p.Page = n
	}

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < MinLimit || n > MaxLimit {
			return Params{}, ErrInvalidQuery
		}
		p.Limit = n
	}

	return p, nil
}

// Summary describes the position of a page within the full result set.
// It is computed per list query and never persisted.
type Summary struct {
	TotalRecords int64 `json:"totalRecords"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
	LastPage     int   `json:"lastPage"`
	Limit        int   `json:"limit"`
}

// Summarize computes the page summary from the total record count.
func Summarize(p Params, totalRecords int64) Summary {
	totalPages := int((totalRecords + int64(p.Limit) - 1) / int64(p.Limit))
	return Summary{
		TotalRecords: totalRecords,
		TotalPages:   totalPages,
		CurrentPage:  p.Page,
		LastPage:     totalPages,
		Limit:        p.Limit,
	}
}
