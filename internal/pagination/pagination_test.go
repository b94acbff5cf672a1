package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		limit   string
		want    Params
		wantErr bool
	}{
		{"defaults", "", "", Params{Page: 1, Limit: 10}, false},
		{"explicit", "3", "25", Params{Page: 3, Limit: 25}, false},
		{"limit at max", "1", "100", Params{Page: 1, Limit: 100}, false},
		{"non-numeric page", "abc", "", Params{}, true},
		{"non-numeric limit", "", "ten", Params{}, true},
		{"page zero", "0", "", Params{}, true},
		{"negative page", "-1", "", Params{}, true},
		{"limit zero", "", "0", Params{}, true},
		{"limit above max", "", "101", Params{}, true},
		{"float page", "1.5", "", Params{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.page, tt.limit)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidQuery)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParamsSkip(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 10}.Skip())
	assert.Equal(t, 40, Params{Page: 5, Limit: 10}.Skip())
	assert.Equal(t, 50, Params{Page: 3, Limit: 25}.Skip())
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name       string
		params     Params
		total      int64
		totalPages int
	}{
		{"exact division", Params{Page: 1, Limit: 10}, 100, 10},
		{"remainder rounds up", Params{Page: 2, Limit: 10}, 101, 11},
		{"single partial page", Params{Page: 1, Limit: 10}, 3, 1},
		{"empty set", Params{Page: 1, Limit: 10}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.params, tt.total)
			assert.Equal(t, tt.total, got.TotalRecords)
			assert.Equal(t, tt.totalPages, got.TotalPages)
			assert.Equal(t, tt.totalPages, got.LastPage)
			assert.Equal(t, tt.params.Page, got.CurrentPage)
			assert.Equal(t, tt.params.Limit, got.Limit)
		})
	}
}

// Identical inputs over an unchanged dataset must produce identical summaries.
func TestSummarizeIdempotent(t *testing.T) {
	p := Params{Page: 2, Limit: 10}
	assert.Equal(t, Summarize(p, 57), Summarize(p, 57))
}
