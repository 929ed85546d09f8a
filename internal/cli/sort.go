package cli

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pfrederiksen/passing-stats/internal/passing"
	"github.com/pfrederiksen/passing-stats/internal/stats"
)

var ErrUnknownColumn = errors.New("unknown column")

// Table is a rendered result set that can be re-sorted by column. Sorting by
// the column it is already sorted by flips the direction; a new column
// starts ascending.
type Table struct {
	Season  int
	Schema  string
	Headers []string
	Rows    [][]string

	numeric []bool
	sortCol int
	desc    bool
}

// NewTable builds a table from a result set, in ranked order.
func NewTable(rs *passing.ResultSet) *Table {
	headers := rs.Headers()
	numeric := make([]bool, len(headers))
	for i, c := range rs.Band.Columns {
		numeric[i] = c.Numeric
	}
	// the derived scores are always numeric
	for i := len(rs.Band.Columns); i < len(headers); i++ {
		numeric[i] = true
	}

	return &Table{
		Season:  rs.Season,
		Schema:  rs.Band.Version,
		Headers: headers,
		Rows:    rs.Rows(),
		numeric: numeric,
		sortCol: -1,
	}
}

// column resolves a header name, ignoring case.
func (t *Table) column(name string) int {
	name = strings.TrimSpace(name)
	for i, h := range t.Headers {
		if strings.EqualFold(h, name) {
			return i
		}
	}
	return -1
}

// SortBy sorts the rows by the named column.
func (t *Table) SortBy(name string) error {
	col := t.column(name)
	if col < 0 {
		return errors.Wrapf(ErrUnknownColumn, "%q (columns: %s)", name, strings.Join(t.Headers, ", "))
	}

	if col == t.sortCol {
		t.desc = !t.desc
	} else {
		t.sortCol = col
		t.desc = false
	}

	less := t.textLess
	if t.numeric[col] {
		less = t.numberLess
	}
	sort.SliceStable(t.Rows, func(i, j int) bool {
		if t.desc {
			return less(t.Rows[j], t.Rows[i])
		}
		return less(t.Rows[i], t.Rows[j])
	})
	return nil
}

// SortedBy returns the current sort column and direction; "" when the table
// is still in ranked order.
func (t *Table) SortedBy() (string, bool) {
	if t.sortCol < 0 {
		return "", false
	}
	return t.Headers[t.sortCol], t.desc
}

func (t *Table) numberLess(a, b []string) bool {
	return stats.ParseNumber(a[t.sortCol]) < stats.ParseNumber(b[t.sortCol])
}

func (t *Table) textLess(a, b []string) bool {
	return a[t.sortCol] < b[t.sortCol]
}
