package passing

import (
	"github.com/cockroachdb/errors"
	"github.com/pfrederiksen/passing-stats/internal/extract"
	"github.com/pfrederiksen/passing-stats/internal/season"
)

var ErrNoPlayers = errors.New("no player data found for this year")

// Build produces the scored top passers for year from extracted rows.
func Build(rows []extract.RawRow, year int) (*ResultSet, error) {
	band, err := season.ForYear(year)
	if err != nil {
		return nil, err
	}

	records := MapAll(rows, band)
	records = FilterMinAttempts(records, year)
	records = Dedupe(records)
	if len(records) == 0 {
		return nil, ErrNoPlayers
	}

	records = Normalize(Rank(records, TopN), band)

	return &ResultSet{
		Season:  year,
		Band:    band,
		Records: records,
	}, nil
}

// FromHTML extracts the passing table from page and builds the result set.
func FromHTML(page string, year int) (*ResultSet, error) {
	rows, err := extract.Rows(page)
	if err != nil {
		return nil, err
	}
	return Build(rows, year)
}
