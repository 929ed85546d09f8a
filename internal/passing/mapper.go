package passing

import (
	"strings"

	"github.com/pfrederiksen/passing-stats/internal/extract"
	"github.com/pfrederiksen/passing-stats/internal/season"
)

// Map picks the band's columns out of a raw row. Cells the row doesn't have
// come back empty.
func Map(cells extract.RawRow, band season.Band) Record {
	values := make([]string, len(band.Columns))
	for i, c := range band.Columns {
		if c.Index < len(cells) {
			values[i] = cells[c.Index]
		}
	}
	return Record{band: band, Values: values}
}

// MapAll maps every row that names a player. Rows with an empty player cell,
// or a repeated "Player" header, are skipped.
func MapAll(rows []extract.RawRow, band season.Band) []Record {
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := Map(row, band)
		name := strings.TrimSpace(rec.Player())
		if name == "" || strings.EqualFold(name, "player") {
			continue
		}
		out = append(out, rec)
	}
	return out
}
