package passing

import (
	"strconv"

	"github.com/pfrederiksen/passing-stats/internal/extract"
	"github.com/pfrederiksen/passing-stats/internal/season"
)

type line struct {
	name   string
	team   string
	att    int
	yds    string
	td     int
	metric string
}

// raw lays a line out the way the site does for year.
func raw(year int, l line) extract.RawRow {
	band, err := season.ForYear(year)
	if err != nil {
		panic(err)
	}
	cells := make(extract.RawRow, 30)
	for i := range cells {
		cells[i] = "0"
	}
	cells[0] = "1"
	set := func(name, v string) {
		cells[band.Columns[band.Index(name)].Index] = v
	}
	set(season.ColPlayer, l.name)
	set(season.ColTeam, l.team)
	set(season.ColAttempts, strconv.Itoa(l.att))
	set(season.ColYards, l.yds)
	set(season.ColTouchdowns, strconv.Itoa(l.td))
	set(band.Metric, l.metric)
	return cells
}

func rows(year int, lines ...line) []extract.RawRow {
	out := make([]extract.RawRow, len(lines))
	for i, l := range lines {
		out[i] = raw(year, l)
	}
	return out
}

func names(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Player()
	}
	return out
}
