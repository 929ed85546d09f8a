package passing

import (
	"regexp"
	"strings"

	"github.com/pfrederiksen/passing-stats/internal/season"
	"github.com/pfrederiksen/passing-stats/internal/stats"
)

// Derived column headers appended after the band's own columns.
const (
	HeaderYardsZ = "Yds Z-Score"
	HeaderTDZ    = "TD Z-Score"
	HeaderTotalZ = "Total Z-Score"
)

// aggregateTeam matches the site's combined line for traded players: "2TM",
// "3TM" and the older "TOT".
var aggregateTeam = regexp.MustCompile(`^(\dTM|TOT)$`)

// IsAggregateTeam reports whether team marks a multi-team season total.
func IsAggregateTeam(team string) bool {
	return aggregateTeam.MatchString(strings.TrimSpace(team))
}

// Scores are the derived z-scores, already formatted for display.
type Scores struct {
	Yards      string `json:"yds_zscore"`
	Touchdowns string `json:"td_zscore"`
	Metric     string `json:"metric_zscore"`
	Total      string `json:"total_zscore"`
}

// Record is one player-season. Values follow the column order of the band it
// was mapped with.
type Record struct {
	band   season.Band
	Values []string
	Scores Scores
}

// Player returns the player name.
func (r Record) Player() string { return r.Value(season.ColPlayer) }

// Team returns the team code, or the aggregate marker for traded players.
func (r Record) Team() string { return r.Value(season.ColTeam) }

// Value returns the named column, "" when the band does not have it.
func (r Record) Value(name string) string {
	i := r.band.Index(name)
	if i < 0 || i >= len(r.Values) {
		return ""
	}
	return r.Values[i]
}

// Number returns the named column parsed as a number, 0 if it isn't one.
func (r Record) Number(name string) float64 {
	return stats.ParseNumber(r.Value(name))
}

// Display returns the band values followed by the four derived scores.
func (r Record) Display() []string {
	out := make([]string, 0, len(r.Values)+4)
	out = append(out, r.Values...)
	return append(out, r.Scores.Yards, r.Scores.Touchdowns, r.Scores.Metric, r.Scores.Total)
}

// Headers returns the display headers for band, matching Record.Display.
func Headers(band season.Band) []string {
	h := band.Names()
	return append(h, HeaderYardsZ, HeaderTDZ, band.Metric+" Z-Score", HeaderTotalZ)
}

// ResultSet is what gets rendered for a season.
type ResultSet struct {
	Season  int
	Band    season.Band
	Records []Record
}

// Headers returns the display headers of the result set.
func (rs *ResultSet) Headers() []string {
	return Headers(rs.Band)
}

// Rows returns every record's display values.
func (rs *ResultSet) Rows() [][]string {
	rows := make([][]string, len(rs.Records))
	for i, r := range rs.Records {
		rows[i] = r.Display()
	}
	return rows
}
