package season

import (
	"github.com/cockroachdb/errors"
)

const (
	Min = 1950
	Max = 2023

	// MinAttemptsSince is the last season in which low-volume passers are kept.
	MinAttemptsSince = 1970
	MinAttempts      = 100
)

// Logical column names shared by every band.
const (
	ColPlayer      = "Player"
	ColTeam        = "Team"
	ColGames       = "G"
	ColStarts      = "GS"
	ColCompletions = "Cmp"
	ColAttempts    = "Att"
	ColCompPct     = "Cmp%"
	ColYards       = "Yds"
	ColTouchdowns  = "TD"
	ColInts        = "INT"
	ColYardsPerAtt = "Y/A"
	ColYardsPerG   = "Y/G"
	ColRate        = "Rate"
	ColQBR         = "QBR"
)

var ErrOutOfRange = errors.New("season out of range")

// Column maps a logical field onto a raw cell index.
type Column struct {
	Name    string
	Index   int
	Numeric bool
}

// Band is one column layout of the passing table, valid for seasons From..To
// inclusive. To == 0 means the band is open ended.
type Band struct {
	Version string
	From    int
	To      int
	// Metric is the third z-score input: passer rating or QBR.
	Metric  string
	Columns []Column
}

// Contains reports whether year falls inside the band.
func (b Band) Contains(year int) bool {
	if year < b.From {
		return false
	}
	return b.To == 0 || year <= b.To
}

// Index returns the position of the named column in the band's output order,
// or -1 when the band has no such column.
func (b Band) Index(name string) int {
	for i, c := range b.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Names returns the logical column names in output order.
func (b Band) Names() []string {
	names := make([]string, len(b.Columns))
	for i, c := range b.Columns {
		names[i] = c.Name
	}
	return names
}

// Validate checks that year is one of the selectable seasons.
func Validate(year int) error {
	if year < Min || year > Max {
		return errors.Wrapf(ErrOutOfRange, "%d (must be %d-%d)", year, Min, Max)
	}
	return nil
}

// ForYear returns the band describing the table layout for year.
func ForYear(year int) (Band, error) {
	if err := Validate(year); err != nil {
		return Band{}, err
	}
	for _, b := range Bands {
		if b.Contains(year) {
			return b, nil
		}
	}
	return Band{}, errors.Newf("no schema band for season %d", year)
}

// AppliesAttemptFilter reports whether passers below MinAttempts are dropped
// for year.
func AppliesAttemptFilter(year int) bool {
	return year > MinAttemptsSince
}
