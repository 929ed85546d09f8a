package passing

import (
	"fmt"
	"testing"

	"github.com/pfrederiksen/passing-stats/internal/season"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterMinAttempts(t *testing.T) {
	band, err := season.ForYear(2000)
	require.NoError(t, err)

	in := MapAll(rows(2000,
		line{name: "Backup", team: "CLE", att: 80},
		line{name: "Starter", team: "STL", att: 100},
	), band)

	assert.Equal(t, []string{"Starter"}, names(FilterMinAttempts(in, 2000)))

	old, err := season.ForYear(1970)
	require.NoError(t, err)
	early := MapAll(rows(1970,
		line{name: "Backup", team: "CLE", att: 80},
		line{name: "Starter", team: "BAL", att: 100},
	), old)
	assert.Len(t, FilterMinAttempts(early, 1970), 2)
}

func TestRank(t *testing.T) {
	band, err := season.ForYear(2010)
	require.NoError(t, err)

	in := MapAll(rows(2010,
		line{name: "A", att: 300, yds: "3,100"},
		line{name: "B", att: 300, yds: "4,500"},
		line{name: "C", att: 300, yds: ""},
		line{name: "D", att: 300, yds: "3,100"},
	), band)

	assert.Equal(t, []string{"B", "A", "D", "C"}, names(Rank(in, TopN)))
	assert.Equal(t, []string{"B", "A"}, names(Rank(in, 2)))
	// input untouched
	assert.Equal(t, []string{"A", "B", "C", "D"}, names(in))
}

func TestNormalize(t *testing.T) {
	band, err := season.ForYear(1990)
	require.NoError(t, err)

	in := MapAll(rows(1990,
		line{name: "Low", att: 200, yds: "100", td: 1, metric: "70.0"},
		line{name: "Mid", att: 200, yds: "200", td: 2, metric: "80.0"},
		line{name: "High", att: 200, yds: "300", td: 3, metric: "90.0"},
	), band)

	got := Normalize(in, band)
	require.Len(t, got, 3)

	assert.Equal(t, Scores{Yards: "1.00", Touchdowns: "1.00", Metric: "1.00", Total: "3.00"}, got[2].Scores)
	assert.Equal(t, Scores{Yards: "0.00", Touchdowns: "0.00", Metric: "0.00", Total: "0.00"}, got[1].Scores)
	assert.Equal(t, "-1.00", got[0].Scores.Yards)
}

func TestNormalize_SingleRecord(t *testing.T) {
	band, err := season.ForYear(2015)
	require.NoError(t, err)

	in := MapAll(rows(2015, line{name: "Solo", att: 500, yds: "5,000", td: 40, metric: "80.1"}), band)
	got := Normalize(in, band)
	assert.Equal(t, Scores{Yards: "0.00", Touchdowns: "0.00", Metric: "0.00", Total: "0.00"}, got[0].Scores)
}

func TestNormalize_UsesQBRFromDisplayedSet(t *testing.T) {
	band, err := season.ForYear(2015)
	require.NoError(t, err)

	in := MapAll(rows(2015,
		line{name: "A", att: 500, yds: "4,000", td: 30, metric: "50"},
		line{name: "B", att: 500, yds: "4,000", td: 30, metric: "70"},
		line{name: "C", att: 500, yds: "4,000", td: 30, metric: "bad"},
	), band)

	got := Normalize(in, band)
	// QBR values 50, 70, 0 -> mean 40, sd sqrt(((10)^2+(30)^2+(40)^2)/2)
	assert.Equal(t, "0.28", got[0].Scores.Metric)
	assert.Equal(t, "0.00", got[0].Scores.Yards)
	assert.Equal(t, got[0].Scores.Metric, got[0].Scores.Total)
}

func TestBuild(t *testing.T) {
	lines := make([]line, 0, 50)
	for i := 0; i < 45; i++ {
		lines = append(lines, line{
			name:   fmt.Sprintf("QB %02d", i),
			team:   "NFL",
			att:    200 + i,
			yds:    fmt.Sprintf("%d", 1000+i*50),
			td:     i,
			metric: "60.0",
		})
	}
	lines = append(lines, line{name: "Clipboard", team: "NYG", att: 10, yds: "9,999"})

	rs, err := Build(rows(2021, lines...), 2021)
	require.NoError(t, err)

	require.Len(t, rs.Records, TopN)
	assert.Equal(t, "QB 44", rs.Records[0].Player())
	assert.Equal(t, 2021, rs.Season)
	assert.Len(t, rs.Headers(), 18)
	for _, r := range rs.Rows() {
		assert.Len(t, r, 18)
	}
	assert.Equal(t, "QBR Z-Score", rs.Headers()[16])
}

func TestBuild_PreQBRArity(t *testing.T) {
	rs, err := Build(rows(1999,
		line{name: "Kurt Warner", team: "STL", att: 499, yds: "4,353", td: 41, metric: "109.2"},
		line{name: "Peyton Manning", team: "IND", att: 533, yds: "4,135", td: 26, metric: "90.7"},
	), 1999)
	require.NoError(t, err)

	assert.Len(t, rs.Headers(), 17)
	assert.Equal(t, "Rate Z-Score", rs.Headers()[15])
	for _, r := range rs.Rows() {
		assert.Len(t, r, 17)
	}
}

func TestBuild_NoPlayers(t *testing.T) {
	_, err := Build(rows(2000, line{name: "Backup", team: "CLE", att: 80, yds: "500"}), 2000)
	assert.ErrorIs(t, err, ErrNoPlayers)

	_, err = Build(nil, 2000)
	assert.ErrorIs(t, err, ErrNoPlayers)
}

func TestBuild_Idempotent(t *testing.T) {
	in := rows(2012,
		line{name: "Drew Brees", team: "NOR", att: 670, yds: "5,177", td: 43, metric: "68.0"},
		line{name: "Matthew Stafford", team: "DET", att: 727, yds: "4,967", td: 20, metric: "58.1"},
		line{name: "Tony Romo", team: "DAL", att: 648, yds: "4,903", td: 28, metric: "68.5"},
	)
	first, err := Build(in, 2012)
	require.NoError(t, err)
	second, err := Build(in, 2012)
	require.NoError(t, err)

	assert.Equal(t, first.Rows(), second.Rows())
}
