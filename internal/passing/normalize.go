package passing

import (
	"sort"

	"github.com/pfrederiksen/passing-stats/internal/season"
	"github.com/pfrederiksen/passing-stats/internal/stats"
)

// TopN is how many passers are shown and scored.
const TopN = 40

// FilterMinAttempts drops passers with fewer than season.MinAttempts
// attempts. Seasons up to 1970 are returned untouched.
func FilterMinAttempts(records []Record, year int) []Record {
	if !season.AppliesAttemptFilter(year) {
		return records
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Number(season.ColAttempts) >= season.MinAttempts {
			out = append(out, r)
		}
	}
	return out
}

// Rank orders records by passing yards, most first, and keeps at most n.
// Ties keep their input order.
func Rank(records []Record, n int) []Record {
	ranked := make([]Record, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Number(season.ColYards) > ranked[j].Number(season.ColYards)
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Normalize fills in Scores for every record. Means and deviations are taken
// over records itself, so the scores are relative to the displayed set.
func Normalize(records []Record, band season.Band) []Record {
	yards := column(records, season.ColYards)
	tds := column(records, season.ColTouchdowns)
	metric := column(records, band.Metric)

	ydsMean, ydsSD := stats.Mean(yards), stats.SampleStdDev(yards)
	tdMean, tdSD := stats.Mean(tds), stats.SampleStdDev(tds)
	mMean, mSD := stats.Mean(metric), stats.SampleStdDev(metric)

	out := make([]Record, len(records))
	for i, r := range records {
		yz := stats.ZScore(yards[i], ydsMean, ydsSD)
		tz := stats.ZScore(tds[i], tdMean, tdSD)
		mz := stats.ZScore(metric[i], mMean, mSD)

		r.Scores = Scores{
			Yards:      stats.Format(yz),
			Touchdowns: stats.Format(tz),
			Metric:     stats.Format(mz),
			Total:      stats.Format(yz + tz + mz),
		}
		out[i] = r
	}
	return out
}

func column(records []Record, name string) []float64 {
	vals := make([]float64, len(records))
	for i, r := range records {
		vals[i] = r.Number(name)
	}
	return vals
}
