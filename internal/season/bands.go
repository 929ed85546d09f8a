package season

// leading columns are identical in every layout
func leading() []Column {
	return []Column{
		{Name: ColPlayer, Index: 1},
		{Name: ColTeam, Index: 3},
		{Name: ColGames, Index: 5, Numeric: true},
		{Name: ColStarts, Index: 6, Numeric: true},
		{Name: ColCompletions, Index: 8, Numeric: true},
		{Name: ColAttempts, Index: 9, Numeric: true},
		{Name: ColCompPct, Index: 10, Numeric: true},
		{Name: ColYards, Index: 11, Numeric: true},
		{Name: ColTouchdowns, Index: 12, Numeric: true},
		{Name: ColInts, Index: 14, Numeric: true},
	}
}

// Bands is the versioned schema table, oldest first. Pre-1978 pages lack the
// two sack columns, so the per-attempt, per-game and rating cells sit two
// positions to the left.
var Bands = []Band{
	{
		Version: "pre-1978",
		From:    Min,
		To:      1977,
		Metric:  ColRate,
		Columns: append(leading(),
			Column{Name: ColYardsPerAtt, Index: 17, Numeric: true},
			Column{Name: ColYardsPerG, Index: 20, Numeric: true},
			Column{Name: ColRate, Index: 21, Numeric: true},
		),
	},
	{
		Version: "1978-2005",
		From:    1978,
		To:      2005,
		Metric:  ColRate,
		Columns: append(leading(),
			Column{Name: ColYardsPerAtt, Index: 19, Numeric: true},
			Column{Name: ColYardsPerG, Index: 22, Numeric: true},
			Column{Name: ColRate, Index: 23, Numeric: true},
		),
	},
	{
		Version: "2006+",
		From:    2006,
		Metric:  ColQBR,
		Columns: append(leading(),
			Column{Name: ColYardsPerAtt, Index: 19, Numeric: true},
			Column{Name: ColYardsPerG, Index: 22, Numeric: true},
			Column{Name: ColRate, Index: 23, Numeric: true},
			Column{Name: ColQBR, Index: 24, Numeric: true},
		),
	},
}
