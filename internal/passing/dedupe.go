package passing

// Dedupe keeps one record per player name. A later multi-team aggregate line
// replaces the record already kept for that player, in place; any other
// repeat is dropped, so the first line seen wins.
func Dedupe(records []Record) []Record {
	seen := make(map[string]int, len(records))
	kept := make([]Record, 0, len(records))

	for _, rec := range records {
		name := rec.Player()
		i, ok := seen[name]
		if !ok {
			seen[name] = len(kept)
			kept = append(kept, rec)
			continue
		}
		if IsAggregateTeam(rec.Team()) {
			kept[i] = rec
		}
	}

	return kept
}
