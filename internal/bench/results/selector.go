package results

// Latest returns the set with the lexicographically greatest timestamp, or
// nil when sets is empty. Timestamps are expected unique per run; on a tie
// the later element wins, which keeps selection deterministic.
func Latest(sets []ResultSet) *ResultSet {
	if len(sets) == 0 {
		return nil
	}

	best := 0
	for i := 1; i < len(sets); i++ {
		if sets[i].Timestamp >= sets[best].Timestamp {
			best = i
		}
	}

	return &sets[best]
}
