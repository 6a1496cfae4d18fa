package hunting

// SelectRank returns the highest rank whose requirement exp satisfies. Ranks
// with equal requirements are ordered by ordinal, then id, and the last one
// wins so the result never depends on input order.
func SelectRank(ranks []Rank, exp int) (Rank, bool) {
	var (
		best  Rank
		found bool
	)
	for _, r := range ranks {
		if r.ExpRequired > exp {
			continue
		}
		if !found || rankAfter(r, best) {
			best = r
			found = true
		}
	}
	return best, found
}

// LowestRank is the rank a fresh profile starts with.
func LowestRank(ranks []Rank) (Rank, bool) {
	var (
		low   Rank
		found bool
	)
	for _, r := range ranks {
		if !found || rankAfter(low, r) {
			low = r
			found = true
		}
	}
	return low, found
}

func rankAfter(a, b Rank) bool {
	if a.ExpRequired != b.ExpRequired {
		return a.ExpRequired > b.ExpRequired
	}
	if a.Ordinal != b.Ordinal {
		return a.Ordinal > b.Ordinal
	}
	return a.ID > b.ID
}
