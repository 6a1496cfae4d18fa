package hunting

import "gonum.org/v1/gonum/stat/sampleuv"

// DrawSpawn picks one meow from a spawn table with probability proportional
// to its spawn chance. Entries with a non-positive chance never appear. It
// returns false when nothing can be encountered.
func DrawSpawn(table []Spawn, dice Dice) (Spawn, bool) {
	candidates := make([]Spawn, 0, len(table))
	weights := make([]float64, 0, len(table))
	for _, s := range table {
		if s.SpawnChance <= 0 {
			continue
		}
		candidates = append(candidates, s)
		weights = append(weights, s.SpawnChance)
	}
	if len(candidates) == 0 {
		return Spawn{}, false
	}
	if len(candidates) == 1 {
		return candidates[0], true
	}
	idx, ok := sampleuv.NewWeighted(weights, dice).Take()
	if !ok {
		return Spawn{}, false
	}
	return candidates[idx], true
}
