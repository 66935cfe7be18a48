package gymstats

// SetEntry is one performed set. It has no identity beyond its position in a list.
type SetEntry struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// EmptySets returns n zeroed entries.
func EmptySets(n int) []SetEntry {
	if n < 0 {
		n = 0
	}
	return make([]SetEntry, n)
}

// PositiveWeights returns the weights of the sets that carried any weight.
func PositiveWeights(sets []SetEntry) []float64 {
	weights := make([]float64, 0, len(sets))
	for _, s := range sets {
		if s.Weight > 0 {
			weights = append(weights, s.Weight)
		}
	}
	return weights
}
