package domain

// Summary holds the three narrative fields derived from the accumulated
// answers for the terminal screen. It is computed on demand, never persisted
// as user input, and never feeds back into branching.
type Summary struct {
	Strength   string `json:"strength"`
	GrowthArea string `json:"growth_area"`
	Direction  string `json:"direction"`
}
