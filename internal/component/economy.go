package component

// EconomyState is derived from (depth, penalized) and always replaced wholesale.
type EconomyState struct {
	Depth          int
	DiveCost       int
	TimeBudget     float64
	RewardQuantity int

	// Lookahead for depth+1, always unpenalized.
	NextDiveCost   int
	NextTimeBudget float64
}
