package policy

// Naive is the pass-through policy: it orders exactly what was demanded of it,
// ignoring inventory, backlog, and the supply line. It is the baseline
// "no managerial intelligence" actor, used to isolate delay-driven bullwhip
// from decision-driven bullwhip.
type Naive struct{}

// NewNaive creates a Naive policy.
func NewNaive() *Naive {
	return &Naive{}
}

func (n *Naive) CalculateOrder(_, _, incomingDemand, _ int, _ Context) int {
	return incomingDemand
}
