package policy

// BaseStock is the textbook rational order-up-to policy. It targets a fixed
// net inventory position: each week it orders enough to cover the week's
// demand plus the shortfall to target, counting goods already in the pipe so
// they are not double-ordered.
type BaseStock struct {
	target int
}

// NewBaseStock creates a BaseStock policy with a fixed target position.
func NewBaseStock(target int) *BaseStock {
	return &BaseStock{target: target}
}

// NewBaseStockOptimal creates a BaseStock policy whose target is derived from
// the newsvendor model for the given cost rates, demand moments, and chain
// lead time.
func NewBaseStockOptimal(backlogCost, holdingCost, meanDemand, stdDevDemand float64, leadTime int) *BaseStock {
	return NewBaseStock(OptimalBaseStock(backlogCost, holdingCost, meanDemand, stdDevDemand, leadTime))
}

// Target returns the configured order-up-to level.
func (b *BaseStock) Target() int {
	return b.target
}

func (b *BaseStock) CalculateOrder(inventory, backlog, incomingDemand, supplyLine int, _ Context) int {
	// Net position counts goods on hand, owed, and already on the way.
	netPosition := inventory - backlog + supplyLine
	gap := b.target - netPosition

	// Overstock makes the gap negative and shrinks the order, never below 0.
	return clampOrder(float64(incomingDemand + gap))
}
