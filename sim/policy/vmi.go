package policy

// VMI implements vendor-managed inventory: when the Context supplies the
// downstream agent's true inventory and backlog, the policy replenishes on the
// downstream party's behalf, summing the downstream gap to a downstream target
// with its own gap to its own target. Deciding from true state instead of the
// distorted order signal removes one link of bullwhip amplification.
//
// Without downstream visibility the policy falls back to a plain base-stock
// calculation on its own state.
type VMI struct {
	targetDownstream int
	targetOwn        int
}

// NewVMI creates a VMI policy using the same target for the downstream party
// and for the policy owner.
func NewVMI(target int) *VMI {
	return &VMI{targetDownstream: target, targetOwn: target}
}

// NewVMIOptimal creates a VMI policy with newsvendor-derived targets.
func NewVMIOptimal(backlogCost, holdingCost, meanDemand, stdDevDemand float64, leadTime int) *VMI {
	return NewVMI(OptimalBaseStock(backlogCost, holdingCost, meanDemand, stdDevDemand, leadTime))
}

func (v *VMI) CalculateOrder(inventory, backlog, incomingDemand, supplyLine int, ctx Context) int {
	ownNet := inventory - backlog + supplyLine
	ownGap := v.targetOwn - ownNet

	if !ctx.HasDownstreamVisibility() {
		// Absent visibility is not an error: order as a plain base-stock
		// agent on local state.
		return clampOrder(float64(incomingDemand + ownGap))
	}

	downNet := *ctx.DownstreamInventory - *ctx.DownstreamBacklog
	downGap := v.targetDownstream - downNet

	return clampOrder(float64(downGap + ownGap))
}
