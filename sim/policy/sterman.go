package policy

import "math"

// Sterman reproduces the empirically observed human ordering heuristic: it
// corrects the on-hand inventory gap and the supply-line gap with independent
// weights. With beta much smaller than alpha the decision maker under-weights
// goods already ordered, the behavioral flaw Sterman identified as a driver of
// oscillation and overshoot.
type Sterman struct {
	targetInventory  int
	targetSupplyLine int
	alpha            float64 // weight on the inventory gap
	beta             float64 // weight on the supply-line gap
}

// NewSterman creates a typical "human" agent for the given on-hand target:
// full weight on the inventory gap, a fifth of it on the pipeline gap, and a
// rough half-target guess for the desired supply line.
func NewSterman(targetInventory int) *Sterman {
	return NewStermanWeights(targetInventory, targetInventory/2, 1.0, 0.2)
}

// NewStermanWeights creates a Sterman policy with explicit targets and gap
// weights, so experiments can vary the under-weighting directly.
func NewStermanWeights(targetInventory, targetSupplyLine int, alpha, beta float64) *Sterman {
	return &Sterman{
		targetInventory:  targetInventory,
		targetSupplyLine: targetSupplyLine,
		alpha:            alpha,
		beta:             beta,
	}
}

// NewStermanOptimal sizes the total base stock with the newsvendor model and
// splits it between the pipeline (expected lead-time consumption) and on-hand
// stock (the remainder).
func NewStermanOptimal(backlogCost, holdingCost, meanDemand, stdDevDemand float64, leadTime int) *Sterman {
	total := OptimalBaseStock(backlogCost, holdingCost, meanDemand, stdDevDemand, leadTime)
	pipelineTarget := int(math.Round(meanDemand * float64(leadTime)))
	return NewStermanWeights(total-pipelineTarget, pipelineTarget, 1.0, 0.2)
}

func (s *Sterman) CalculateOrder(inventory, backlog, incomingDemand, supplyLine int, _ Context) int {
	netInventory := inventory - backlog

	inventoryGap := float64(s.targetInventory - netInventory)
	supplyLineGap := float64(s.targetSupplyLine - supplyLine)

	order := float64(incomingDemand) + s.alpha*inventoryGap + s.beta*supplyLineGap
	return clampOrder(order)
}
