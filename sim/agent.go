package sim

import (
	"github.com/bullwhip-sim/bullwhip-sim/sim/policy"
)

// Agent is one stage of the chain. It owns its inventory, backlog, and
// supply-line state plus a bound decision policy, and steps through three
// ordered phases each week: receive, fulfill, decide. Agents never touch each
// other's fields; all cross-agent flow goes through the delay pipelines.
type Agent struct {
	Role Role

	// Physical state. Invariant: never negative.
	Inventory  int // goods on hand
	Backlog    int // unmet downstream demand carried forward
	SupplyLine int // goods ordered upstream but not yet arrived

	// Last-turn observability, used for reporting and as decision input only.
	LastOrderReceived    int // demand from downstream
	LastShipmentReceived int // goods from upstream
	LastOrderPlaced      int // this agent's most recent decision
	LastShipmentSent     int // goods sent downstream

	policy policy.OrderPolicy

	holdingCostRate float64
	backlogCostRate float64
}

// NewAgent creates an agent for the given role with its starting inventory and
// bound policy. The policy instance must be exclusive to this agent: policies
// carry per-agent forecasting state.
func NewAgent(role Role, initialInventory int, pol policy.OrderPolicy, holdingCostRate, backlogCostRate float64) *Agent {
	return &Agent{
		Role:            role,
		Inventory:       initialInventory,
		policy:          pol,
		holdingCostRate: holdingCostRate,
		backlogCostRate: backlogCostRate,
	}
}

// ReceiveShipment applies the week's inbound goods. Arriving goods leave the
// supply line; the supply line is clamped at zero in case goods arrive that
// predate this agent's bookkeeping (the initial pipeline contents).
func (a *Agent) ReceiveShipment(quantity int) {
	a.Inventory += quantity
	a.LastShipmentReceived = quantity

	if a.SupplyLine >= quantity {
		a.SupplyLine -= quantity
	} else {
		a.SupplyLine = 0
	}
}

// ProcessOrder fulfills the week's incoming order together with any carried
// backlog and returns the quantity shipped downstream.
//
// Old and new obligations are summed, not queued separately: backlog has
// priority exactly equal to fresh demand. If inventory covers the total, all
// of it ships and the backlog clears; otherwise everything on hand ships and
// the shortfall becomes the new backlog.
func (a *Agent) ProcessOrder(incomingOrder int) int {
	a.LastOrderReceived = incomingOrder

	totalDemand := incomingOrder + a.Backlog

	var shipped int
	if a.Inventory >= totalDemand {
		shipped = totalDemand
		a.Inventory -= totalDemand
		a.Backlog = 0
	} else {
		shipped = a.Inventory
		a.Backlog = totalDemand - a.Inventory
		a.Inventory = 0
	}

	a.LastShipmentSent = shipped
	return shipped
}

// MakeDecision asks the bound policy for the next order quantity, computed
// from the agent's current post-fulfillment state, and books the order into
// the supply line.
func (a *Agent) MakeDecision(ctx policy.Context) int {
	order := a.policy.CalculateOrder(a.Inventory, a.Backlog, a.LastOrderReceived, a.SupplyLine, ctx)
	if order < 0 {
		// Policies clamp themselves; guard anyway so a misbehaving policy
		// cannot corrupt the non-negativity invariant.
		order = 0
	}

	a.SupplyLine += order
	a.LastOrderPlaced = order
	return order
}

// CurrentCost returns this week's cost for the agent: holding cost on goods on
// hand plus backlog cost on unmet demand. Evaluated for reporting only; it
// never feeds back into decisions.
func (a *Agent) CurrentCost() float64 {
	return a.holdingCostRate*float64(a.Inventory) + a.backlogCostRate*float64(a.Backlog)
}

// NetPosition returns inventory minus backlog plus supply line, the quantity
// base-stock style policies steer toward their target.
func (a *Agent) NetPosition() int {
	return a.Inventory - a.Backlog + a.SupplyLine
}
