// Package policy defines the replenishment decision contract for supply chain
// agents and its interchangeable implementations.
//
// Each policy instance is bound 1:1 to a single agent. Policies may carry
// internal mutable forecasting state (see Smoothing), so an instance must
// never be shared across agents or across simulation runs.
package policy

// Context bundles optional supplemental visibility passed to every policy
// invocation. Nil fields mean "unknown", which is distinct from a visibility
// value of zero: a stage without VMI data must not treat its downstream
// partner as empty.
type Context struct {
	// DownstreamInventory is the downstream agent's true on-hand inventory.
	DownstreamInventory *int
	// DownstreamBacklog is the downstream agent's true backlog.
	DownstreamBacklog *int
	// CustomerDemand is the actual end-customer demand this week.
	CustomerDemand *int
}

// HasDownstreamVisibility reports whether both downstream fields are known.
func (c Context) HasDownstreamVisibility() bool {
	return c.DownstreamInventory != nil && c.DownstreamBacklog != nil
}

// OrderPolicy decides how much an agent orders from its upstream supplier.
//
// CalculateOrder is invoked once per week with the agent's post-fulfillment
// state. All inputs are non-negative; implementations must return a
// non-negative order quantity, clamping any negative intermediate result to 0.
type OrderPolicy interface {
	CalculateOrder(inventory, backlog, incomingDemand, supplyLine int, ctx Context) int
}

// clampOrder rounds a fractional order to the nearest unit and clamps it to 0.
// Goods are integral and cannot be negative; this is a domain rule, not an
// error condition.
func clampOrder(order float64) int {
	if order < 0 {
		return 0
	}
	return int(order + 0.5)
}
