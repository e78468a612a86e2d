// Aggregates end-of-run statistics about a completed simulation:
// per-stage cost, order variance, and the bullwhip amplification ratio.

package sim

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Metrics summarizes a completed run for final reporting. Everything here is
// a pure reduction over the recorded history and the demand schedule; nothing
// reads live agent state, so the summary stays valid after the run ends.
type Metrics struct {
	TotalCost     map[Role]float64 // accumulated cost per stage
	OrderVariance map[Role]float64 // sample variance of each stage's weekly orders

	// DemandVariance is the sample variance of the external customer demand
	// actually applied (schedule truncated or zero-padded to the horizon).
	DemandVariance float64

	// Amplification is OrderVariance / DemandVariance per stage: the bullwhip
	// ratio. Zero when demand variance is zero.
	Amplification map[Role]float64
}

// ComputeMetrics reduces a simulation's history into a Metrics summary.
func ComputeMetrics(history []Record, demandSchedule []int, weeks int) *Metrics {
	m := &Metrics{
		TotalCost:     make(map[Role]float64),
		OrderVariance: make(map[Role]float64),
		Amplification: make(map[Role]float64),
	}

	ordersByRole := make(map[Role][]float64)
	for _, rec := range history {
		m.TotalCost[rec.Role] += rec.Cost
		ordersByRole[rec.Role] = append(ordersByRole[rec.Role], float64(rec.OrderPlaced))
	}

	applied := make([]float64, weeks)
	for w := 0; w < weeks && w < len(demandSchedule); w++ {
		applied[w] = float64(demandSchedule[w])
	}
	m.DemandVariance = stat.Variance(applied, nil)

	for role, orders := range ordersByRole {
		v := stat.Variance(orders, nil)
		m.OrderVariance[role] = v
		if m.DemandVariance > 0 {
			m.Amplification[role] = v / m.DemandVariance
		}
	}

	return m
}

// OrderVarianceForRole extracts one stage's order sequence from history and
// returns its sample variance. Convenience for tests and ad-hoc analysis.
func OrderVarianceForRole(history []Record, role Role) float64 {
	var orders []float64
	for _, rec := range history {
		if rec.Role == role {
			orders = append(orders, float64(rec.OrderPlaced))
		}
	}
	return stat.Variance(orders, nil)
}

// Print displays the summary at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	totalChain := 0.0
	for _, role := range AllRoles() {
		fmt.Printf("%-12s : cost $%.2f, order variance %.2f, amplification %.2fx\n",
			role, m.TotalCost[role], m.OrderVariance[role], m.Amplification[role])
		totalChain += m.TotalCost[role]
	}
	fmt.Printf("Demand variance      : %.2f\n", m.DemandVariance)
	fmt.Printf("Total chain cost     : $%.2f\n", totalChain)
}
