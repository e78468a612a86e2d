package policy

import "fmt"

// Smoothing orders against an exponentially smoothed demand forecast instead
// of the raw last-seen value, dampening the reaction to single-week spikes.
// The forecast is internal mutable state scoped to the one agent the policy
// is bound to.
type Smoothing struct {
	avgDemand float64 // the forecast, updated every call
	gamma     float64 // smoothing factor: low = stable, high = reactive
	target    int
}

// NewSmoothing creates a Smoothing policy. gamma must lie strictly between
// 0 and 1; the ends would either freeze the forecast or reduce it to the raw
// demand signal.
func NewSmoothing(initialForecast, gamma float64, target int) (*Smoothing, error) {
	if gamma <= 0 || gamma >= 1 {
		return nil, fmt.Errorf("smoothing factor must be in (0, 1), got %v", gamma)
	}
	return &Smoothing{avgDemand: initialForecast, gamma: gamma, target: target}, nil
}

// NewSmoothingOptimal creates a Smoothing policy with a newsvendor-derived
// target stock level.
func NewSmoothingOptimal(initialForecast, gamma, backlogCost, holdingCost, meanDemand, stdDevDemand float64, leadTime int) (*Smoothing, error) {
	target := OptimalBaseStock(backlogCost, holdingCost, meanDemand, stdDevDemand, leadTime)
	return NewSmoothing(initialForecast, gamma, target)
}

// Forecast returns the current smoothed demand estimate.
func (s *Smoothing) Forecast() float64 {
	return s.avgDemand
}

func (s *Smoothing) CalculateOrder(inventory, backlog, incomingDemand, supplyLine int, _ Context) int {
	// Update the forecast first; the week's demand is evidence.
	s.avgDemand = s.gamma*float64(incomingDemand) + (1-s.gamma)*s.avgDemand

	position := (inventory - backlog) + supplyLine

	// The inventory correction is dampened by gamma as well, so a position
	// deficit is closed gradually rather than in one panic order.
	correction := float64(s.target-position) * s.gamma

	return clampOrder(s.avgDemand + correction)
}
