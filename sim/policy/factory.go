package policy

import (
	"fmt"
	"math/rand"
)

// Params carries every knob a policy variant can take. Each variant reads the
// fields it understands and ignores the rest, so one struct can configure a
// whole chain of mixed policies from flags or a scenario file.
type Params struct {
	Target           int     // order-up-to level (base-stock, smoothing, vmi, sterman on-hand target)
	TargetSupplyLine int     // sterman pipeline target (0 = derive as Target/2)
	Alpha            float64 // sterman inventory-gap weight (0 = default 1.0)
	Beta             float64 // sterman supply-line-gap weight (0 = default 0.2)
	Gamma            float64 // smoothing factor
	InitialForecast  float64 // smoothing starting forecast
	Min, Max         int     // random policy bounds, inclusive
	Rand             *rand.Rand

	// OptimalTarget switches Target derivation to the newsvendor model using
	// the cost and demand fields below.
	OptimalTarget bool
	HoldingCost   float64
	BacklogCost   float64
	MeanDemand    float64
	StdDevDemand  float64
	LeadTime      int
}

// New creates an order policy by name. Valid names: "naive", "random",
// "base-stock", "sterman", "smoothing", "vmi". Unknown names and malformed
// parameters are construction errors, surfaced before any simulation runs.
func New(name string, p Params) (OrderPolicy, error) {
	switch name {
	case "naive":
		return NewNaive(), nil
	case "random":
		return NewRandom(p.Min, p.Max, p.Rand)
	case "base-stock":
		if p.OptimalTarget {
			return NewBaseStockOptimal(p.BacklogCost, p.HoldingCost, p.MeanDemand, p.StdDevDemand, p.LeadTime), nil
		}
		return NewBaseStock(p.Target), nil
	case "sterman":
		if p.OptimalTarget {
			return NewStermanOptimal(p.BacklogCost, p.HoldingCost, p.MeanDemand, p.StdDevDemand, p.LeadTime), nil
		}
		alpha, beta := p.Alpha, p.Beta
		if alpha == 0 && beta == 0 {
			alpha, beta = 1.0, 0.2
		}
		targetSL := p.TargetSupplyLine
		if targetSL == 0 {
			targetSL = p.Target / 2
		}
		return NewStermanWeights(p.Target, targetSL, alpha, beta), nil
	case "smoothing":
		if p.OptimalTarget {
			return NewSmoothingOptimal(p.InitialForecast, p.Gamma, p.BacklogCost, p.HoldingCost, p.MeanDemand, p.StdDevDemand, p.LeadTime)
		}
		return NewSmoothing(p.InitialForecast, p.Gamma, p.Target)
	case "vmi":
		if p.OptimalTarget {
			return NewVMIOptimal(p.BacklogCost, p.HoldingCost, p.MeanDemand, p.StdDevDemand, p.LeadTime), nil
		}
		return NewVMI(p.Target), nil
	default:
		return nil, fmt.Errorf("unknown order policy %q; valid policies: [naive, random, base-stock, sterman, smoothing, vmi]", name)
	}
}
