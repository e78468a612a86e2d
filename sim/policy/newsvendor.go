package policy

import "math"

// Newsvendor sizing for order-up-to targets.
//
// Policies with a "with optimal target" constructor derive their target stock
// from these routines rather than an arbitrary constant: the critical ratio
// balances holding cost against stockout cost, and the target covers demand
// over the risk horizon at that service level.

// CriticalRatio returns the target service level b / (b + h), the probability
// of not stocking out that a cost-optimal policy aims for. Defined as 0 when
// both costs are zero.
func CriticalRatio(backlogCost, holdingCost float64) float64 {
	if backlogCost+holdingCost == 0 {
		return 0
	}
	return backlogCost / (backlogCost + holdingCost)
}

// InverseNormalCDF approximates the quantile function of the standard normal
// distribution using the Abramowitz-Stegun rational approximation (26.2.23).
// Absolute error is below 4.5e-4. Inputs outside (0, 1) are capped at +-5
// sigma.
func InverseNormalCDF(p float64) float64 {
	if p >= 1 {
		return 5
	}
	if p <= 0 {
		return -5
	}
	if p == 0.5 {
		return 0
	}

	// The rational approximation is valid for 0 < q <= 0.5; for p > 0.5 use
	// the symmetric tail and negate.
	q := p
	if p > 0.5 {
		q = 1 - p
	}

	t := math.Sqrt(-2 * math.Log(q))

	const (
		c0 = 2.515517
		c1 = 0.802853
		c2 = 0.010328

		d1 = 1.432788
		d2 = 0.189269
		d3 = 0.001308
	)

	num := c0 + c1*t + c2*t*t
	den := 1 + d1*t + d2*t*t + d3*t*t*t
	x := t - num/den

	if p < 0.5 {
		return -x
	}
	return x
}

// OptimalBaseStock returns the cost-optimal order-up-to level for the given
// cost rates and per-period demand moments.
//
// The risk horizon is leadTimePeriods + 1: stock ordered now must cover demand
// until the NEXT order can take effect, one review period after the lead time.
// Target = round(max(0, mu*horizon + z*sigma*sqrt(horizon))).
func OptimalBaseStock(backlogCost, holdingCost, meanDemand, stdDevDemand float64, leadTimePeriods int) int {
	cr := CriticalRatio(backlogCost, holdingCost)
	z := InverseNormalCDF(cr)

	horizon := float64(leadTimePeriods + 1)
	muL := meanDemand * horizon
	sigmaL := stdDevDemand * math.Sqrt(horizon)

	target := muL + z*sigmaL
	if target < 0 {
		return 0
	}
	return int(math.Round(target))
}
