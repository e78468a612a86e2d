package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bullwhip-sim/bullwhip-sim/sim/policy"
)

// classicStepSchedule is the textbook trigger: 4 units per week, jumping to 8
// from week 5 on.
func classicStepSchedule(weeks int) []int {
	schedule := make([]int, weeks)
	for i := range schedule {
		if i < 4 {
			schedule[i] = 4
		} else {
			schedule[i] = 8
		}
	}
	return schedule
}

func runChain(t *testing.T, cfg Config, schedule []int, policies ...policy.OrderPolicy) *ChainSimulation {
	t.Helper()
	s, err := NewChainSimulation(cfg, schedule, policies)
	require.NoError(t, err)
	s.Run()
	return s
}

func TestComputeMetrics_CostsMatchHistory(t *testing.T) {
	s := runChain(t, DefaultConfig(), []int{4, 4, 4, 4, 8, 8, 8, 8},
		policy.NewBaseStock(15), policy.NewNaive(), policy.NewNaive(), policy.NewNaive())

	m := ComputeMetrics(s.History, []int{4, 4, 4, 4, 8, 8, 8, 8}, s.Config().Weeks)

	for _, role := range AllRoles() {
		assert.InDeltaf(t, s.TotalCostForRole(role), m.TotalCost[role], 1e-9, "%s", role)
	}
}

func TestComputeMetrics_DemandVarianceZeroPadsSchedule(t *testing.T) {
	// A schedule shorter than the horizon counts the missing weeks as zero
	// demand, exactly as the engine applies them.
	history := []Record{
		{Week: 1, Role: Retailer, OrderPlaced: 4},
		{Week: 2, Role: Retailer, OrderPlaced: 4},
		{Week: 3, Role: Retailer, OrderPlaced: 4},
		{Week: 4, Role: Retailer, OrderPlaced: 4},
	}

	m := ComputeMetrics(history, []int{4, 4}, 4)

	// Applied demand is [4 4 0 0]: mean 2, sample variance 16/3.
	assert.InDelta(t, 16.0/3.0, m.DemandVariance, 1e-9)
}

func TestComputeMetrics_AmplificationZeroWhenDemandFlat(t *testing.T) {
	history := []Record{
		{Week: 1, Role: Retailer, OrderPlaced: 2},
		{Week: 2, Role: Retailer, OrderPlaced: 8},
	}

	m := ComputeMetrics(history, []int{4, 4}, 2)

	assert.Zero(t, m.DemandVariance)
	assert.Zero(t, m.Amplification[Retailer], "ratio is undefined for flat demand, reported as 0")
	assert.InDelta(t, 18.0, m.OrderVariance[Retailer], 1e-9)
}

func TestComputeMetrics_BullwhipRatioGrowsUpstream(t *testing.T) {
	cfg := DefaultConfig()
	s := runChain(t, cfg, classicStepSchedule(cfg.Weeks),
		policy.NewBaseStock(15), policy.NewNaive(), policy.NewNaive(), policy.NewNaive())

	m := ComputeMetrics(s.History, classicStepSchedule(cfg.Weeks), cfg.Weeks)

	require.Greater(t, m.DemandVariance, 0.0)
	for _, role := range []Role{Wholesaler, Distributor, Manufacturer} {
		assert.Greaterf(t, m.Amplification[role], 1.0,
			"%s should amplify the demand signal", role)
	}
}

func TestOrderVarianceForRole(t *testing.T) {
	history := []Record{
		{Week: 1, Role: Retailer, OrderPlaced: 2},
		{Week: 1, Role: Wholesaler, OrderPlaced: 100},
		{Week: 2, Role: Retailer, OrderPlaced: 6},
		{Week: 2, Role: Wholesaler, OrderPlaced: 100},
	}

	// Retailer orders [2 6]: sample variance 8. The wholesaler's rows are
	// filtered out.
	assert.InDelta(t, 8.0, OrderVarianceForRole(history, Retailer), 1e-9)
	assert.Zero(t, OrderVarianceForRole(history, Wholesaler))
}
