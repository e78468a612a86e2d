package policy

import (
	"fmt"
	"math/rand"
)

// Random orders a uniformly random amount within [min, max], inclusive.
// It models an unpredictable actor for stability and robustness testing.
type Random struct {
	min, max int
	rng      *rand.Rand
}

// NewRandom creates a Random policy drawing from the given RNG. The RNG should
// come from the simulation's PartitionedRNG so runs stay reproducible.
func NewRandom(min, max int, rng *rand.Rand) (*Random, error) {
	if min < 0 {
		return nil, fmt.Errorf("random policy min must be >= 0, got %d", min)
	}
	if min > max {
		return nil, fmt.Errorf("random policy requires min <= max, got min=%d max=%d", min, max)
	}
	if rng == nil {
		return nil, fmt.Errorf("random policy requires a non-nil RNG")
	}
	return &Random{min: min, max: max, rng: rng}, nil
}

func (r *Random) CalculateOrder(_, _, _, _ int, _ Context) int {
	return r.min + r.rng.Intn(r.max-r.min+1)
}
