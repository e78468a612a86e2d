// Package demand generates external demand schedules for the chain
// simulation: ordered sequences of non-negative integers, one per week.
package demand

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// PatternType names a demand pattern.
type PatternType string

const (
	// PatternConstant repeats one value every week.
	PatternConstant PatternType = "constant"
	// PatternStep holds a low value, then jumps to a high value at a given
	// week. The classic beer-game trigger for the bullwhip effect.
	PatternStep PatternType = "step"
	// PatternNormal draws each week from a normal distribution, rounded and
	// clamped at zero.
	PatternNormal PatternType = "normal"
)

// Spec describes a demand pattern. Only the fields for the chosen pattern are
// read.
type Spec struct {
	Pattern PatternType `yaml:"pattern"`

	// Constant pattern.
	Value int `yaml:"value"`

	// Step pattern: weeks before StepWeek get Low, the rest get High.
	// Weeks are 1-based.
	Low      int `yaml:"low"`
	High     int `yaml:"high"`
	StepWeek int `yaml:"step_week"`

	// Normal pattern.
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"std_dev"`
}

// Validate checks the spec's structural preconditions.
func (s *Spec) Validate() error {
	switch s.Pattern {
	case PatternConstant:
		if s.Value < 0 {
			return fmt.Errorf("constant demand value must be >= 0, got %d", s.Value)
		}
	case PatternStep:
		if s.Low < 0 || s.High < 0 {
			return fmt.Errorf("step demand levels must be >= 0, got low=%d high=%d", s.Low, s.High)
		}
		if s.StepWeek < 1 {
			return fmt.Errorf("step week must be >= 1, got %d", s.StepWeek)
		}
	case PatternNormal:
		if s.StdDev < 0 {
			return fmt.Errorf("demand std dev must be >= 0, got %v", s.StdDev)
		}
	default:
		return fmt.Errorf("unknown demand pattern %q; valid patterns: [constant, step, normal]", s.Pattern)
	}
	return nil
}

// Generate produces a schedule of the given length from the spec. The RNG is
// only consulted for the normal pattern; pass the simulation's demand
// subsystem RNG for reproducible runs.
func Generate(spec *Spec, weeks int, rng *rand.Rand) ([]int, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid demand spec: %w", err)
	}
	if weeks <= 0 {
		return nil, nil
	}

	schedule := make([]int, weeks)
	switch spec.Pattern {
	case PatternConstant:
		for w := range schedule {
			schedule[w] = spec.Value
		}
	case PatternStep:
		for w := range schedule {
			if w+1 < spec.StepWeek {
				schedule[w] = spec.Low
			} else {
				schedule[w] = spec.High
			}
		}
	case PatternNormal:
		if rng == nil {
			return nil, fmt.Errorf("normal demand pattern requires an RNG")
		}
		for w := range schedule {
			val := rng.NormFloat64()*spec.StdDev + spec.Mean
			rounded := int(math.Round(val))
			if rounded < 0 {
				rounded = 0
			}
			schedule[w] = rounded
		}
	}
	return schedule, nil
}

// Classic returns the textbook MIT beer-game schedule: demand 4 for the first
// four weeks, then a sudden jump to 8.
func Classic(weeks int) []int {
	schedule, _ := Generate(&Spec{Pattern: PatternStep, Low: 4, High: 8, StepWeek: 5}, weeks, nil)
	return schedule
}

// Constant returns a flat schedule of the given value.
func Constant(weeks, value int) []int {
	schedule, _ := Generate(&Spec{Pattern: PatternConstant, Value: value}, weeks, nil)
	return schedule
}

// Moments returns the sample mean and standard deviation of a schedule, the
// inputs the newsvendor target sizing expects. Returns zeros for an empty
// schedule.
func Moments(schedule []int) (mu, sigma float64) {
	if len(schedule) == 0 {
		return 0, 0
	}
	if len(schedule) == 1 {
		return float64(schedule[0]), 0
	}
	values := make([]float64, len(schedule))
	for i, v := range schedule {
		values[i] = float64(v)
	}
	return stat.MeanStdDev(values, nil)
}
