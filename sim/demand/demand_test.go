package demand

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Constant(t *testing.T) {
	schedule, err := Generate(&Spec{Pattern: PatternConstant, Value: 4}, 6, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4, 4, 4, 4, 4}, schedule)
}

func TestGenerate_Step(t *testing.T) {
	schedule, err := Generate(&Spec{Pattern: PatternStep, Low: 4, High: 8, StepWeek: 5}, 8, nil)
	require.NoError(t, err)
	// Weeks are 1-based: weeks 1-4 low, the jump lands on week 5.
	assert.Equal(t, []int{4, 4, 4, 4, 8, 8, 8, 8}, schedule)
}

func TestGenerate_StepAtWeekOne(t *testing.T) {
	schedule, err := Generate(&Spec{Pattern: PatternStep, Low: 2, High: 9, StepWeek: 1}, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{9, 9, 9}, schedule)
}

func TestGenerate_NormalIsClampedAndDeterministic(t *testing.T) {
	spec := &Spec{Pattern: PatternNormal, Mean: 2, StdDev: 10}

	first, err := Generate(spec, 200, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	second, err := Generate(spec, 200, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.Equal(t, first, second, "same seed must reproduce the schedule")
	for w, v := range first {
		assert.GreaterOrEqualf(t, v, 0, "week %d", w+1)
	}
}

func TestGenerate_NormalZeroStdDev(t *testing.T) {
	schedule, err := Generate(&Spec{Pattern: PatternNormal, Mean: 6, StdDev: 0}, 5, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, []int{6, 6, 6, 6, 6}, schedule)
}

func TestGenerate_NormalRequiresRNG(t *testing.T) {
	_, err := Generate(&Spec{Pattern: PatternNormal, Mean: 4, StdDev: 1}, 5, nil)
	assert.Error(t, err)
}

func TestGenerate_ZeroWeeks(t *testing.T) {
	schedule, err := Generate(&Spec{Pattern: PatternConstant, Value: 4}, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, schedule)
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"unknown pattern", Spec{Pattern: "sine"}},
		{"negative constant", Spec{Pattern: PatternConstant, Value: -1}},
		{"negative step level", Spec{Pattern: PatternStep, Low: -4, High: 8, StepWeek: 5}},
		{"step week before first week", Spec{Pattern: PatternStep, Low: 4, High: 8, StepWeek: 0}},
		{"negative std dev", Spec{Pattern: PatternNormal, Mean: 4, StdDev: -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.spec.Validate())
			_, err := Generate(&tc.spec, 10, rand.New(rand.NewSource(1)))
			assert.Error(t, err)
		})
	}
}

func TestClassic(t *testing.T) {
	assert.Equal(t, []int{4, 4, 4, 4, 8, 8}, Classic(6))
}

func TestConstant(t *testing.T) {
	assert.Equal(t, []int{7, 7, 7}, Constant(3, 7))
}

func TestMoments(t *testing.T) {
	mu, sigma := Moments([]int{4, 4, 8, 8})
	assert.InDelta(t, 6.0, mu, 1e-9)
	// Sample standard deviation with Bessel's correction.
	assert.InDelta(t, 2.3094010767585034, sigma, 1e-9)
}

func TestMoments_DegenerateSchedules(t *testing.T) {
	mu, sigma := Moments(nil)
	assert.Zero(t, mu)
	assert.Zero(t, sigma)

	mu, sigma = Moments([]int{5})
	assert.Equal(t, 5.0, mu)
	assert.Zero(t, sigma)
}
