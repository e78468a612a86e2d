package policy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaive_IdentityOnDemand(t *testing.T) {
	p := NewNaive()

	// Pass-through regardless of every other input.
	cases := []struct {
		inventory, backlog, demand, supplyLine int
	}{
		{0, 0, 0, 0},
		{100, 0, 7, 0},
		{0, 50, 7, 0},
		{3, 3, 7, 99},
		{15, 2, 0, 4},
	}
	for _, c := range cases {
		got := p.CalculateOrder(c.inventory, c.backlog, c.demand, c.supplyLine, Context{})
		assert.Equalf(t, c.demand, got, "inputs %+v", c)
	}
}

func TestRandom_WithinInclusiveBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p, err := NewRandom(3, 9, rng)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		got := p.CalculateOrder(0, 0, 0, 0, Context{})
		assert.GreaterOrEqual(t, got, 3)
		assert.LessOrEqual(t, got, 9)
	}
}

func TestRandom_SingletonRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p, err := NewRandom(5, 5, rng)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, 5, p.CalculateOrder(0, 0, 0, 0, Context{}))
	}
}

func TestRandom_MalformedRange_Refuses(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := NewRandom(9, 3, rng)
	assert.Error(t, err)

	_, err = NewRandom(-1, 3, rng)
	assert.Error(t, err)

	_, err = NewRandom(0, 3, nil)
	assert.Error(t, err)
}

func TestRandom_SameSeedSameSequence(t *testing.T) {
	draw := func() []int {
		p, err := NewRandom(0, 100, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		out := make([]int, 20)
		for i := range out {
			out[i] = p.CalculateOrder(0, 0, 0, 0, Context{})
		}
		return out
	}
	assert.Equal(t, draw(), draw())
}

func TestFactory_KnownNames(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	params := Params{
		Target:          15,
		Gamma:           0.3,
		InitialForecast: 4,
		Min:             0,
		Max:             10,
		Rand:            rng,
	}

	for _, name := range []string{"naive", "random", "base-stock", "sterman", "smoothing", "vmi"} {
		p, err := New(name, params)
		require.NoErrorf(t, err, "policy %q", name)
		require.NotNilf(t, p, "policy %q", name)
		assert.GreaterOrEqualf(t, p.CalculateOrder(10, 0, 4, 0, Context{}), 0, "policy %q order", name)
	}
}

func TestFactory_UnknownName_Refuses(t *testing.T) {
	_, err := New("genius", Params{})
	assert.Error(t, err)
}

func TestFactory_OptimalTargetVariants(t *testing.T) {
	params := Params{
		OptimalTarget:   true,
		HoldingCost:     0.5,
		BacklogCost:     1.0,
		MeanDemand:      4,
		StdDevDemand:    1,
		LeadTime:        4,
		Gamma:           0.3,
		InitialForecast: 4,
	}

	p, err := New("base-stock", params)
	require.NoError(t, err)
	bs, ok := p.(*BaseStock)
	require.True(t, ok)
	assert.Equal(t, OptimalBaseStock(1.0, 0.5, 4, 1, 4), bs.Target())
}

func TestContext_DownstreamVisibility(t *testing.T) {
	inv, backlog := 5, 0

	assert.False(t, Context{}.HasDownstreamVisibility())
	assert.False(t, Context{DownstreamInventory: &inv}.HasDownstreamVisibility())
	assert.True(t, Context{DownstreamInventory: &inv, DownstreamBacklog: &backlog}.HasDownstreamVisibility())
}
