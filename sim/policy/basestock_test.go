package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseStock_OrdersDemandPlusGap(t *testing.T) {
	// GIVEN target 15 and a net position of 11 (inventory 11, no backlog,
	// nothing in the pipe)
	p := NewBaseStock(15)

	// WHEN demand is 4
	got := p.CalculateOrder(11, 0, 4, 0, Context{})

	// THEN the order covers demand plus the 4-unit shortfall to target
	assert.Equal(t, 8, got)
}

func TestBaseStock_SupplyLineNotDoubleOrdered(t *testing.T) {
	// GIVEN 12 units already in the pipe closing the gap entirely
	p := NewBaseStock(15)

	got := p.CalculateOrder(3, 0, 4, 12, Context{})

	// THEN only the demand itself is ordered
	assert.Equal(t, 4, got)
}

func TestBaseStock_BacklogDeepensTheGap(t *testing.T) {
	p := NewBaseStock(15)

	// Net position = 2 - 6 + 0 = -4, gap 19, demand 4.
	got := p.CalculateOrder(2, 6, 4, 0, Context{})
	assert.Equal(t, 23, got)
}

func TestBaseStock_Overstock_ClampsToZero(t *testing.T) {
	// GIVEN a position far above target
	p := NewBaseStock(15)

	got := p.CalculateOrder(40, 0, 4, 0, Context{})

	// THEN the negative raw order clamps to zero, never below
	assert.Equal(t, 0, got)
}

func TestBaseStock_AtTarget_OrdersExactlyDemand(t *testing.T) {
	p := NewBaseStock(15)

	for _, demand := range []int{0, 1, 4, 9} {
		got := p.CalculateOrder(15, 0, demand, 0, Context{})
		assert.Equalf(t, demand, got, "demand %d", demand)
	}
}

func TestBaseStockOptimal_TargetFromNewsvendor(t *testing.T) {
	p := NewBaseStockOptimal(1.0, 0.5, 4, 1, 4)

	assert.Equal(t, OptimalBaseStock(1.0, 0.5, 4, 1, 4), p.Target())
}
