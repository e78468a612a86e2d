package sim

import "fmt"

// Config groups the construction parameters of a chain simulation.
// All values are fixed at construction; nothing is runtime-mutable.
type Config struct {
	Weeks            int     // simulation horizon in weeks (must be >= 1)
	OrderDelay       int     // transit lag of order pipelines in weeks (must be >= 1)
	ShipmentDelay    int     // transit lag of shipment and production pipelines in weeks (must be >= 1)
	InitialInventory int     // starting on-hand inventory, applied uniformly to all 4 agents
	HoldingCostRate  float64 // cost per unit of on-hand inventory per week
	BacklogCostRate  float64 // cost per unit of unmet demand per week
}

// DefaultConfig returns the classic beer-game parameterization:
// 25 weeks, 2-week delays, 15 units starting stock, $0.50/$1.00 cost rates.
func DefaultConfig() Config {
	return Config{
		Weeks:            25,
		OrderDelay:       2,
		ShipmentDelay:    2,
		InitialInventory: 15,
		HoldingCostRate:  0.5,
		BacklogCostRate:  1.0,
	}
}

// Validate checks structural preconditions. A Config that fails validation
// must not be used to build a simulation.
func (c Config) Validate() error {
	if c.Weeks < 1 {
		return fmt.Errorf("weeks must be >= 1, got %d", c.Weeks)
	}
	if c.OrderDelay < 1 {
		return fmt.Errorf("order delay must be >= 1, got %d", c.OrderDelay)
	}
	if c.ShipmentDelay < 1 {
		return fmt.Errorf("shipment delay must be >= 1, got %d", c.ShipmentDelay)
	}
	if c.InitialInventory < 0 {
		return fmt.Errorf("initial inventory must be >= 0, got %d", c.InitialInventory)
	}
	if c.HoldingCostRate < 0 {
		return fmt.Errorf("holding cost rate must be >= 0, got %v", c.HoldingCostRate)
	}
	if c.BacklogCostRate < 0 {
		return fmt.Errorf("backlog cost rate must be >= 0, got %v", c.BacklogCostRate)
	}
	return nil
}

// LeadTime returns the total number of weeks between placing an order and the
// corresponding shipment's arrival (order transit plus shipment transit).
func (c Config) LeadTime() int {
	return c.OrderDelay + c.ShipmentDelay
}
