// sim/simulation.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/bullwhip-sim/bullwhip-sim/sim/policy"
)

// Pipeline indices: connection i joins agent i (downstream) to agent i+1
// (upstream). Order pipelines carry orders upstream, shipment pipelines carry
// goods downstream.
const numConnections = NumStages - 1

// ChainSimulation is the orchestrator. It owns the four agents, the order,
// shipment, and production pipelines, the external demand schedule, and the
// recorded history, and drives the global turn loop in lock-step: every agent
// finishes a phase before any agent starts the next one.
type ChainSimulation struct {
	cfg Config

	// Agents in fixed role order: Retailer, Wholesaler, Distributor,
	// Manufacturer.
	Agents [NumStages]*Agent

	// orderPipes[i] carries agent i's orders up to agent i+1.
	orderPipes [numConnections]*DelayPipeline
	// shipmentPipes[i] carries agent i+1's shipments down to agent i.
	shipmentPipes [numConnections]*DelayPipeline
	// productionPipe models the manufacturer's own replenishment lead time;
	// it has no upstream partner to order from.
	productionPipe *DelayPipeline

	demand []int

	// CurrentWeek starts at 1 and advances once per completed step.
	CurrentWeek int

	// History holds 4 records per completed week, appended in role order.
	History []Record
}

// NewChainSimulation builds a simulation from its configuration, a demand
// schedule, and exactly one policy per stage in role order. A wrong policy
// count or an invalid configuration is a structural error: the simulation
// refuses to build rather than run with undefined wiring.
//
// The demand schedule may be shorter than the horizon; missing weeks count as
// zero demand.
func NewChainSimulation(cfg Config, demandSchedule []int, policies []policy.OrderPolicy) (*ChainSimulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	if len(policies) != NumStages {
		return nil, fmt.Errorf("need exactly %d policies (one per stage), got %d", NumStages, len(policies))
	}

	s := &ChainSimulation{
		cfg:         cfg,
		demand:      demandSchedule,
		CurrentWeek: 1,
		History:     make([]Record, 0, NumStages*cfg.Weeks),
	}

	for i, role := range AllRoles() {
		s.Agents[i] = NewAgent(role, cfg.InitialInventory, policies[i], cfg.HoldingCostRate, cfg.BacklogCostRate)
	}

	for i := 0; i < numConnections; i++ {
		op, err := NewDelayPipeline(cfg.OrderDelay)
		if err != nil {
			return nil, err
		}
		sp, err := NewDelayPipeline(cfg.ShipmentDelay)
		if err != nil {
			return nil, err
		}
		s.orderPipes[i] = op
		s.shipmentPipes[i] = sp
	}

	pp, err := NewDelayPipeline(cfg.ShipmentDelay)
	if err != nil {
		return nil, err
	}
	s.productionPipe = pp

	return s, nil
}

// Config returns the construction parameters of this simulation.
func (s *ChainSimulation) Config() Config {
	return s.cfg
}

// Run steps the simulation until the horizon is exceeded.
func (s *ChainSimulation) Run() {
	for s.CurrentWeek <= s.cfg.Weeks {
		s.Step()
	}
	logrus.Infof("[week %03d] Simulation ended, %d history records", s.CurrentWeek-1, len(s.History))
}

// Step advances the simulation by one week. Each phase completes for all
// agents before the next begins; within-turn ordering is load-bearing, since
// policies must see post-fulfillment state and never another agent's
// current-turn action.
func (s *ChainSimulation) Step() {
	week := s.CurrentWeek

	// Phase (a): pop arrivals. Everything observable this week was pushed at
	// least one delay ago.
	customerDemand := s.demandForWeek(week)

	var incomingOrders [numConnections]int
	for i := 0; i < numConnections; i++ {
		incomingOrders[i] = s.orderPipes[i].PopArrival()
	}

	var shipmentArrivals [NumStages]int
	for i := 0; i < numConnections; i++ {
		shipmentArrivals[i] = s.shipmentPipes[i].PopArrival()
	}
	shipmentArrivals[Manufacturer] = s.productionPipe.PopArrival()

	logrus.Debugf("[week %03d] demand=%d orders=%v shipments=%v", week, customerDemand, incomingOrders, shipmentArrivals)

	// Phase (b): receive. Inbound goods land before anyone ships.
	for i, agent := range s.Agents {
		agent.ReceiveShipment(shipmentArrivals[i])
	}

	// Phase (c): fulfill. The retailer serves the end customer; each upstream
	// agent serves the order popped in phase (a).
	var shipped [NumStages]int
	shipped[Retailer] = s.Agents[Retailer].ProcessOrder(customerDemand)
	for i := 0; i < numConnections; i++ {
		shipped[i+1] = s.Agents[i+1].ProcessOrder(incomingOrders[i])
	}

	// Phase (d): decide. Contexts are snapshotted for all agents before any
	// policy runs, so no decision can observe another stage's same-week order.
	contexts := s.buildContexts(customerDemand)
	var orders [NumStages]int
	for i, agent := range s.Agents {
		orders[i] = agent.MakeDecision(contexts[i])
	}

	// Phase (e): push departures. New orders flow upstream, shipments flow
	// downstream, and the manufacturer's order enters production.
	for i := 0; i < numConnections; i++ {
		s.orderPipes[i].PushDeparture(orders[i])
		s.shipmentPipes[i].PushDeparture(shipped[i+1])
	}
	s.productionPipe.PushDeparture(orders[Manufacturer])

	// Phase (f): record.
	for _, agent := range s.Agents {
		s.History = append(s.History, Record{
			Week:             week,
			Role:             agent.Role,
			Inventory:        agent.Inventory,
			Backlog:          agent.Backlog,
			OrderPlaced:      agent.LastOrderPlaced,
			IncomingDemand:   agent.LastOrderReceived,
			ShipmentSent:     agent.LastShipmentSent,
			ShipmentReceived: agent.LastShipmentReceived,
			Cost:             agent.CurrentCost(),
		})
	}

	// Phase (g): advance.
	s.CurrentWeek++
}

// demandForWeek returns the external demand for a 1-based week, treating weeks
// beyond the schedule as zero.
func (s *ChainSimulation) demandForWeek(week int) int {
	idx := week - 1
	if idx < 0 || idx >= len(s.demand) {
		return 0
	}
	return s.demand[idx]
}

// buildContexts snapshots the visibility bundle for every agent. Each
// non-retailer agent sees its downstream neighbor's true post-fulfillment
// inventory and backlog; every agent sees the week's actual customer demand.
// Only policies that understand the fields (VMI) read them.
func (s *ChainSimulation) buildContexts(customerDemand int) [NumStages]policy.Context {
	var contexts [NumStages]policy.Context
	demand := customerDemand
	for i := range s.Agents {
		contexts[i].CustomerDemand = &demand
		if i > 0 {
			downInv := s.Agents[i-1].Inventory
			downBacklog := s.Agents[i-1].Backlog
			contexts[i].DownstreamInventory = &downInv
			contexts[i].DownstreamBacklog = &downBacklog
		}
	}
	return contexts
}

// TotalCostForRole sums one stage's cost across the recorded history.
func (s *ChainSimulation) TotalCostForRole(role Role) float64 {
	total := 0.0
	for _, rec := range s.History {
		if rec.Role == role {
			total += rec.Cost
		}
	}
	return total
}

// TotalChainCost sums cost across the whole chain's recorded history.
func (s *ChainSimulation) TotalChainCost() float64 {
	total := 0.0
	for _, rec := range s.History {
		total += rec.Cost
	}
	return total
}

// CostBreakdown returns per-stage accumulated cost in role order.
func (s *ChainSimulation) CostBreakdown() []StageCost {
	breakdown := make([]StageCost, 0, NumStages)
	for _, role := range AllRoles() {
		breakdown = append(breakdown, StageCost{Role: role, Cost: s.TotalCostForRole(role)})
	}
	return breakdown
}
