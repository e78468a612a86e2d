package sim

// Record captures one agent's state at the end of one simulated week. The
// history log holds exactly one Record per agent per completed week, appended
// in role order, and is the only source for post-run aggregate queries --
// costs are never recomputed from live agent state.
type Record struct {
	Week             int
	Role             Role
	Inventory        int
	Backlog          int
	OrderPlaced      int
	IncomingDemand   int
	ShipmentSent     int
	ShipmentReceived int
	Cost             float64
}

// StageCost pairs a role with its accumulated cost, for breakdown reporting.
type StageCost struct {
	Role Role
	Cost float64
}
