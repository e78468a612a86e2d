// Package sim provides the discrete-time simulation engine for the four-stage
// beer-distribution supply chain.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - pipeline.go: the fixed-lag FIFO connecting stages (orders up, goods down)
//   - agent.go: one chain stage's receive -> fulfill -> decide state machine
//   - simulation.go: the lock-step weekly turn loop and history recording
//
// # Architecture
//
// The sim package owns the engine; concerns with their own surface live in
// sub-packages:
//   - sim/policy: the OrderPolicy contract and its variants (naive, random,
//     base-stock, Sterman, smoothing, VMI) plus newsvendor target sizing
//   - sim/demand: demand-schedule generation (constant, step, normal)
//   - sim/export: history sinks (CSV, SQLite)
//
// The engine is strictly single-threaded: one week's five phases complete for
// all four agents before the next week begins. Parallelism, if wanted for
// parameter sweeps, belongs across whole simulation runs, never inside one
// run's turn.
package sim
