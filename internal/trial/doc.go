// Package trial owns the Monte Carlo driver of the square-trial engine.
//
// Responsibilities: trial orchestration, statistics accumulation, and
// progress reporting. Key types: Runner, Config, Stats, Result.
//
// All randomness flows through the grid's seeded source so any run is
// reproducible from its reported seed.
package trial
