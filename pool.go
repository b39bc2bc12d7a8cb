package sprintreport

import (
	"runtime"
)

// Worker sizing constants for batch generation.
const (
	// MinWorkers ensures at least one worker is available.
	MinWorkers = 1

	// MaxWorkers caps concurrent generations; each holds a full
	// document in memory.
	MaxWorkers = 8
)

// ResolveWorkers determines the batch worker count.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs in containers.
	n := runtime.GOMAXPROCS(0)
	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
