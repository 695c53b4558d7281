package main

import "runtime"

// resolveWorkers determines how many files are converted at once.
// Priority: explicit flag or config > GOMAXPROCS-based calculation.
func resolveWorkers(requested, files int) int {
	n := requested
	if n <= 0 {
		// GOMAXPROCS is adjusted by automaxprocs for containers.
		n = runtime.GOMAXPROCS(0) / 2
		if n < 1 {
			n = 1
		}
		if n > 8 {
			n = 8
		}
	}
	if files > 0 && n > files {
		n = files
	}
	return n
}
