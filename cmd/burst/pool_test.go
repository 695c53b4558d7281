package main

import (
	"runtime"
	"testing"
)

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	if got := resolveWorkers(3, 10); got != 3 {
		t.Errorf("explicit workers = %d, want 3", got)
	}
	if got := resolveWorkers(6, 2); got != 2 {
		t.Errorf("workers capped by files = %d, want 2", got)
	}

	auto := resolveWorkers(0, 100)
	if auto < 1 || auto > 8 {
		t.Errorf("auto workers = %d, want 1..8", auto)
	}
	if want := runtime.GOMAXPROCS(0) / 2; want >= 1 && want <= 8 && auto != want {
		t.Errorf("auto workers = %d, want GOMAXPROCS/2 = %d", auto, want)
	}
}
