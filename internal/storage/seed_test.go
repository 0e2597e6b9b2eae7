package storage

import (
	"reflect"
	"testing"
	"time"
)

func TestSeedPlansAreStable(t *testing.T) {
	a := SeedPlans()
	b := SeedPlans()
	if !reflect.DeepEqual(a, b) {
		t.Error("SeedPlans() is not deterministic")
	}

	if len(a) != 3 {
		t.Fatalf("expected 3 seed plans, got %d", len(a))
	}
	for _, plan := range a {
		if err := plan.Validate(); err != nil {
			t.Errorf("seed plan %s fails validation: %v", plan.Name, err)
		}
		if len(plan.Exercises) != 3 {
			t.Errorf("expected 3 exercises in plan %s, got %d", plan.Name, len(plan.Exercises))
		}
	}
}

func TestSeedLogs(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.Local)

	a := SeedLogs(now)
	b := SeedLogs(now)
	if !reflect.DeepEqual(a, b) {
		t.Error("SeedLogs() is not deterministic for a fixed clock")
	}

	// 14 days minus rest days 3, 7, 11
	if len(a) != 11 {
		t.Fatalf("expected 11 seed logs, got %d", len(a))
	}

	for _, log := range a {
		if err := log.Validate(); err != nil {
			t.Errorf("seed log %s fails validation: %v", log.ID, err)
		}
		if log.Date.After(now) {
			t.Errorf("seed log %s dated in the future: %v", log.ID, log.Date)
		}
	}

	// most recent first, with the newest dated today
	if !a[0].Date.Equal(now) {
		t.Errorf("expected first seed log dated now, got %v", a[0].Date)
	}
	for i := 1; i < len(a); i++ {
		if a[i].Date.After(a[i-1].Date) {
			t.Errorf("seed logs out of order at index %d", i)
		}
	}

	if a[0].Notes == "" {
		t.Error("expected a note on today's seed log")
	}
}
