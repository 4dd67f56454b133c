package state

import (
	"testing"
	"time"
)

func TestDebouncerOnlyLastTriggerFires(t *testing.T) {
	d := NewDebouncer(5 * time.Millisecond)

	first := d.Trigger()
	second := d.Trigger()
	third := d.Trigger()

	for i, cmd := range []func() any{
		func() any { return first() },
		func() any { return second() },
	} {
		msg, ok := cmd().(RefreshMsg)
		if !ok {
			t.Fatalf("trigger %d produced unexpected message type", i)
		}
		if d.Ready(msg) {
			t.Fatalf("superseded trigger %d should not be ready", i)
		}
	}

	msg, ok := third().(RefreshMsg)
	if !ok {
		t.Fatal("expected RefreshMsg")
	}
	if !d.Ready(msg) {
		t.Fatal("expected the last trigger to be ready")
	}
}

func TestDebouncerNewBurstSupersedesDeliveredGeneration(t *testing.T) {
	d := NewDebouncer(time.Millisecond)

	cmd := d.Trigger()
	msg := cmd().(RefreshMsg)
	if !d.Ready(msg) {
		t.Fatal("expected single trigger to be ready")
	}

	d.Trigger()
	if d.Ready(msg) {
		t.Fatal("expected stale message to be rejected after a new burst")
	}
}

func TestDebouncerWaitsTheQuietInterval(t *testing.T) {
	interval := 30 * time.Millisecond
	d := NewDebouncer(interval)

	start := time.Now()
	cmd := d.Trigger()
	cmd()
	if elapsed := time.Since(start); elapsed < interval {
		t.Fatalf("refresh fired after %v, before the %v quiet interval", elapsed, interval)
	}
}
