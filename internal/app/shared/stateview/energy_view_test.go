package stateview

import (
	"testing"
	"time"

	"meowshunt/internal/domain/energy"
	"meowshunt/internal/domain/hunting"
)

func TestDeriveEnergyView_Regenerating(t *testing.T) {
	last := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	now := last.Add(5 * time.Minute)
	v := DeriveEnergyView(energy.DefaultPolicy(), hunting.Profile{Energy: 6, LastEnergyRefill: last}, now)

	if v.Current != 6 || v.Max != 15 || v.Progress != 40 || v.Full {
		t.Fatalf("unexpected view: %+v", v)
	}
	if v.SecondsUntilNext != 600 || v.Countdown != "10m" {
		t.Fatalf("countdown = %d/%q, want 600/10m", v.SecondsUntilNext, v.Countdown)
	}
	if !v.NextRefillAt.Equal(last.Add(15 * time.Minute)) {
		t.Fatalf("next refill = %s", v.NextRefillAt)
	}
}

func TestDeriveEnergyView_Full(t *testing.T) {
	last := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	v := DeriveEnergyView(energy.DefaultPolicy(), hunting.Profile{Energy: 15, LastEnergyRefill: last}, last.Add(time.Hour))
	if !v.Full || v.Progress != 100 || v.SecondsUntilNext != 0 || v.Countdown != "" {
		t.Fatalf("unexpected full view: %+v", v)
	}
	if !v.NextRefillAt.Equal(last) {
		t.Fatalf("full next refill = %s, want %s", v.NextRefillAt, last)
	}
}
