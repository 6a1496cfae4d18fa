package stateview

import (
	"time"

	"meowshunt/internal/domain/energy"
	"meowshunt/internal/domain/hunting"
)

type EnergyView struct {
	Current          int       `json:"current"`
	Max              int       `json:"max"`
	Progress         int       `json:"progress"`
	Full             bool      `json:"full"`
	LastRefill       time.Time `json:"last_refill"`
	NextRefillAt     time.Time `json:"next_refill_at"`
	SecondsUntilNext int       `json:"seconds_until_next"`
	Countdown        string    `json:"countdown"`
}

// DeriveEnergyView expects a profile that was already refilled at now.
func DeriveEnergyView(policy energy.Policy, p hunting.Profile, now time.Time) EnergyView {
	policy = policy.OrDefault()
	current := policy.Clamp(p.Energy)
	view := EnergyView{
		Current:    current,
		Max:        policy.Max,
		Progress:   policy.Progress(current),
		Full:       current >= policy.Max,
		LastRefill: p.LastEnergyRefill,
	}
	view.NextRefillAt = policy.NextRefillAt(p.LastEnergyRefill, current, now)
	if !view.Full {
		view.SecondsUntilNext = int(view.NextRefillAt.Sub(now).Round(time.Second) / time.Second)
		view.Countdown = energy.FormatUntil(view.NextRefillAt, now)
	}
	return view
}
