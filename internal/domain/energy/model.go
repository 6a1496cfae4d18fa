package energy

import (
	"fmt"
	"math"
	"time"
)

// Refill is the outcome of applying regeneration to a stored energy value.
type Refill struct {
	Credited   int
	Energy     int
	LastRefill time.Time
	Intervals  int
	ReachedMax bool
}

func (r Refill) Changed() bool {
	return r.Credited > 0
}

func elapsedSince(lastRefill, now time.Time) time.Duration {
	elapsed := now.Sub(lastRefill)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func wholeIntervals(elapsed, interval time.Duration) int {
	if interval <= 0 {
		return 0
	}
	return int(elapsed / interval)
}

// Refillable returns how much energy may be credited right now, never more
// than the room left under the cap.
func (p Policy) Refillable(lastRefill time.Time, current int, now time.Time) int {
	p = p.OrDefault()
	room := p.Max - current
	if room <= 0 {
		return 0
	}
	earned := wholeIntervals(elapsedSince(lastRefill, now), p.Interval) * p.PerInterval
	if earned > room {
		return room
	}
	return earned
}

// Apply credits regenerated energy and advances lastRefill by the intervals
// actually consumed. The fractional remainder of an interval is kept so that
// progress toward the next unit is never lost. When the credit reaches the
// cap every whole interval is consumed, so nothing is banked while full.
func (p Policy) Apply(lastRefill time.Time, current int, now time.Time) Refill {
	p = p.OrDefault()
	elapsed := elapsedSince(lastRefill, now)
	out := Refill{Energy: current, LastRefill: lastRefill}
	credited := p.Refillable(lastRefill, current, now)
	if credited <= 0 {
		return out
	}

	available := wholeIntervals(elapsed, p.Interval)
	used := (credited + p.PerInterval - 1) / p.PerInterval
	out.Energy = current + credited
	if out.Energy >= p.Max {
		out.Energy = p.Max
		out.ReachedMax = true
		used = available
	}
	if used > available {
		used = available
	}
	out.Credited = credited
	out.Intervals = used
	out.LastRefill = lastRefill.Add(time.Duration(used) * p.Interval)
	return out
}

// NextRefillAt is the instant the next unit of energy becomes available. A
// full player gets lastRefill back unchanged.
func (p Policy) NextRefillAt(lastRefill time.Time, current int, now time.Time) time.Time {
	p = p.OrDefault()
	if current >= p.Max {
		return lastRefill
	}
	elapsed := elapsedSince(lastRefill, now)
	return now.Add(p.Interval - elapsed%p.Interval)
}

// Progress is the rounded fill percentage in [0, 100].
func (p Policy) Progress(current int) int {
	p = p.OrDefault()
	pct := int(math.Round(float64(current) / float64(p.Max) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func (p Policy) Clamp(current int) int {
	p = p.OrDefault()
	if current < 0 {
		return 0
	}
	if current > p.Max {
		return p.Max
	}
	return current
}

// FormatUntil renders the countdown shown next to the energy bar.
func FormatUntil(next, now time.Time) string {
	d := next.Sub(now)
	if d <= 0 {
		return "Now"
	}
	minutes := int(math.Ceil(d.Minutes()))
	hours := minutes / 60
	minutes %= 60
	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", minutes)
	case minutes == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
}
