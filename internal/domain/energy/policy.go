package energy

import (
	"errors"
	"time"
)

const (
	DefaultInterval    = 15 * time.Minute
	DefaultPerInterval = 1
	DefaultMax         = 15
)

var ErrInvalidPolicy = errors.New("invalid energy policy")

// Policy describes how fast energy regenerates and where it caps.
type Policy struct {
	Interval    time.Duration
	PerInterval int
	Max         int
}

func DefaultPolicy() Policy {
	return Policy{
		Interval:    DefaultInterval,
		PerInterval: DefaultPerInterval,
		Max:         DefaultMax,
	}
}

func (p Policy) Validate() error {
	if p.Interval <= 0 || p.PerInterval <= 0 || p.Max <= 0 {
		return ErrInvalidPolicy
	}
	return nil
}

// OrDefault fills zero fields with the default policy values.
func (p Policy) OrDefault() Policy {
	d := DefaultPolicy()
	if p.Interval <= 0 {
		p.Interval = d.Interval
	}
	if p.PerInterval <= 0 {
		p.PerInterval = d.PerInterval
	}
	if p.Max <= 0 {
		p.Max = d.Max
	}
	return p
}
