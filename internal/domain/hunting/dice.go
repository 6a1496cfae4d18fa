package hunting

import "math/rand/v2"

// Dice is the randomness a hunt draws from. Implementations used from
// several goroutines must be safe for concurrent use.
type Dice interface {
	Uint64() uint64
	Float64() float64
}

type globalDice struct{}

func (globalDice) Uint64() uint64   { return rand.Uint64() }
func (globalDice) Float64() float64 { return rand.Float64() }

// DefaultDice draws from the runtime's shared generator.
func DefaultDice() Dice {
	return globalDice{}
}
