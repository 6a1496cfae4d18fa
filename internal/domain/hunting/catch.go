package hunting

import "errors"

var ErrInvalidCatchPolicy = errors.New("invalid catch policy")

// CatchPolicy turns gear, creature and location into a catch probability:
//
//	p = Base + PowerWeight*powerRatio + AttractionWeight*a/(a+AttractionHalf) - DifficultyPenalty*difficulty
//
// clamped to [MinChance, MaxChance]. powerRatio places the trap's power
// inside the meow's [MinPower, MaxPower] band.
type CatchPolicy struct {
	Base              float64
	PowerWeight       float64
	AttractionWeight  float64
	AttractionHalf    float64
	DifficultyPenalty float64
	MinChance         float64
	MaxChance         float64
}

func DefaultCatchPolicy() CatchPolicy {
	return CatchPolicy{
		Base:              0.30,
		PowerWeight:       0.40,
		AttractionWeight:  0.25,
		AttractionHalf:    50,
		DifficultyPenalty: 0.05,
		MinChance:         0.05,
		MaxChance:         0.95,
	}
}

func (p CatchPolicy) Validate() error {
	if p.PowerWeight < 0 || p.AttractionWeight < 0 || p.DifficultyPenalty < 0 || p.AttractionHalf <= 0 {
		return ErrInvalidCatchPolicy
	}
	if p.MinChance < 0 || p.MaxChance > 1 || p.MinChance > p.MaxChance {
		return ErrInvalidCatchPolicy
	}
	return nil
}

func powerRatio(power int, meow Meow) float64 {
	if meow.MaxPower <= meow.MinPower {
		if power >= meow.MinPower {
			return 1
		}
		return 0
	}
	r := float64(power-meow.MinPower) / float64(meow.MaxPower-meow.MinPower)
	return clamp(r, 0, 1)
}

func (p CatchPolicy) Chance(loadout Loadout, meow Meow, loc Location) float64 {
	attraction := float64(max(loadout.Attraction(), 0))
	difficulty := float64(max(loc.Difficulty, 0))
	chance := p.Base +
		p.PowerWeight*powerRatio(loadout.Power(), meow) +
		p.AttractionWeight*attraction/(attraction+p.AttractionHalf) -
		p.DifficultyPenalty*difficulty
	return clamp(chance, p.MinChance, p.MaxChance)
}

func (p CatchPolicy) Roll(chance float64, dice Dice) Outcome {
	if dice.Float64() < chance {
		return OutcomeCatch
	}
	return OutcomeMiss
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
