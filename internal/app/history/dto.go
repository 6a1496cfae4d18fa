package history

import (
	"time"

	"meowshunt/internal/domain/hunting"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Request struct {
	PlayerID string
	Limit    int
	// Optional unix-second window, inclusive. Zero means unbounded.
	From int64
	To   int64
}

type Entry struct {
	ID           string          `json:"id" csv:"id"`
	CreatedAt    time.Time       `json:"created_at" csv:"-"`
	CreatedAtISO string          `json:"-" csv:"created_at"`
	LocationID   int64           `json:"location_id" csv:"location_id"`
	LocationName string          `json:"location_name" csv:"location"`
	MeowID       *int64          `json:"meow_id" csv:"-"`
	MeowName     string          `json:"meow_name,omitempty" csv:"meow"`
	Outcome      hunting.Outcome `json:"outcome" csv:"outcome"`
	BaitUsed     int64           `json:"bait_used" csv:"bait_id"`
	RewardGold   int             `json:"reward_gold" csv:"reward_gold"`
	RewardExp    int             `json:"reward_exp" csv:"reward_exp"`
}

type Response struct {
	Hunts   []Entry `json:"hunts"`
	Catches int     `json:"catches"`
	Misses  int     `json:"misses"`
}
