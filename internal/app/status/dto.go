package status

import (
	"meowshunt/internal/app/shared/stateview"
	"meowshunt/internal/domain/hunting"
)

type Request struct {
	PlayerID string
	Username string
}

type PlayerView struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
	Gold     int    `json:"gold"`
	Exp      int    `json:"exp"`
}

type GearView struct {
	Trap         *hunting.Item `json:"trap"`
	Rug          *hunting.Item `json:"rug"`
	Bait         *hunting.Item `json:"bait"`
	Power        int           `json:"power"`
	Attraction   int           `json:"attraction"`
	BaitQuantity int           `json:"bait_quantity"`
	HuntReady    bool          `json:"hunt_ready"`
	MissingSlot  hunting.Slot  `json:"missing_slot,omitempty"`
}

type Response struct {
	Player   PlayerView           `json:"player"`
	Energy   stateview.EnergyView `json:"energy"`
	Rank     *hunting.Rank        `json:"rank"`
	NextRank *hunting.Rank        `json:"next_rank"`
	Location *hunting.Location    `json:"location"`
	Gear     GearView             `json:"gear"`
}
