package hunt

import (
	"time"

	"meowshunt/internal/domain/hunting"
)

type Request struct {
	PlayerID string
	Username string
}

type Rewards struct {
	Gold int `json:"gold"`
	Exp  int `json:"exp"`
}

type DisplayMeow struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Rarity   string `json:"rarity"`
}

type Response struct {
	HuntID      string          `json:"hunt_id"`
	Outcome     hunting.Outcome `json:"outcome"`
	Rewards     Rewards         `json:"rewards"`
	DisplayMeow *DisplayMeow    `json:"display_meow"`
	Energy      int             `json:"energy"`
}

// State tracks how far a hunt got. Any failed check ends in StateRejected.
type State string

const (
	StateIdle             State = "idle"
	StateEnergyChecked    State = "energy_checked"
	StateEquipmentChecked State = "equipment_checked"
	StateOutcomeRolled    State = "outcome_rolled"
	StateRewardApplied    State = "reward_applied"
	StateRecorded         State = "recorded"
	StateRejected         State = "rejected"
)

type HuntInput struct {
	PlayerID string
	Username string
	NowAt    time.Time
}

type HuntView struct {
	Profile   hunting.Profile
	Equipment hunting.Equipment
	Loadout   hunting.Loadout
	Location  hunting.Location
	// Version the profile had when it was loaded for this hunt.
	LoadedVersion int64
}

type HuntTmp struct {
	Spawn       hunting.Spawn
	Encountered bool
	Chance      float64
	Outcome     hunting.Outcome
	Record      hunting.HuntRecord
}

type HuntContext struct {
	State State
	In    HuntInput
	View  HuntView
	Tmp   HuntTmp
}
