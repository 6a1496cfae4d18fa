package hunt

import (
	"errors"

	"meowshunt/internal/app/ports"
	"meowshunt/internal/domain/hunting"
)

var (
	ErrInsufficientEnergy  = errors.New("insufficient energy")
	ErrEquipmentIncomplete = errors.New("equipment incomplete")
	ErrInsufficientBait    = errors.New("insufficient bait")
	ErrNoLocationSelected  = ports.ErrNoLocationSelected
)

type EquipmentIncompleteError struct {
	Slot hunting.Slot
}

func (e *EquipmentIncompleteError) Error() string {
	return ErrEquipmentIncomplete.Error() + ": missing " + string(e.Slot)
}

func (e *EquipmentIncompleteError) Unwrap() error {
	return ErrEquipmentIncomplete
}

// rejectionReason labels errors a player can fix. Empty means the failure
// was not the player's doing.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ports.ErrNotAuthenticated):
		return "not_authenticated"
	case errors.Is(err, ErrInsufficientEnergy):
		return "insufficient_energy"
	case errors.Is(err, ErrEquipmentIncomplete):
		return "equipment_incomplete"
	case errors.Is(err, ErrInsufficientBait):
		return "insufficient_bait"
	case errors.Is(err, ErrNoLocationSelected):
		return "no_location_selected"
	}
	return ""
}
