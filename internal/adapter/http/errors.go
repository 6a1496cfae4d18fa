package httpadapter

import (
	"errors"

	"meowshunt/internal/app/equipment"
	"meowshunt/internal/app/history"
	"meowshunt/internal/app/hunt"
	"meowshunt/internal/app/inventory"
	"meowshunt/internal/app/location"
	"meowshunt/internal/app/ports"
	"meowshunt/internal/app/shop"
	"meowshunt/internal/domain/hunting"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const (
	CodeNotAuthenticated     = "not_authenticated"
	CodeMissingTrap          = "missing_trap"
	CodeMissingRug           = "missing_rug"
	CodeMissingBait          = "missing_bait"
	CodeInsufficientEnergy   = "insufficient_energy"
	CodeInsufficientBait     = "insufficient_bait"
	CodeNoLocationSelected   = "no_location_selected"
	CodeLocationLocked       = "location_locked"
	CodeInsufficientGold     = "insufficient_gold"
	CodeItemNotAvailable     = "item_not_available"
	CodeItemSlotMismatch     = "item_slot_mismatch"
	CodeItemNotOwned         = "item_not_owned"
	CodeInsufficientQuantity = "insufficient_quantity"
	CodeBadRequest           = "bad_request"
	CodeInvalidJSON          = "invalid_json"
	CodeNotFound             = "not_found"
	CodeConflict             = "conflict"
	CodeRateLimited          = "rate_limited"
	CodeInternal             = "internal_error"
)

type errorText struct {
	Title   string
	Message string
	Action  string
}

var errorTexts = map[string]errorText{
	CodeNotAuthenticated:     {"Authentication Required", "You need to be logged in to perform this action!", "Please sign in to continue"},
	CodeMissingTrap:          {"Missing Trap", "You need a trap to hunt Meows!", "Visit the shop to purchase a trap"},
	CodeMissingRug:           {"Missing Rug", "A rug helps attract Meows to your trap!", "Visit the shop to purchase a rug"},
	CodeMissingBait:          {"Missing Bait", "Bait increases your chances of catching Meows!", "Visit the shop to purchase bait"},
	CodeInsufficientEnergy:   {"Out of Energy", "You need energy to hunt Meows!", "Wait for energy to regenerate"},
	CodeInsufficientBait:     {"Out of Bait", "You have no more of your equipped bait!", "Buy more bait or equip a different one"},
	CodeNoLocationSelected:   {"No Location", "You need to pick a location first!", "Choose a hunting location"},
	CodeLocationLocked:       {"Location Locked", "You don't have access to this location yet!", "Earn more experience to unlock it"},
	CodeInsufficientGold:     {"Insufficient Gold", "You don't have enough gold for this purchase!", "Hunt more Meows to earn gold"},
	CodeItemNotAvailable:     {"Item Unavailable", "This item is not sold here!", "Try the shop at another location"},
	CodeItemSlotMismatch:     {"Wrong Slot", "That item does not fit this slot!", "Pick an item of the matching type"},
	CodeItemNotOwned:         {"Item Not Owned", "You don't own that item!", "Visit the shop to purchase it"},
	CodeInsufficientQuantity: {"Insufficient Quantity", "You don't have enough of this item!", "Check your inventory or purchase more"},
	CodeBadRequest:           {"Invalid Input", "Please check your input and try again!", "Review the request and correct any errors"},
	CodeInvalidJSON:          {"Invalid Input", "The request body is not valid JSON!", "Review the request and correct any errors"},
	CodeNotFound:             {"Not Found", "That does not exist!", "Check the id and try again"},
	CodeConflict:             {"Busy", "Your last action is still being processed!", "Try again in a moment"},
	CodeRateLimited:          {"Slow Down", "You are hunting too fast!", "Wait a moment before hunting again"},
	CodeInternal:             {"Something Went Wrong", "An unexpected error occurred!", "Try refreshing the page or contact support"},
}

// describeError maps an error to its HTTP status, code and optional
// structured details.
func describeError(err error) (int, string, map[string]any) {
	var incomplete *hunt.EquipmentIncompleteError
	switch {
	case errors.Is(err, ports.ErrNotAuthenticated):
		return consts.StatusUnauthorized, CodeNotAuthenticated, nil
	case errors.As(err, &incomplete):
		code := CodeMissingTrap
		switch incomplete.Slot {
		case hunting.SlotRug:
			code = CodeMissingRug
		case hunting.SlotBait:
			code = CodeMissingBait
		}
		return consts.StatusConflict, code, map[string]any{"slot": string(incomplete.Slot)}
	case errors.Is(err, hunt.ErrInsufficientEnergy):
		return consts.StatusConflict, CodeInsufficientEnergy, nil
	case errors.Is(err, hunt.ErrInsufficientBait):
		return consts.StatusConflict, CodeInsufficientBait, nil
	case errors.Is(err, ports.ErrNoLocationSelected):
		return consts.StatusConflict, CodeNoLocationSelected, nil
	case errors.Is(err, location.ErrLocationLocked):
		return consts.StatusConflict, CodeLocationLocked, nil
	case errors.Is(err, shop.ErrInsufficientGold):
		return consts.StatusConflict, CodeInsufficientGold, nil
	case errors.Is(err, shop.ErrItemNotAvailable):
		return consts.StatusConflict, CodeItemNotAvailable, nil
	case errors.Is(err, equipment.ErrItemSlotMismatch):
		return consts.StatusConflict, CodeItemSlotMismatch, nil
	case errors.Is(err, equipment.ErrItemNotOwned):
		return consts.StatusConflict, CodeItemNotOwned, nil
	case errors.Is(err, ports.ErrInsufficientQuantity):
		return consts.StatusConflict, CodeInsufficientQuantity, nil
	case errors.Is(err, equipment.ErrInvalidRequest),
		errors.Is(err, history.ErrInvalidRequest),
		errors.Is(err, inventory.ErrInvalidRequest),
		errors.Is(err, shop.ErrInvalidRequest):
		return consts.StatusBadRequest, CodeBadRequest, nil
	case errors.Is(err, ports.ErrNotFound):
		return consts.StatusNotFound, CodeNotFound, nil
	case errors.Is(err, ports.ErrConflict):
		return consts.StatusConflict, CodeConflict, map[string]any{"retryable": true}
	default:
		return consts.StatusInternalServerError, CodeInternal, nil
	}
}

func writeError(ctx *app.RequestContext, err error) {
	status, code, details := describeError(err)
	writeErrorBody(ctx, status, code, details)
}

func writeErrorBody(ctx *app.RequestContext, status int, code string, details map[string]any) {
	text, ok := errorTexts[code]
	if !ok {
		text = errorTexts[CodeInternal]
	}
	body := map[string]any{
		"code":    code,
		"title":   text.Title,
		"message": text.Message,
		"action":  text.Action,
	}
	if len(details) > 0 {
		body["details"] = details
	}
	ctx.JSON(status, map[string]any{"error": body})
}
