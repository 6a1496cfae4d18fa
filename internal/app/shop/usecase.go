package shop

import (
	"context"
	"errors"
	"fmt"

	"meowshunt/internal/app/auth"
	"meowshunt/internal/app/ports"
	"meowshunt/internal/app/refill"
)

const MaxPurchaseQuantity = 99

var (
	ErrInvalidRequest   = errors.New("invalid purchase request")
	ErrItemNotAvailable = errors.New("item not sold here")
	ErrInsufficientGold = errors.New("insufficient gold")
)

type PurchaseRequest struct {
	PlayerID string
	Username string
	ItemID   int64
	Quantity int
}

type PurchaseResponse struct {
	NewGold  int `json:"new_gold"`
	Quantity int `json:"quantity"`
}

type UseCase struct {
	TxManager ports.TxManager
	Refill    refill.UseCase
	Profiles  ports.ProfileRepository
	Inventory ports.InventoryRepository
	Catalog   ports.CatalogRepository
}

// Purchase buys from the shop at the player's current location. The gold
// debit and the inventory credit commit together.
func (u UseCase) Purchase(ctx context.Context, req PurchaseRequest) (PurchaseResponse, error) {
	playerID, err := auth.RequirePlayer(req.PlayerID)
	if err != nil {
		return PurchaseResponse{}, err
	}
	if req.ItemID <= 0 || req.Quantity < 1 || req.Quantity > MaxPurchaseQuantity {
		return PurchaseResponse{}, ErrInvalidRequest
	}
	now := u.Refill.Clock()

	var out PurchaseResponse
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		profile, err := u.Refill.LoadOrCreate(txCtx, playerID, req.Username, now)
		if err != nil {
			return err
		}
		if profile.CurrentLocationID == nil {
			return ports.ErrNoLocationSelected
		}
		stock, err := u.Catalog.ListShopItems(txCtx, *profile.CurrentLocationID)
		if err != nil {
			return fmt.Errorf("load shop: %w", err)
		}
		price := -1
		for _, item := range stock {
			if item.ID == req.ItemID {
				price = item.Price
				break
			}
		}
		if price < 0 {
			return ErrItemNotAvailable
		}
		cost := price * req.Quantity
		if cost > profile.Gold {
			return ErrInsufficientGold
		}

		expected := profile.Version
		profile.Gold -= cost
		profile.Version = expected + 1
		profile.UpdatedAt = now
		if err := u.Profiles.SaveWithVersion(txCtx, profile, expected); err != nil {
			return fmt.Errorf("debit gold: %w", err)
		}
		if err := u.Inventory.Add(txCtx, playerID, req.ItemID, req.Quantity); err != nil {
			return fmt.Errorf("credit inventory: %w", err)
		}
		held, err := u.Inventory.Quantity(txCtx, playerID, req.ItemID)
		if err != nil {
			return fmt.Errorf("load inventory: %w", err)
		}
		out = PurchaseResponse{NewGold: profile.Gold, Quantity: held}
		return nil
	})
	if err != nil {
		return PurchaseResponse{}, err
	}
	return out, nil
}
