package location

import "meowshunt/internal/domain/hunting"

type ListRequest struct {
	PlayerID string
}

// MeowView hides the power band; players only learn it by hunting.
type MeowView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	ImageURL    string  `json:"image_url,omitempty"`
	Rarity      string  `json:"rarity"`
	SpawnChance float64 `json:"spawn_chance"`
}

type LocationView struct {
	hunting.Location
	Unlocked  bool           `json:"unlocked"`
	Current   bool           `json:"current"`
	Meows     []MeowView     `json:"meows"`
	ShopItems []hunting.Item `json:"shop_items"`
}

type ListResponse struct {
	CurrentLocationID *int64         `json:"current_location_id"`
	Locations         []LocationView `json:"locations"`
}

type SelectRequest struct {
	PlayerID   string
	Username   string
	LocationID *int64
}

type SelectResponse struct {
	CurrentLocationID *int64 `json:"current_location_id"`
}
