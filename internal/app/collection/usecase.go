package collection

import (
	"context"
	"fmt"
	"time"

	"meowshunt/internal/app/auth"
	"meowshunt/internal/app/ports"
)

type Request struct {
	PlayerID string
}

type Entry struct {
	MeowID        int64      `json:"meow_id"`
	Name          string     `json:"name"`
	Rarity        string     `json:"rarity"`
	ImageURL      string     `json:"image_url,omitempty"`
	Caught        bool       `json:"caught"`
	CatchCount    int        `json:"catch_count"`
	FirstCaughtAt *time.Time `json:"first_caught_at,omitempty"`
	LastCaughtAt  *time.Time `json:"last_caught_at,omitempty"`
}

type Response struct {
	Entries    []Entry `json:"entries"`
	Discovered int     `json:"discovered"`
	Total      int     `json:"total"`
}

// UseCase renders the player's meow dex: every catalog meow, with catch
// stats filled in for the ones already caught. Undiscovered meows keep
// their name hidden.
type UseCase struct {
	Collection ports.CollectionRepository
	Catalog    ports.CatalogRepository
}

const hiddenName = "???"

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	playerID, err := auth.RequirePlayer(req.PlayerID)
	if err != nil {
		return Response{}, err
	}
	meows, err := u.Catalog.ListMeows(ctx)
	if err != nil {
		return Response{}, fmt.Errorf("list meows: %w", err)
	}
	caught, err := u.Collection.ListByPlayer(ctx, playerID)
	if err != nil {
		return Response{}, fmt.Errorf("list collection: %w", err)
	}
	byMeow := make(map[int64]int, len(caught))
	for i, c := range caught {
		byMeow[c.MeowID] = i
	}

	out := Response{Entries: make([]Entry, 0, len(meows)), Total: len(meows)}
	for _, m := range meows {
		e := Entry{MeowID: m.ID, Name: hiddenName, Rarity: m.Rarity}
		if i, ok := byMeow[m.ID]; ok {
			c := caught[i]
			first, last := c.FirstCaughtAt, c.LastCaughtAt
			e.Name = m.Name
			e.ImageURL = m.ImageURL
			e.Caught = true
			e.CatchCount = c.CatchCount
			e.FirstCaughtAt = &first
			e.LastCaughtAt = &last
			out.Discovered++
		}
		out.Entries = append(out.Entries, e)
	}
	return out, nil
}
