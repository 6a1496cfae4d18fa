package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meowshunt/internal/app/auth"
	"meowshunt/internal/app/ports"
	"meowshunt/internal/domain/hunting"

	"github.com/gocarina/gocsv"
)

var ErrInvalidRequest = errors.New("invalid history request")

type UseCase struct {
	Hunts   ports.HuntRepository
	Catalog ports.CatalogRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	playerID, err := auth.RequirePlayer(req.PlayerID)
	if err != nil {
		return Response{}, err
	}
	if req.Limit < 0 || req.Limit > MaxLimit || (req.To > 0 && req.From > req.To) {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	q := ports.HuntQuery{Limit: limit}
	if req.From > 0 {
		q.From = time.Unix(req.From, 0).UTC()
	}
	if req.To > 0 {
		q.To = time.Unix(req.To, 0).UTC()
	}
	records, err := u.Hunts.ListByPlayer(ctx, playerID, q)
	if err != nil {
		return Response{}, fmt.Errorf("list hunts: %w", err)
	}

	locNames, meowNames, err := u.names(ctx)
	if err != nil {
		return Response{}, err
	}
	out := Response{Hunts: make([]Entry, 0, len(records))}
	for _, rec := range records {
		e := Entry{
			ID:           rec.ID,
			CreatedAt:    rec.CreatedAt,
			CreatedAtISO: rec.CreatedAt.UTC().Format(time.RFC3339),
			LocationID:   rec.LocationID,
			LocationName: locNames[rec.LocationID],
			MeowID:       rec.MeowID,
			Outcome:      rec.Outcome,
			BaitUsed:     rec.BaitUsed,
			RewardGold:   rec.RewardGold,
			RewardExp:    rec.RewardExp,
		}
		if rec.MeowID != nil {
			e.MeowName = meowNames[*rec.MeowID]
		}
		if rec.Outcome == hunting.OutcomeCatch {
			out.Catches++
		} else {
			out.Misses++
		}
		out.Hunts = append(out.Hunts, e)
	}
	return out, nil
}

func (u UseCase) names(ctx context.Context) (map[int64]string, map[int64]string, error) {
	locs, err := u.Catalog.ListLocations(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list locations: %w", err)
	}
	meows, err := u.Catalog.ListMeows(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list meows: %w", err)
	}
	locNames := make(map[int64]string, len(locs))
	for _, l := range locs {
		locNames[l.ID] = l.Name
	}
	meowNames := make(map[int64]string, len(meows))
	for _, m := range meows {
		meowNames[m.ID] = m.Name
	}
	return locNames, meowNames, nil
}

// CSV renders the hunts as a spreadsheet-friendly export with a header row.
func (r Response) CSV() ([]byte, error) {
	rows := r.Hunts
	if rows == nil {
		rows = []Entry{}
	}
	b, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("encode hunts csv: %w", err)
	}
	return b, nil
}
