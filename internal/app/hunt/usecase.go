package hunt

import (
	"context"
	"errors"
	"time"

	"meowshunt/internal/app/ports"
	"meowshunt/internal/app/refill"
	"meowshunt/internal/domain/hunting"
	"meowshunt/internal/logging"

	"github.com/google/uuid"
)

type UseCase struct {
	TxManager  ports.TxManager
	Refill     refill.UseCase
	Profiles   ports.ProfileRepository
	Equipment  ports.EquipmentRepository
	Inventory  ports.InventoryRepository
	Catalog    ports.CatalogRepository
	Hunts      ports.HuntRepository
	Collection ports.CollectionRepository
	Ranks      ports.RankDispatcher
	Metrics    ports.HuntMetrics
	Catch      hunting.CatchPolicy
	Dice       hunting.Dice
	Logger     logging.Logger
	NewID      func() string
	Now        func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	started := time.Now()
	metrics := u.metrics()
	log := logging.OrNop(u.Logger)

	hc, err := u.ValidateRequest(req)
	if err != nil {
		metrics.RecordRejected(rejectionReason(err))
		return Response{}, err
	}
	ctx = logging.ContextWith(ctx, "player_id", hc.In.PlayerID)

	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.LoadAndRefill(txCtx, &hc); err != nil {
			return err
		}
		if err := u.CheckEnergy(&hc); err != nil {
			return err
		}
		if err := u.CheckEquipment(txCtx, &hc); err != nil {
			return err
		}
		if err := u.CheckLocation(txCtx, &hc); err != nil {
			return err
		}
		if err := u.ConsumeCosts(txCtx, &hc); err != nil {
			return err
		}
		if err := u.RollOutcome(txCtx, &hc); err != nil {
			return err
		}
		if err := u.ApplyRewards(txCtx, &hc); err != nil {
			return err
		}
		return u.RecordHunt(txCtx, &hc)
	})
	if err != nil {
		from := hc.State
		hc.State = StateRejected
		switch reason := rejectionReason(err); {
		case reason != "":
			metrics.RecordRejected(reason)
			log.DebugContext(ctx, "hunt rejected", "reason", reason, "state", from)
		case errors.Is(err, ports.ErrConflict):
			metrics.RecordConflict()
			log.WarnContext(ctx, "hunt lost a concurrent update", "state", from)
		default:
			metrics.RecordFailure()
			log.ErrorContext(ctx, "hunt failed", "state", from, "err", err)
		}
		return Response{}, err
	}

	metrics.RecordOutcome(hc.Tmp.Outcome, time.Since(started))
	if hc.Tmp.Outcome == hunting.OutcomeCatch && u.Ranks != nil {
		u.Ranks.Dispatch(hc.In.PlayerID)
	}
	log.InfoContext(ctx, "hunt resolved",
		"hunt_id", hc.Tmp.Record.ID,
		"outcome", hc.Tmp.Outcome,
		"location_id", hc.View.Location.ID,
		"chance", hc.Tmp.Chance,
	)
	return buildResponse(hc), nil
}

func (u UseCase) metrics() ports.HuntMetrics {
	if u.Metrics == nil {
		return ports.NopMetrics{}
	}
	return u.Metrics
}

func (u UseCase) now() time.Time {
	if u.Now == nil {
		return time.Now().UTC()
	}
	return u.Now().UTC()
}

func (u UseCase) catchPolicy() hunting.CatchPolicy {
	if u.Catch == (hunting.CatchPolicy{}) {
		return hunting.DefaultCatchPolicy()
	}
	return u.Catch
}

func (u UseCase) dice() hunting.Dice {
	if u.Dice == nil {
		return hunting.DefaultDice()
	}
	return u.Dice
}

func (u UseCase) newID() string {
	if u.NewID == nil {
		return uuid.NewString()
	}
	return u.NewID()
}

func buildResponse(hc HuntContext) Response {
	resp := Response{
		HuntID:  hc.Tmp.Record.ID,
		Outcome: hc.Tmp.Outcome,
		Rewards: Rewards{Gold: hc.Tmp.Record.RewardGold, Exp: hc.Tmp.Record.RewardExp},
		Energy:  hc.View.Profile.Energy,
	}
	if hc.Tmp.Encountered {
		m := hc.Tmp.Spawn.Meow
		resp.DisplayMeow = &DisplayMeow{ID: m.ID, Name: m.Name, ImageURL: m.ImageURL, Rarity: m.Rarity}
	}
	return resp
}
