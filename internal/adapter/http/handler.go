package httpadapter

import (
	"context"
	"encoding/json"
	"strconv"

	"meowshunt/internal/app/auth"
	"meowshunt/internal/app/collection"
	"meowshunt/internal/app/equipment"
	"meowshunt/internal/app/history"
	"meowshunt/internal/app/hunt"
	"meowshunt/internal/app/inventory"
	"meowshunt/internal/app/location"
	"meowshunt/internal/app/refill"
	"meowshunt/internal/app/shop"
	"meowshunt/internal/app/status"
	"meowshunt/internal/logging"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	AuthUC       auth.VerifyUseCase
	RefillUC     refill.UseCase
	HuntUC       hunt.UseCase
	StatusUC     status.UseCase
	LocationsUC  location.ListUseCase
	SelectUC     location.SelectUseCase
	EquipmentUC  equipment.UseCase
	ShopUC       shop.UseCase
	HistoryUC    history.UseCase
	CollectionUC collection.UseCase
	InventoryUC  inventory.UseCase

	HuntLimiter *PlayerLimiter
	CORSOrigins []string
	KPI         kpiSnapshotProvider
	Metrics     app.HandlerFunc
	Logger      logging.Logger
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(accessLogMiddleware(h.Logger), corsMiddleware(h.CORSOrigins))

	api := s.Group("/api", h.authMiddleware())
	api.POST("/energy/refill", h.refill)
	api.POST("/hunt", rateLimitMiddleware(h.HuntLimiter), h.hunt)
	api.GET("/player", h.player)
	api.PUT("/player/location", h.selectLocation)
	api.GET("/locations", h.locations)
	api.PUT("/equipment/:slot", h.equip)
	api.DELETE("/equipment/:slot", h.unequip)
	api.POST("/shop/purchase", h.purchase)
	api.GET("/hunts", h.hunts)
	api.GET("/collection", h.collection)
	api.GET("/inventory", h.inventory)

	s.GET("/healthz", func(_ context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
	})
	s.GET("/ops/kpi", h.kpi)
	if h.Metrics != nil {
		s.GET("/metrics", h.Metrics)
	}
}

type selectLocationRequest struct {
	LocationID *int64 `json:"location_id"`
}

type equipRequest struct {
	ItemID int64 `json:"item_id"`
}

type purchaseRequest struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

func (h Handler) refill(c context.Context, ctx *app.RequestContext) {
	id := mustIdentity(ctx)
	resp, err := h.RefillUC.Execute(c, refill.Request{PlayerID: id.PlayerID, Username: id.Username})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) hunt(c context.Context, ctx *app.RequestContext) {
	id := mustIdentity(ctx)
	resp, err := h.HuntUC.Execute(c, hunt.Request{PlayerID: id.PlayerID, Username: id.Username})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) player(c context.Context, ctx *app.RequestContext) {
	id := mustIdentity(ctx)
	resp, err := h.StatusUC.Execute(c, status.Request{PlayerID: id.PlayerID, Username: id.Username})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) locations(c context.Context, ctx *app.RequestContext) {
	id := mustIdentity(ctx)
	resp, err := h.LocationsUC.Execute(c, location.ListRequest{PlayerID: id.PlayerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) selectLocation(c context.Context, ctx *app.RequestContext) {
	id := mustIdentity(ctx)
	var body selectLocationRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, CodeInvalidJSON, nil)
		return
	}
	resp, err := h.SelectUC.Execute(c, location.SelectRequest{
		PlayerID:   id.PlayerID,
		Username:   id.Username,
		LocationID: body.LocationID,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) equip(c context.Context, ctx *app.RequestContext) {
	id := mustIdentity(ctx)
	var body equipRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, CodeInvalidJSON, nil)
		return
	}
	resp, err := h.EquipmentUC.Equip(c, equipment.EquipRequest{
		PlayerID: id.PlayerID,
		Slot:     ctx.Param("slot"),
		ItemID:   body.ItemID,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) unequip(c context.Context, ctx *app.RequestContext) {
	id := mustIdentity(ctx)
	resp, err := h.EquipmentUC.Unequip(c, equipment.UnequipRequest{PlayerID: id.PlayerID, Slot: ctx.Param("slot")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) purchase(c context.Context, ctx *app.RequestContext) {
	id := mustIdentity(ctx)
	var body purchaseRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, CodeInvalidJSON, nil)
		return
	}
	resp, err := h.ShopUC.Purchase(c, shop.PurchaseRequest{
		PlayerID: id.PlayerID,
		Username: id.Username,
		ItemID:   body.ItemID,
		Quantity: body.Quantity,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) hunts(c context.Context, ctx *app.RequestContext) {
	id := mustIdentity(ctx)
	var q [3]int64
	for i, key := range []string{"limit", "from", "to"} {
		v, ok := queryInt(ctx, key)
		if !ok {
			writeErrorBody(ctx, consts.StatusBadRequest, CodeBadRequest, map[string]any{"param": key})
			return
		}
		q[i] = v
	}
	limit, from, to := int(q[0]), q[1], q[2]
	resp, err := h.HistoryUC.Execute(c, history.Request{
		PlayerID: id.PlayerID,
		Limit:    limit,
		From:     from,
		To:       to,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	if ctx.Query("format") == "csv" {
		b, err := resp.CSV()
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.Response.Header.Set("Content-Disposition", `attachment; filename="hunts.csv"`)
		ctx.Data(consts.StatusOK, "text/csv; charset=utf-8", b)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) collection(c context.Context, ctx *app.RequestContext) {
	id := mustIdentity(ctx)
	resp, err := h.CollectionUC.Execute(c, collection.Request{PlayerID: id.PlayerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) inventory(c context.Context, ctx *app.RequestContext) {
	id := mustIdentity(ctx)
	resp, err := h.InventoryUC.Execute(c, inventory.Request{PlayerID: id.PlayerID, Type: ctx.Query("type")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, CodeNotFound, map[string]any{"reason": "kpi provider not configured"})
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

// queryInt reads an optional integer query parameter; absent means zero.
func queryInt(ctx *app.RequestContext, key string) (int64, bool) {
	raw := ctx.Query(key)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}
