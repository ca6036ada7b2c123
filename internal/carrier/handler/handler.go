package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"carriertext/internal/carrier/models"
	"carriertext/pkg/platform/httputil"
	"carriertext/pkg/platform/sentinel"
)

//go:generate mockgen -source=handler.go -destination=mocks/service_mocks.go -package=mocks

// Service defines the carrier text operations exposed over HTTP.
type Service interface {
	Update(ctx context.Context, in models.Input) (*models.DisplayResult, error)
	HandleSimStateChanged(ctx context.Context, event models.SimStateEvent) (*models.DisplayResult, error)
	SetLocale(ctx context.Context, locale string) (*models.DisplayResult, error)
	Current() (models.DisplayResult, error)
	Resize(slotCount int) error
}

// Handler wires carrier text endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a carrier text handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the carrier text endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Get("/carrier-text", h.HandleCurrent)
		r.Post("/carrier-text", h.HandleUpdate)
		r.Put("/slots", h.HandleResize)
		r.Post("/slots/{slot}/sim-state", h.HandleSimState)
		r.Put("/locale", h.HandleSetLocale)
	})
}

// HandleUpdate handles POST /v1/carrier-text.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.DecodeAndPrepare[CarrierTextRequest](w, r, h.logger)
	if !ok {
		return
	}

	result, err := h.service.Update(ctx, req.Input)
	if err != nil {
		h.logger.ErrorContext(ctx, "carrier text update failed",
			"request_id", middleware.GetReqID(ctx),
			"subscriptions", len(req.Subscriptions),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandleCurrent handles GET /v1/carrier-text.
func (h *Handler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Current()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromResult(&result))
}

// HandleSimState handles POST /v1/slots/{slot}/sim-state.
func (h *Handler) HandleSimState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slot, err := strconv.Atoi(chi.URLParam(r, "slot"))
	if err != nil {
		httputil.WriteError(w, fmt.Errorf("%w: slot must be an integer", sentinel.ErrInvalidSlot))
		return
	}

	req, ok := httputil.DecodeAndPrepare[SimStateRequest](w, r, h.logger)
	if !ok {
		return
	}

	result, err := h.service.HandleSimStateChanged(ctx, req.Event(slot))
	if err != nil {
		h.logger.WarnContext(ctx, "sim state event rejected",
			"request_id", middleware.GetReqID(ctx),
			"slot", slot,
			"state", req.State,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, SimStateResponse{
		Recomputed: result != nil,
		Result:     FromResult(result),
	})
}

// HandleSetLocale handles PUT /v1/locale.
func (h *Handler) HandleSetLocale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.DecodeAndPrepare[LocaleRequest](w, r, h.logger)
	if !ok {
		return
	}

	result, err := h.service.SetLocale(ctx, req.Locale)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, LocaleResponse{
		Locale: req.Locale,
		Result: FromResult(result),
	})
}

// HandleResize handles PUT /v1/slots.
func (h *Handler) HandleResize(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[SlotsRequest](w, r, h.logger)
	if !ok {
		return
	}

	if err := h.service.Resize(req.SlotCount); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
