package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"parcelpoint/internal/apperr"
	"parcelpoint/internal/logx"
)

// ShipmentHandler serves HTTP endpoints for shipment resources.
type ShipmentHandler struct {
	uc     shipmentUsecase
	logger logx.Logger
}

// NewShipmentHandler wires a shipmentUsecase into HTTP handlers.
func NewShipmentHandler(logger logx.Logger, uc shipmentUsecase) *ShipmentHandler {
	return &ShipmentHandler{uc: uc, logger: logger}
}

// Create handles POST /api/admin/create-shipment.
func (h *ShipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createShipmentRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	sh, err := h.uc.Create(r.Context(), req.toInput())
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, createShipmentResponse{OK: true, Shipment: shipmentToResponse(*sh)})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "pickup_address and dropoff_address are required")
	case errors.Is(err, apperr.ErrAllocationExhausted):
		writeError(h.logger, w, r, http.StatusInternalServerError, "failed to generate tracking code")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /api/admin/list-shipments.
func (h *ShipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = v
	}

	list, err := h.uc.List(r.Context(), q.Get("q"), limit)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, listShipmentsResponse{OK: true, Items: shipmentsToResponse(list)})
}

// AppendStatus handles POST /api/admin/add-event.
func (h *ShipmentHandler) AppendStatus(w http.ResponseWriter, r *http.Request) {
	var req addEventRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	err := h.uc.AppendStatus(r.Context(), req.TrackingID, req.Status, req.Note)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, okResponse{OK: true})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "trackingId and status are required")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "shipment not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Track handles POST /api/track (public).
func (h *ShipmentHandler) Track(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	view, err := h.uc.Track(r.Context(), req.TrackingID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, trackResponse{OK: true, Shipment: trackViewToResponse(*view)})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "tracking code required")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "tracking code not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
