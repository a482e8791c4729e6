package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"parcelpoint/internal/apperr"
	"parcelpoint/internal/domain"
	"parcelpoint/internal/logx"
)

// PickupHandler serves HTTP endpoints for pickup request resources.
type PickupHandler struct {
	uc     pickupUsecase
	logger logx.Logger
}

// NewPickupHandler wires a pickupUsecase into HTTP handlers.
func NewPickupHandler(logger logx.Logger, uc pickupUsecase) *PickupHandler {
	return &PickupHandler{uc: uc, logger: logger}
}

// Submit handles POST /api/pickup (public).
func (h *PickupHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitPickupRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	p, err := h.uc.Submit(r.Context(), req.toInput())
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, submitPickupResponse{OK: true, Request: pickupToResponse(*p)})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "missing required fields")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /api/admin/list-pickups.
func (h *PickupHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status := domain.PickupStatus(q.Get("status"))

	limit := 0
	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = v
	}

	list, err := h.uc.List(r.Context(), status, limit)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, listPickupsResponse{OK: true, Items: pickupsToResponse(list)})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid status filter")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// UpdateStatus handles POST /api/admin/update-pickup-status.
func (h *PickupHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updatePickupStatusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	err := h.uc.UpdateStatus(r.Context(), req.ID, domain.PickupStatus(req.Status))
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, okResponse{OK: true})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "id and status required")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "pickup not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Convert handles POST /api/admin/convert-pickup.
func (h *PickupHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertPickupRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.uc.Convert(r.Context(), req.PickupID, req.ETA)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, convertPickupResponse{
			OK:               true,
			AlreadyConverted: res.AlreadyConverted,
			TrackingID:       res.TrackingCode,
		})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "pickupId is required")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "pickup not found")
	case errors.Is(err, apperr.ErrAllocationExhausted):
		writeError(h.logger, w, r, http.StatusInternalServerError, "failed to generate tracking code")
	case errors.Is(err, apperr.ErrPartialConversion):
		writeError(h.logger, w, r, http.StatusInternalServerError, "shipment created but pickup status not updated")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
