package web

import (
	"errors"
	"io"
	"net/http"
)

type advanceRequest struct {
	Days int `json:"days"`
}

// currentDate handles GET /api/clock.
func (h *Handler) currentDate(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.CurrentDate(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// advanceDate handles POST /api/clock/advance. A missing or zero day count
// defaults to one simulated day.
func (h *Handler) advanceDate(w http.ResponseWriter, r *http.Request) {
	var req advanceRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	if req.Days == 0 {
		req.Days = 1
	}
	result, err := h.svc.AdvanceDate(r.Context(), req.Days)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// reset handles POST /api/reset: clears every collection, keeps the date.
func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetLedger(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, map[string]string{"status": "reset"})
}

// seed handles POST /api/seed: replaces the book with the demo fixture.
func (h *Handler) seed(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SeedDemoData(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, map[string]string{"status": "seeded"})
}
