package web

import (
	"net/http"

	"github.com/ShewakS/Credit-System/internal/app"
)

// listCredits handles GET /api/credits.
func (h *Handler) listCredits(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListCredits(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// saveCredit handles POST /api/credits (insert or update by id).
func (h *Handler) saveCredit(w http.ResponseWriter, r *http.Request) {
	var req app.SaveCreditRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.SaveCredit(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// toggleReminder handles POST /api/credits/{id}/reminder.
func (h *Handler) toggleReminder(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ToggleReminder(r.Context(), idParam(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// listPayments handles GET /api/payments.
func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListPayments(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// savePayment handles POST /api/payments (insert or update by id).
func (h *Handler) savePayment(w http.ResponseWriter, r *http.Request) {
	var req app.SavePaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.SavePayment(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// limitCheck handles POST /api/limit-check. The response drives a
// non-blocking warning in the credit form, never a rejection.
func (h *Handler) limitCheck(w http.ResponseWriter, r *http.Request) {
	var req app.LimitCheckRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.CheckCreditLimit(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}
