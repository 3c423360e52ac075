package web

import (
	"net/http"

	"github.com/ShewakS/Credit-System/internal/app"
)

// dashboard handles GET /api/dashboard.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// overdue handles GET /api/overdue.
func (h *Handler) overdue(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetOverdue(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// upcomingAging handles GET /api/aging/upcoming: amounts not yet due,
// bucketed by days until due.
func (h *Handler) upcomingAging(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetUpcomingAging(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// pastDueAging handles GET /api/aging/pastdue: overdue amounts, bucketed
// by days since due.
func (h *Handler) pastDueAging(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetPastDueAging(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// listReminders handles GET /api/reminders.
func (h *Handler) listReminders(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListReminders(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// recordReminder handles POST /api/reminders.
func (h *Handler) recordReminder(w http.ResponseWriter, r *http.Request) {
	var req app.RecordReminderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.RecordReminder(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}
