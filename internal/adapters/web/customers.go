package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ShewakS/Credit-System/internal/app"
)

// idParam parses the {id} route parameter. Returns 0 when it is absent or
// not an integer; handlers treat that as a reference miss.
func idParam(r *http.Request) int {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0
	}
	return id
}

// listCustomers handles GET /api/customers.
func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListCustomers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// saveCustomer handles POST /api/customers (insert or update by id).
func (h *Handler) saveCustomer(w http.ResponseWriter, r *http.Request) {
	var req app.SaveCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.SaveCustomer(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// customerSummary handles GET /api/customers/{id}/summary.
func (h *Handler) customerSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetCustomerSummary(r.Context(), idParam(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// customerStatement handles GET /api/customers/{id}/statement.
func (h *Handler) customerStatement(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetStatement(r.Context(), idParam(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}
