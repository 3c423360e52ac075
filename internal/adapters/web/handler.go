package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ShewakS/Credit-System/internal/app"
)

const maxBodyBytes = 1 << 20

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc app.ApplicationService
}

// NewHandler creates and wires the chi router with all routes.
// allowedOrigins is the comma-separated ALLOWED_ORIGINS value; empty
// disables CORS entirely.
func NewHandler(svc app.ApplicationService, allowedOrigins string) http.Handler {
	h := &Handler{svc: svc}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(maxBodyBytes))

	r.Get("/api/health", h.health)

	// ── Read side ─────────────────────────────────────────────────────────────
	r.Get("/api/dashboard", h.dashboard)
	r.Get("/api/customers", h.listCustomers)
	r.Get("/api/customers/{id}/summary", h.customerSummary)
	r.Get("/api/customers/{id}/statement", h.customerStatement)
	r.Get("/api/credits", h.listCredits)
	r.Get("/api/payments", h.listPayments)
	r.Get("/api/overdue", h.overdue)
	r.Get("/api/aging/upcoming", h.upcomingAging)
	r.Get("/api/aging/pastdue", h.pastDueAging)
	r.Get("/api/reminders", h.listReminders)
	r.Get("/api/clock", h.currentDate)

	// ── Write side ────────────────────────────────────────────────────────────
	r.Post("/api/customers", h.saveCustomer)
	r.Post("/api/credits", h.saveCredit)
	r.Post("/api/credits/{id}/reminder", h.toggleReminder)
	r.Post("/api/payments", h.savePayment)
	r.Post("/api/reminders", h.recordReminder)
	r.Post("/api/limit-check", h.limitCheck)
	r.Post("/api/clock/advance", h.advanceDate)
	r.Post("/api/reset", h.reset)
	r.Post("/api/seed", h.seed)

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}
