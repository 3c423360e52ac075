package core

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// ── Report types ──────────────────────────────────────────────────────────────

// CustomerTotals is the per-customer financial summary.
//
// OverdueAmount treats payments as applied against past-due credit first,
// in aggregate, regardless of which invoice they were nominally for. This
// is an intentional simplification — payments are never matched to specific
// credit entries, so there is no FIFO or allocation algorithm here.
type CustomerTotals struct {
	CustomerID     int             `json:"customer_id"`
	TotalCredit    decimal.Decimal `json:"total_credit"`
	TotalPayments  decimal.Decimal `json:"total_payments"`
	Balance        decimal.Decimal `json:"balance"`
	OverdueAmount  decimal.Decimal `json:"overdue_amount"`
	MaxOverdueDays int             `json:"max_overdue_days"`
	Utilization    float64         `json:"utilization"`
}

// GlobalTotals is the whole-book KPI summary shown on the dashboard.
type GlobalTotals struct {
	CustomerCount        int             `json:"customer_count"`
	TotalCredit          decimal.Decimal `json:"total_credit"`
	TotalPayments        decimal.Decimal `json:"total_payments"`
	Outstanding          decimal.Decimal `json:"outstanding"`
	OverdueTotal         decimal.Decimal `json:"overdue_total"`
	OverdueCustomerCount int             `json:"overdue_customer_count"`
	NewCustomersThisWeek int             `json:"new_customers_this_week"`
}

// RiskProfile is the heuristic risk assessment for one customer.
// Score starts at 95 and is reduced by an overdue-days penalty and a
// credit-utilization penalty, floor-clamped at 15.
type RiskProfile struct {
	CustomerID     int      `json:"customer_id"`
	Score          int      `json:"score"`
	Tier           RiskTier `json:"tier"`
	MaxOverdueDays int      `json:"max_overdue_days"`
	Utilization    float64  `json:"utilization"`
}

// AgingBuckets sums credit amounts into 1–7 / 8–30 / over-30 day ranges.
// The same shape serves two distinct views: days until due (upcoming) and
// days since due (past due). Callers must track which view they rendered.
type AgingBuckets struct {
	Within7  decimal.Decimal `json:"within_7"`
	Within30 decimal.Decimal `json:"within_30"`
	Over30   decimal.Decimal `json:"over_30"`
}

// OverdueRow is one past-due credit entry prepared for display. A dangling
// customer reference degrades to the raw id in CustomerName.
type OverdueRow struct {
	CreditID     int             `json:"credit_id"`
	CustomerID   int             `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	DueDate      string          `json:"due_date"`
	DaysOverdue  int             `json:"days_overdue"`
	Outstanding  decimal.Decimal `json:"outstanding"`
	ReminderSent bool            `json:"reminder_sent"`
}

// StatementLine is one audit-trail entry with the running balance after it
// (credits increase the balance, payments decrease it).
type StatementLine struct {
	Timestamp      string          `json:"timestamp"`
	Type           HistoryType     `json:"type"`
	Marker         string          `json:"marker"`
	Amount         decimal.Decimal `json:"amount"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// ── Interface ─────────────────────────────────────────────────────────────────

// ReportingService is the read side of the credit system: stateless
// derivations over the store's current contents and simulated date.
// Every method recomputes from scratch — no caching — so two calls with
// no intervening mutation return identical results.
type ReportingService interface {
	// CustomerTotals derives the financial summary for one customer.
	// An unknown id yields zero-valued totals, never an error.
	CustomerTotals(customerID int) CustomerTotals

	// GlobalTotals derives the whole-book KPI summary.
	GlobalTotals() GlobalTotals

	// RiskScore returns the heuristic risk score in [15, 95].
	RiskScore(customerID int) int

	// RiskProfile returns the score together with its tier and inputs.
	RiskProfile(customerID int) RiskProfile

	// UpcomingAging buckets credit entries that are not yet due by
	// days until due.
	UpcomingAging() AgingBuckets

	// PastDueAging buckets overdue credit entries by days since due,
	// using the same 1–7 / 8–30 / over-30 ranges as UpcomingAging.
	PastDueAging() AgingBuckets

	// OverdueRows returns one display row per past-due credit entry of a
	// customer whose balance is still positive, with outstanding capped
	// at the customer balance.
	OverdueRows() []OverdueRow

	// CustomerStatement returns the customer's audit trail in insertion
	// order with a running balance.
	CustomerStatement(customerID int) []StatementLine
}

// NewReportingService constructs a ReportingService over the given store.
func NewReportingService(store *Store) ReportingService {
	return &reportingService{store: store}
}

type reportingService struct {
	store *Store
}

// ── Per-customer totals ───────────────────────────────────────────────────────

func (s *reportingService) CustomerTotals(customerID int) CustomerTotals {
	today := s.store.Today()
	t := CustomerTotals{
		CustomerID:    customerID,
		TotalCredit:   decimal.Zero,
		TotalPayments: decimal.Zero,
		OverdueAmount: decimal.Zero,
	}

	overdueCredit := decimal.Zero
	for _, c := range s.store.Credits() {
		if c.CustomerID != customerID {
			continue
		}
		t.TotalCredit = t.TotalCredit.Add(c.Amount)
		due, err := ParseDate(c.DueDate)
		if err != nil {
			continue // unparseable due date is never overdue
		}
		if days := DaysBetween(today, due); days > 0 {
			overdueCredit = overdueCredit.Add(c.Amount)
			if days > t.MaxOverdueDays {
				t.MaxOverdueDays = days
			}
		}
	}
	for _, p := range s.store.Payments() {
		if p.CustomerID == customerID {
			t.TotalPayments = t.TotalPayments.Add(p.Amount)
		}
	}

	t.Balance = t.TotalCredit.Sub(t.TotalPayments)
	if over := overdueCredit.Sub(t.TotalPayments); over.IsPositive() {
		t.OverdueAmount = over
	}
	if t.TotalCredit.IsPositive() {
		t.Utilization = t.Balance.Div(t.TotalCredit).InexactFloat64()
	}
	return t
}

// ── Global totals ─────────────────────────────────────────────────────────────

func (s *reportingService) GlobalTotals() GlobalTotals {
	today := s.store.Today()
	g := GlobalTotals{
		TotalCredit:   decimal.Zero,
		TotalPayments: decimal.Zero,
		OverdueTotal:  decimal.Zero,
	}

	for _, c := range s.store.Credits() {
		g.TotalCredit = g.TotalCredit.Add(c.Amount)
	}
	for _, p := range s.store.Payments() {
		g.TotalPayments = g.TotalPayments.Add(p.Amount)
	}
	g.Outstanding = g.TotalCredit.Sub(g.TotalPayments)

	for _, cust := range s.store.Customers() {
		g.CustomerCount++
		t := s.CustomerTotals(cust.ID)
		g.OverdueTotal = g.OverdueTotal.Add(t.OverdueAmount)
		if t.OverdueAmount.IsPositive() {
			g.OverdueCustomerCount++
		}
		created, err := ParseDate(cust.CreatedAt)
		if err != nil {
			continue
		}
		// A creation date in the future yields a negative day difference,
		// which still counts as "this week". Inherited behaviour, kept
		// as-is (see DESIGN.md).
		if DaysBetween(today, created) <= 7 {
			g.NewCustomersThisWeek++
		}
	}
	return g
}

// ── Risk scoring ──────────────────────────────────────────────────────────────

func (s *reportingService) RiskScore(customerID int) int {
	return s.RiskProfile(customerID).Score
}

func (s *reportingService) RiskProfile(customerID int) RiskProfile {
	t := s.CustomerTotals(customerID)

	overduePenalty := math.Min(60, float64(t.MaxOverdueDays)*1.2)
	utilizationPenalty := math.Max(0, (t.Utilization-0.7)*60)

	score := int(math.Round(95 - overduePenalty - utilizationPenalty))
	if score < 15 {
		score = 15
	}

	return RiskProfile{
		CustomerID:     customerID,
		Score:          score,
		Tier:           TierForScore(score),
		MaxOverdueDays: t.MaxOverdueDays,
		Utilization:    t.Utilization,
	}
}

// ── Aging views ───────────────────────────────────────────────────────────────

func (s *reportingService) UpcomingAging() AgingBuckets {
	today := s.store.Today()
	b := emptyBuckets()
	for _, c := range s.store.Credits() {
		due, err := ParseDate(c.DueDate)
		if err != nil {
			continue
		}
		if days := DaysBetween(due, today); days > 0 {
			b.add(days, c.Amount)
		}
	}
	return b
}

func (s *reportingService) PastDueAging() AgingBuckets {
	today := s.store.Today()
	b := emptyBuckets()
	for _, c := range s.store.Credits() {
		due, err := ParseDate(c.DueDate)
		if err != nil {
			continue
		}
		if days := DaysBetween(today, due); days > 0 {
			b.add(days, c.Amount)
		}
	}
	return b
}

func emptyBuckets() AgingBuckets {
	return AgingBuckets{Within7: decimal.Zero, Within30: decimal.Zero, Over30: decimal.Zero}
}

func (b *AgingBuckets) add(days int, amount decimal.Decimal) {
	switch {
	case days <= 7:
		b.Within7 = b.Within7.Add(amount)
	case days <= 30:
		b.Within30 = b.Within30.Add(amount)
	default:
		b.Over30 = b.Over30.Add(amount)
	}
}

// ── Overdue rows ──────────────────────────────────────────────────────────────

func (s *reportingService) OverdueRows() []OverdueRow {
	today := s.store.Today()
	totalsByCustomer := make(map[int]CustomerTotals)

	var rows []OverdueRow
	for _, c := range s.store.Credits() {
		due, err := ParseDate(c.DueDate)
		if err != nil {
			continue
		}
		days := DaysBetween(today, due)
		if days <= 0 {
			continue
		}

		t, ok := totalsByCustomer[c.CustomerID]
		if !ok {
			t = s.CustomerTotals(c.CustomerID)
			totalsByCustomer[c.CustomerID] = t
		}
		if !t.Balance.IsPositive() {
			continue // fully covered by payments, nothing outstanding
		}

		name := strconv.Itoa(c.CustomerID)
		if cust, err := s.store.CustomerByID(c.CustomerID); err == nil {
			name = cust.Name
		}

		rows = append(rows, OverdueRow{
			CreditID:     c.ID,
			CustomerID:   c.CustomerID,
			CustomerName: name,
			DueDate:      c.DueDate,
			DaysOverdue:  days,
			Outstanding:  decimal.Min(c.Amount, t.Balance),
			ReminderSent: c.ReminderSent,
		})
	}
	return rows
}

// ── Statement ─────────────────────────────────────────────────────────────────

func (s *reportingService) CustomerStatement(customerID int) []StatementLine {
	var lines []StatementLine
	running := decimal.Zero
	for _, h := range s.store.History() {
		if h.CustomerID != customerID {
			continue
		}
		switch h.Type {
		case HistoryCredit:
			running = running.Add(h.Amount)
		case HistoryPayment:
			running = running.Sub(h.Amount)
		}
		lines = append(lines, StatementLine{
			Timestamp:      h.Timestamp,
			Type:           h.Type,
			Marker:         h.Marker,
			Amount:         h.Amount,
			RunningBalance: running,
		})
	}
	return lines
}
