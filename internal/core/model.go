package core

import "github.com/shopspring/decimal"

// Customer is a party that receives credit and makes repayments.
// CreditLimit is a soft ceiling: a credit entry may exceed it, the
// system only flags the condition (see Ledger.LimitExceeded).
type Customer struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Contact     string          `json:"contact"`
	Address     string          `json:"address,omitempty"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   string          `json:"created_at"` // YYYY-MM-DD
}

// CreditEntry is an amount owed by a customer, with an issue and due date.
type CreditEntry struct {
	ID           int             `json:"id"`
	CustomerID   int             `json:"customer_id"`
	Amount       decimal.Decimal `json:"amount"`
	IssueDate    string          `json:"issue_date"` // YYYY-MM-DD
	DueDate      string          `json:"due_date"`   // YYYY-MM-DD
	Notes        string          `json:"notes,omitempty"`
	ReminderSent bool            `json:"reminder_sent"`
}

// PaymentEntry is an amount repaid by a customer. Payments are not tied
// to a specific credit entry; they reduce the customer's aggregate balance.
type PaymentEntry struct {
	ID         int             `json:"id"`
	CustomerID int             `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"` // YYYY-MM-DD
	Category   string          `json:"category,omitempty"`
	Method     string          `json:"method,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

type ReminderStatus string

const (
	ReminderQueued  ReminderStatus = "Queued"
	ReminderSent    ReminderStatus = "Sent"
	ReminderPlanned ReminderStatus = "Planned"
)

// ReminderRecord tracks reminder activity per customer. It is informational
// only and never consumed by the overdue computation.
type ReminderRecord struct {
	CustomerID    int            `json:"customer_id"`
	LastSent      string         `json:"last_sent,omitempty"` // YYYY-MM-DD
	Count         int            `json:"count"`
	NextScheduled string         `json:"next_scheduled,omitempty"` // YYYY-MM-DD
	Status        ReminderStatus `json:"status"`
}

type HistoryType string

const (
	HistoryCredit   HistoryType = "Credit"
	HistoryPayment  HistoryType = "Payment"
	HistoryCustomer HistoryType = "Customer"
)

// HistoryEntry is one line of the append-only audit trail. Entries are
// recorded in mutation order and rendered as a running-balance ledger.
type HistoryEntry struct {
	Timestamp  string          `json:"timestamp"` // YYYY-MM-DD HH:MM
	CustomerID int             `json:"customer_id"`
	Type       HistoryType     `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Marker     string          `json:"marker"`
}

type RiskTier string

const (
	TierLow    RiskTier = "Low"
	TierMedium RiskTier = "Medium"
	TierHigh   RiskTier = "High"
)

// TierForScore maps a risk score to its display tier. The comparisons are
// deliberately strict/non-strict as given: a score of exactly 75 is Medium,
// exactly 55 is High.
func TierForScore(score int) RiskTier {
	switch {
	case score > 75:
		return TierLow
	case score > 55:
		return TierMedium
	default:
		return TierHigh
	}
}
