package app

import "github.com/shopspring/decimal"

// SaveCustomerRequest is the input for SaveCustomer. A zero ID (or one
// matching no existing customer) inserts; a matching ID updates in place.
type SaveCustomerRequest struct {
	ID          int             `json:"id,omitempty"`
	Name        string          `json:"name"`
	Contact     string          `json:"contact"`
	Address     string          `json:"address,omitempty"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Notes       string          `json:"notes,omitempty"`
}

// SaveCreditRequest is the input for SaveCredit. Dates are YYYY-MM-DD.
type SaveCreditRequest struct {
	ID         int             `json:"id,omitempty"`
	CustomerID int             `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	IssueDate  string          `json:"issue_date,omitempty"`
	DueDate    string          `json:"due_date"`
	Notes      string          `json:"notes,omitempty"`
}

// SavePaymentRequest is the input for SavePayment.
type SavePaymentRequest struct {
	ID         int             `json:"id,omitempty"`
	CustomerID int             `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Category   string          `json:"category,omitempty"`
	Method     string          `json:"method,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

// RecordReminderRequest is the input for RecordReminder. Status must be
// one of Queued, Sent, Planned.
type RecordReminderRequest struct {
	CustomerID int    `json:"customer_id"`
	Status     string `json:"status"`
}

// LimitCheckRequest is the input for CheckCreditLimit. ExcludeCreditID is
// set when an existing credit entry is being edited, so its current amount
// is left out of the projection.
type LimitCheckRequest struct {
	CustomerID      int             `json:"customer_id"`
	Amount          decimal.Decimal `json:"amount"`
	ExcludeCreditID int             `json:"exclude_credit_id,omitempty"`
}
