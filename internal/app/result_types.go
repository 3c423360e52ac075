package app

import (
	"github.com/shopspring/decimal"

	"github.com/ShewakS/Credit-System/internal/core"
)

// CustomerStatusRow is one customer with its derived balance and display
// status, as rendered on the dashboard and customer tables.
type CustomerStatusRow struct {
	Customer core.Customer   `json:"customer"`
	Balance  decimal.Decimal `json:"balance"`
	Overdue  bool            `json:"overdue"`
	Status   string          `json:"status"` // "Overdue" or "OK"
}

// DashboardResult is returned by GetDashboard.
type DashboardResult struct {
	Date   string             `json:"date"`
	Totals core.GlobalTotals  `json:"totals"`
	Rows   []CustomerStatusRow `json:"rows"`
}

// CustomerListResult is returned by ListCustomers.
type CustomerListResult struct {
	Rows []CustomerStatusRow `json:"rows"`
}

// CustomerResult is returned by SaveCustomer.
type CustomerResult struct {
	Customer core.Customer `json:"customer"`
}

// CreditListResult is returned by ListCredits.
type CreditListResult struct {
	Credits []core.CreditEntry `json:"credits"`
}

// CreditResult is returned by SaveCredit and ToggleReminder.
type CreditResult struct {
	Credit core.CreditEntry `json:"credit"`
}

// PaymentListResult is returned by ListPayments.
type PaymentListResult struct {
	Payments []core.PaymentEntry `json:"payments"`
}

// PaymentResult is returned by SavePayment.
type PaymentResult struct {
	Payment core.PaymentEntry `json:"payment"`
}

// CustomerSummaryResult is returned by GetCustomerSummary.
type CustomerSummaryResult struct {
	Customer core.Customer       `json:"customer"`
	Totals   core.CustomerTotals `json:"totals"`
	Risk     core.RiskProfile    `json:"risk"`
}

// OverdueResult is returned by GetOverdue.
type OverdueResult struct {
	Date string            `json:"date"`
	Rows []core.OverdueRow `json:"rows"`
}

// AgingResult is returned by the two aging queries. View is "upcoming" or
// "pastdue" so renderers cannot mix the two bucket semantics up.
type AgingResult struct {
	View    string            `json:"view"`
	Buckets core.AgingBuckets `json:"buckets"`
}

// StatementResult is returned by GetStatement.
type StatementResult struct {
	CustomerID   int                  `json:"customer_id"`
	CustomerName string               `json:"customer_name"`
	Lines        []core.StatementLine `json:"lines"`
}

// ReminderListResult is returned by ListReminders.
type ReminderListResult struct {
	Reminders []core.ReminderRecord `json:"reminders"`
}

// ReminderResult is returned by RecordReminder.
type ReminderResult struct {
	Reminder core.ReminderRecord `json:"reminder"`
}

// LimitCheckResult is returned by CheckCreditLimit.
type LimitCheckResult struct {
	Exceeded bool `json:"exceeded"`
}

// ClockResult is returned by AdvanceDate and CurrentDate.
type ClockResult struct {
	Date string `json:"date"` // YYYY-MM-DD
}
