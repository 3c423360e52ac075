package app

import "context"

// ApplicationService is the single interface all UI adapters (REPL, CLI,
// Web) call. It decouples presentation from the ledger core. Implementations
// must contain no fmt.Println, no ANSI codes, and no display logic of any kind.
type ApplicationService interface {
	// GetDashboard returns the global KPI totals plus one status row per customer.
	GetDashboard(ctx context.Context) (*DashboardResult, error)

	// ListCustomers returns every customer with its derived balance and status.
	ListCustomers(ctx context.Context) (*CustomerListResult, error)

	// SaveCustomer inserts or updates a customer (update when the id matches
	// an existing record).
	SaveCustomer(ctx context.Context, req SaveCustomerRequest) (*CustomerResult, error)

	// ListCredits returns every credit entry.
	ListCredits(ctx context.Context) (*CreditListResult, error)

	// SaveCredit inserts or updates a credit entry. The referenced customer
	// must exist. Inserts append to the audit trail.
	SaveCredit(ctx context.Context, req SaveCreditRequest) (*CreditResult, error)

	// ToggleReminder flips the reminder-sent flag on a credit entry.
	ToggleReminder(ctx context.Context, creditID int) (*CreditResult, error)

	// ListPayments returns every payment entry.
	ListPayments(ctx context.Context) (*PaymentListResult, error)

	// SavePayment inserts or updates a payment entry. Overpayment is allowed.
	SavePayment(ctx context.Context, req SavePaymentRequest) (*PaymentResult, error)

	// GetCustomerSummary returns a customer together with its derived totals
	// and risk profile.
	GetCustomerSummary(ctx context.Context, customerID int) (*CustomerSummaryResult, error)

	// GetOverdue returns one display row per past-due credit entry with an
	// outstanding amount.
	GetOverdue(ctx context.Context) (*OverdueResult, error)

	// GetUpcomingAging buckets not-yet-due credit by days until due.
	GetUpcomingAging(ctx context.Context) (*AgingResult, error)

	// GetPastDueAging buckets overdue credit by days since due.
	GetPastDueAging(ctx context.Context) (*AgingResult, error)

	// GetStatement returns the customer's audit trail with a running balance.
	GetStatement(ctx context.Context, customerID int) (*StatementResult, error)

	// ListReminders returns every reminder record.
	ListReminders(ctx context.Context) (*ReminderListResult, error)

	// RecordReminder upserts the reminder record for a customer.
	RecordReminder(ctx context.Context, req RecordReminderRequest) (*ReminderResult, error)

	// CheckCreditLimit reports whether a candidate credit amount would push
	// the customer past its limit. Warning only, never an enforcement gate.
	CheckCreditLimit(ctx context.Context, req LimitCheckRequest) (*LimitCheckResult, error)

	// AdvanceDate moves the simulated date forward by days calendar days
	// and returns the new date.
	AdvanceDate(ctx context.Context, days int) (*ClockResult, error)

	// CurrentDate returns the current simulated date.
	CurrentDate(ctx context.Context) (*ClockResult, error)

	// ResetLedger clears every collection. The simulated date is kept.
	ResetLedger(ctx context.Context) error

	// SeedDemoData replaces the book with the demo fixture.
	SeedDemoData(ctx context.Context) error
}
