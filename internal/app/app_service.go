package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ShewakS/Credit-System/internal/core"
)

type appService struct {
	store     *core.Store
	ledger    *core.Ledger
	reporting core.ReportingService
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(store *core.Store, ledger *core.Ledger, reporting core.ReportingService) ApplicationService {
	return &appService{store: store, ledger: ledger, reporting: reporting}
}

func (s *appService) statusRows() []CustomerStatusRow {
	customers := s.store.Customers()
	rows := make([]CustomerStatusRow, 0, len(customers))
	for _, c := range customers {
		t := s.reporting.CustomerTotals(c.ID)
		overdue := t.OverdueAmount.IsPositive()
		status := "OK"
		if overdue {
			status = "Overdue"
		}
		rows = append(rows, CustomerStatusRow{
			Customer: c,
			Balance:  t.Balance,
			Overdue:  overdue,
			Status:   status,
		})
	}
	return rows
}

// GetDashboard returns the global KPI totals plus one status row per customer.
func (s *appService) GetDashboard(ctx context.Context) (*DashboardResult, error) {
	return &DashboardResult{
		Date:   s.store.DateString(),
		Totals: s.reporting.GlobalTotals(),
		Rows:   s.statusRows(),
	}, nil
}

// ListCustomers returns every customer with its derived balance and status.
func (s *appService) ListCustomers(ctx context.Context) (*CustomerListResult, error) {
	return &CustomerListResult{Rows: s.statusRows()}, nil
}

// SaveCustomer inserts or updates a customer.
func (s *appService) SaveCustomer(ctx context.Context, req SaveCustomerRequest) (*CustomerResult, error) {
	customer, err := s.ledger.SaveCustomer(core.CustomerInput{
		ID:          req.ID,
		Name:        req.Name,
		Contact:     req.Contact,
		Address:     req.Address,
		CreditLimit: req.CreditLimit,
		Notes:       req.Notes,
	})
	if err != nil {
		return nil, err
	}
	return &CustomerResult{Customer: customer}, nil
}

// ListCredits returns every credit entry.
func (s *appService) ListCredits(ctx context.Context) (*CreditListResult, error) {
	return &CreditListResult{Credits: s.store.Credits()}, nil
}

// SaveCredit inserts or updates a credit entry.
func (s *appService) SaveCredit(ctx context.Context, req SaveCreditRequest) (*CreditResult, error) {
	credit, err := s.ledger.SaveCredit(core.CreditInput{
		ID:         req.ID,
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		IssueDate:  req.IssueDate,
		DueDate:    req.DueDate,
		Notes:      req.Notes,
	})
	if err != nil {
		return nil, err
	}
	return &CreditResult{Credit: credit}, nil
}

// ToggleReminder flips the reminder-sent flag on a credit entry.
func (s *appService) ToggleReminder(ctx context.Context, creditID int) (*CreditResult, error) {
	credit, err := s.ledger.ToggleReminder(creditID)
	if err != nil {
		return nil, err
	}
	return &CreditResult{Credit: credit}, nil
}

// ListPayments returns every payment entry.
func (s *appService) ListPayments(ctx context.Context) (*PaymentListResult, error) {
	return &PaymentListResult{Payments: s.store.Payments()}, nil
}

// SavePayment inserts or updates a payment entry.
func (s *appService) SavePayment(ctx context.Context, req SavePaymentRequest) (*PaymentResult, error) {
	payment, err := s.ledger.SavePayment(core.PaymentInput{
		ID:         req.ID,
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Date:       req.Date,
		Category:   req.Category,
		Method:     req.Method,
		Notes:      req.Notes,
	})
	if err != nil {
		return nil, err
	}
	return &PaymentResult{Payment: payment}, nil
}

// GetCustomerSummary returns a customer with its derived totals and risk profile.
func (s *appService) GetCustomerSummary(ctx context.Context, customerID int) (*CustomerSummaryResult, error) {
	customer, err := s.store.CustomerByID(customerID)
	if err != nil {
		return nil, fmt.Errorf("customer %d: %w", customerID, err)
	}
	return &CustomerSummaryResult{
		Customer: customer,
		Totals:   s.reporting.CustomerTotals(customerID),
		Risk:     s.reporting.RiskProfile(customerID),
	}, nil
}

// GetOverdue returns one display row per past-due credit entry.
func (s *appService) GetOverdue(ctx context.Context) (*OverdueResult, error) {
	return &OverdueResult{Date: s.store.DateString(), Rows: s.reporting.OverdueRows()}, nil
}

// GetUpcomingAging buckets not-yet-due credit by days until due.
func (s *appService) GetUpcomingAging(ctx context.Context) (*AgingResult, error) {
	return &AgingResult{View: "upcoming", Buckets: s.reporting.UpcomingAging()}, nil
}

// GetPastDueAging buckets overdue credit by days since due.
func (s *appService) GetPastDueAging(ctx context.Context) (*AgingResult, error) {
	return &AgingResult{View: "pastdue", Buckets: s.reporting.PastDueAging()}, nil
}

// GetStatement returns the customer's audit trail with a running balance.
// An unknown customer id degrades to the raw id as the display name.
func (s *appService) GetStatement(ctx context.Context, customerID int) (*StatementResult, error) {
	name := strconv.Itoa(customerID)
	if customer, err := s.store.CustomerByID(customerID); err == nil {
		name = customer.Name
	}
	return &StatementResult{
		CustomerID:   customerID,
		CustomerName: name,
		Lines:        s.reporting.CustomerStatement(customerID),
	}, nil
}

// ListReminders returns every reminder record.
func (s *appService) ListReminders(ctx context.Context) (*ReminderListResult, error) {
	return &ReminderListResult{Reminders: s.store.Reminders()}, nil
}

// RecordReminder upserts the reminder record for a customer.
func (s *appService) RecordReminder(ctx context.Context, req RecordReminderRequest) (*ReminderResult, error) {
	rec, err := s.ledger.RecordReminder(req.CustomerID, core.ReminderStatus(req.Status))
	if err != nil {
		return nil, err
	}
	return &ReminderResult{Reminder: rec}, nil
}

// CheckCreditLimit projects the candidate amount against the customer's limit.
func (s *appService) CheckCreditLimit(ctx context.Context, req LimitCheckRequest) (*LimitCheckResult, error) {
	exceeded, err := s.ledger.LimitExceeded(req.CustomerID, req.Amount, req.ExcludeCreditID)
	if err != nil {
		return nil, err
	}
	return &LimitCheckResult{Exceeded: exceeded}, nil
}

// AdvanceDate moves the simulated date forward.
func (s *appService) AdvanceDate(ctx context.Context, days int) (*ClockResult, error) {
	if err := s.store.Advance(days); err != nil {
		return nil, err
	}
	return &ClockResult{Date: s.store.DateString()}, nil
}

// CurrentDate returns the current simulated date.
func (s *appService) CurrentDate(ctx context.Context) (*ClockResult, error) {
	return &ClockResult{Date: s.store.DateString()}, nil
}

// ResetLedger clears every collection, keeping the simulated date.
func (s *appService) ResetLedger(ctx context.Context) error {
	s.store.Reset()
	return nil
}

// SeedDemoData replaces the book with the demo fixture.
func (s *appService) SeedDemoData(ctx context.Context) error {
	core.Seed(s.store)
	return nil
}
