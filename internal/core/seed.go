package core

import "github.com/shopspring/decimal"

// Seed resets the store and loads the demo book: three customers, three
// open credit entries, and two partial payments. Intended for the REPL
// and for trying the API out; never loaded implicitly.
func Seed(s *Store) {
	s.Reset()

	s.AddCustomer(Customer{
		Name:        "Alice Traders",
		Contact:     "555-1010",
		CreditLimit: decimal.NewFromInt(2000),
		Notes:       "Frequent buyer",
		CreatedAt:   "2025-12-15",
	})
	s.AddCustomer(Customer{
		Name:        "Bright Supplies",
		Contact:     "555-2020",
		CreditLimit: decimal.NewFromInt(1500),
		Notes:       "Net 14 terms",
		CreatedAt:   "2025-12-01",
	})
	s.AddCustomer(Customer{
		Name:        "Cedar Mart",
		Contact:     "555-3030",
		CreditLimit: decimal.NewFromInt(1000),
		Notes:       "Seasonal spikes",
		CreatedAt:   "2025-11-20",
	})

	s.AddCredit(CreditEntry{
		CustomerID: 1,
		Amount:     decimal.NewFromInt(500),
		IssueDate:  "2026-01-03",
		DueDate:    "2026-01-10",
		Notes:      "Net 7",
	})
	s.AddCredit(CreditEntry{
		CustomerID:   2,
		Amount:       decimal.NewFromInt(800),
		IssueDate:    "2025-12-11",
		DueDate:      "2025-12-25",
		Notes:        "Net 14",
		ReminderSent: true,
	})
	s.AddCredit(CreditEntry{
		CustomerID: 3,
		Amount:     decimal.NewFromInt(300),
		IssueDate:  "2025-12-13",
		DueDate:    "2025-12-20",
		Notes:      "Net 7",
	})

	s.AddPayment(PaymentEntry{
		CustomerID: 1,
		Amount:     decimal.NewFromInt(200),
		Date:       "2026-01-05",
		Category:   "Repayment",
		Method:     "Bank Transfer",
		Notes:      "Partial",
	})
	s.AddPayment(PaymentEntry{
		CustomerID: 2,
		Amount:     decimal.NewFromInt(300),
		Date:       "2025-12-28",
		Category:   "Repayment",
		Method:     "Cash",
		Notes:      "Partial",
	})
}
