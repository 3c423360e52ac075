package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Ledger is the write side of the credit system. Every mutation validates
// its input first and leaves the store untouched on failure. Derivations
// are never triggered here — the read side recomputes on demand.
type Ledger struct {
	store *Store
}

// NewLedger constructs a Ledger over the given store.
func NewLedger(store *Store) *Ledger {
	return &Ledger{store: store}
}

// SaveCustomer inserts or updates a customer. An input ID matching an
// existing customer updates name/contact/address/limit/notes in place;
// any other ID (including zero) inserts with a fresh id. Inserts stamp
// CreatedAt with the current simulated date and append a Customer history
// entry.
func (l *Ledger) SaveCustomer(in CustomerInput) (Customer, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return Customer{}, err
	}

	if existing, err := l.store.CustomerByID(in.ID); err == nil {
		existing.Name = in.Name
		existing.Contact = in.Contact
		existing.Address = in.Address
		existing.CreditLimit = in.CreditLimit
		existing.Notes = in.Notes
		if err := l.store.UpdateCustomer(existing); err != nil {
			return Customer{}, err
		}
		return existing, nil
	}

	stored := l.store.AddCustomer(Customer{
		Name:        in.Name,
		Contact:     in.Contact,
		Address:     in.Address,
		CreditLimit: in.CreditLimit,
		Notes:       in.Notes,
		CreatedAt:   l.store.DateString(),
	})
	l.store.AppendHistory(HistoryEntry{
		Timestamp:  l.store.Timestamp(),
		CustomerID: stored.ID,
		Type:       HistoryCustomer,
		Amount:     decimal.Zero,
		Marker:     "customer-added",
	})
	return stored, nil
}

// SaveCredit inserts or updates a credit entry. The referenced customer
// must exist. Inserts start with the reminder flag cleared and append a
// Credit history entry; updates replace fields in place without touching
// the audit trail.
func (l *Ledger) SaveCredit(in CreditInput) (CreditEntry, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return CreditEntry{}, err
	}
	if _, err := l.store.CustomerByID(in.CustomerID); err != nil {
		return CreditEntry{}, fmt.Errorf("customer %d: %w", in.CustomerID, err)
	}

	if existing, err := l.store.CreditByID(in.ID); err == nil {
		existing.CustomerID = in.CustomerID
		existing.Amount = in.Amount
		existing.IssueDate = in.IssueDate
		existing.DueDate = in.DueDate
		existing.Notes = in.Notes
		if err := l.store.UpdateCredit(existing); err != nil {
			return CreditEntry{}, err
		}
		return existing, nil
	}

	stored := l.store.AddCredit(CreditEntry{
		CustomerID:   in.CustomerID,
		Amount:       in.Amount,
		IssueDate:    in.IssueDate,
		DueDate:      in.DueDate,
		Notes:        in.Notes,
		ReminderSent: false,
	})
	l.store.AppendHistory(HistoryEntry{
		Timestamp:  l.store.Timestamp(),
		CustomerID: stored.CustomerID,
		Type:       HistoryCredit,
		Amount:     stored.Amount,
		Marker:     "credit-issued",
	})
	return stored, nil
}

// SavePayment inserts or updates a payment entry. The referenced customer
// must exist. Inserts append a Payment history entry.
func (l *Ledger) SavePayment(in PaymentInput) (PaymentEntry, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return PaymentEntry{}, err
	}
	if _, err := l.store.CustomerByID(in.CustomerID); err != nil {
		return PaymentEntry{}, fmt.Errorf("customer %d: %w", in.CustomerID, err)
	}

	if existing, err := l.store.PaymentByID(in.ID); err == nil {
		existing.CustomerID = in.CustomerID
		existing.Amount = in.Amount
		existing.Date = in.Date
		existing.Category = in.Category
		existing.Method = in.Method
		existing.Notes = in.Notes
		if err := l.store.UpdatePayment(existing); err != nil {
			return PaymentEntry{}, err
		}
		return existing, nil
	}

	stored := l.store.AddPayment(PaymentEntry{
		CustomerID: in.CustomerID,
		Amount:     in.Amount,
		Date:       in.Date,
		Category:   in.Category,
		Method:     in.Method,
		Notes:      in.Notes,
	})
	l.store.AppendHistory(HistoryEntry{
		Timestamp:  l.store.Timestamp(),
		CustomerID: stored.CustomerID,
		Type:       HistoryPayment,
		Amount:     stored.Amount,
		Marker:     "payment-received",
	})
	return stored, nil
}

// ToggleReminder flips the reminder-sent flag on a credit entry.
func (l *Ledger) ToggleReminder(creditID int) (CreditEntry, error) {
	credit, err := l.store.CreditByID(creditID)
	if err != nil {
		return CreditEntry{}, fmt.Errorf("credit entry %d: %w", creditID, err)
	}
	credit.ReminderSent = !credit.ReminderSent
	if err := l.store.UpdateCredit(credit); err != nil {
		return CreditEntry{}, err
	}
	return credit, nil
}

// RecordReminder upserts the reminder record for a customer. A Sent status
// bumps the cumulative count, stamps the last-sent date, and schedules the
// next reminder seven days out; Queued and Planned only set the status and
// next date.
func (l *Ledger) RecordReminder(customerID int, status ReminderStatus) (ReminderRecord, error) {
	switch status {
	case ReminderQueued, ReminderSent, ReminderPlanned:
	default:
		return ReminderRecord{}, fmt.Errorf("%w: unknown reminder status %q", ErrValidation, status)
	}
	if _, err := l.store.CustomerByID(customerID); err != nil {
		return ReminderRecord{}, fmt.Errorf("customer %d: %w", customerID, err)
	}

	rec, err := l.store.ReminderByCustomer(customerID)
	if err != nil {
		rec = ReminderRecord{CustomerID: customerID}
	}
	today := l.store.Today()
	rec.Status = status
	rec.NextScheduled = today.AddDate(0, 0, 7).Format(dateLayout)
	if status == ReminderSent {
		rec.LastSent = today.Format(dateLayout)
		rec.Count++
	}
	l.store.UpsertReminder(rec)
	return rec, nil
}

// LimitExceeded reports whether adding candidate to the customer's current
// balance would push it strictly past the credit limit. When an existing
// credit entry is being edited its current amount is excluded from the
// projection. Pure predicate: it drives a non-blocking warning, never an
// enforcement gate.
func (l *Ledger) LimitExceeded(customerID int, candidate decimal.Decimal, excludeCreditID int) (bool, error) {
	customer, err := l.store.CustomerByID(customerID)
	if err != nil {
		return false, fmt.Errorf("customer %d: %w", customerID, err)
	}

	balance := decimal.Zero
	for _, c := range l.store.Credits() {
		if c.CustomerID != customerID {
			continue
		}
		if excludeCreditID > 0 && c.ID == excludeCreditID {
			continue
		}
		balance = balance.Add(c.Amount)
	}
	for _, p := range l.store.Payments() {
		if p.CustomerID == customerID {
			balance = balance.Sub(p.Amount)
		}
	}

	return balance.Add(candidate).GreaterThan(customer.CreditLimit), nil
}
