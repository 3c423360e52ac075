package core

import (
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when an id lookup matches no record. Callers are
// expected to degrade gracefully (typically by displaying the raw id)
// rather than failing a whole render.
var ErrNotFound = errors.New("record not found")

// ErrValidation is returned when a mutation is rejected. The store is left
// untouched; the caller is expected to re-prompt.
var ErrValidation = errors.New("validation failed")

// Store owns every collection and the simulated clock. It provides storage,
// id assignment, and lookup by id — nothing else. All business rules live
// in Ledger (writes) and ReportingService (reads).
//
// The core is logically single-writer, but the web adapter serves requests
// concurrently, so access is guarded by an RWMutex.
type Store struct {
	mu        sync.RWMutex
	clock     *Clock
	customers []Customer
	credits   []CreditEntry
	payments  []PaymentEntry
	reminders []ReminderRecord
	history   []HistoryEntry
}

// NewStore returns an empty store driven by the given clock.
func NewStore(clock *Clock) *Store {
	return &Store{clock: clock}
}

// Reset clears every collection. The clock keeps its current date.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = nil
	s.credits = nil
	s.payments = nil
	s.reminders = nil
	s.history = nil
}

// Advance moves the simulated date forward by days calendar days.
func (s *Store) Advance(days int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock.Advance(days)
}

// Today returns the current simulated date, truncated to midnight UTC.
func (s *Store) Today() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clock.Today()
}

// DateString returns the current simulated date as YYYY-MM-DD.
func (s *Store) DateString() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clock.DateString()
}

// Timestamp returns the current simulated instant as YYYY-MM-DD HH:MM.
func (s *Store) Timestamp() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clock.Timestamp()
}

// ── Snapshots ─────────────────────────────────────────────────────────────────

// Customers returns a copy of the customer collection.
func (s *Store) Customers() []Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// Credits returns a copy of the credit entry collection.
func (s *Store) Credits() []CreditEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]CreditEntry, len(s.credits))
	copy(out, s.credits)
	return out
}

// Payments returns a copy of the payment entry collection.
func (s *Store) Payments() []PaymentEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]PaymentEntry, len(s.payments))
	copy(out, s.payments)
	return out
}

// Reminders returns a copy of the reminder record collection.
func (s *Store) Reminders() []ReminderRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ReminderRecord, len(s.reminders))
	copy(out, s.reminders)
	return out
}

// History returns a copy of the audit trail in insertion order.
func (s *Store) History() []HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// ── Lookups ───────────────────────────────────────────────────────────────────

// CustomerByID returns the customer with the given id or ErrNotFound.
func (s *Store) CustomerByID(id int) (Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return Customer{}, ErrNotFound
}

// CreditByID returns the credit entry with the given id or ErrNotFound.
func (s *Store) CreditByID(id int) (CreditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.credits {
		if c.ID == id {
			return c, nil
		}
	}
	return CreditEntry{}, ErrNotFound
}

// PaymentByID returns the payment entry with the given id or ErrNotFound.
func (s *Store) PaymentByID(id int) (PaymentEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return PaymentEntry{}, ErrNotFound
}

// ReminderByCustomer returns the reminder record for the given customer
// or ErrNotFound.
func (s *Store) ReminderByCustomer(customerID int) (ReminderRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reminders {
		if r.CustomerID == customerID {
			return r, nil
		}
	}
	return ReminderRecord{}, ErrNotFound
}

// ── Mutations ─────────────────────────────────────────────────────────────────
//
// Add* assigns the next id (max existing + 1, minimum 1) and appends.
// Update* replaces the record with the matching id or returns ErrNotFound.

// AddCustomer appends c with a freshly assigned id and returns the stored record.
func (s *Store) AddCustomer(c Customer) Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = nextID(s.customers, func(x Customer) int { return x.ID })
	s.customers = append(s.customers, c)
	return c
}

// UpdateCustomer replaces the customer with c.ID.
func (s *Store) UpdateCustomer(c Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == c.ID {
			s.customers[i] = c
			return nil
		}
	}
	return ErrNotFound
}

// AddCredit appends c with a freshly assigned id and returns the stored record.
func (s *Store) AddCredit(c CreditEntry) CreditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = nextID(s.credits, func(x CreditEntry) int { return x.ID })
	s.credits = append(s.credits, c)
	return c
}

// UpdateCredit replaces the credit entry with c.ID.
func (s *Store) UpdateCredit(c CreditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.credits {
		if s.credits[i].ID == c.ID {
			s.credits[i] = c
			return nil
		}
	}
	return ErrNotFound
}

// AddPayment appends p with a freshly assigned id and returns the stored record.
func (s *Store) AddPayment(p PaymentEntry) PaymentEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = nextID(s.payments, func(x PaymentEntry) int { return x.ID })
	s.payments = append(s.payments, p)
	return p
}

// UpdatePayment replaces the payment entry with p.ID.
func (s *Store) UpdatePayment(p PaymentEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].ID == p.ID {
			s.payments[i] = p
			return nil
		}
	}
	return ErrNotFound
}

// UpsertReminder replaces the reminder record for r.CustomerID, or appends
// it if the customer has none yet.
func (s *Store) UpsertReminder(r ReminderRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reminders {
		if s.reminders[i].CustomerID == r.CustomerID {
			s.reminders[i] = r
			return
		}
	}
	s.reminders = append(s.reminders, r)
}

// AppendHistory appends h to the audit trail.
func (s *Store) AppendHistory(h HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, h)
}

func nextID[T any](items []T, id func(T) int) int {
	max := 0
	for _, it := range items {
		if v := id(it); v > max {
			max = v
		}
	}
	return max + 1
}
