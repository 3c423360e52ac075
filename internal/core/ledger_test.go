package core_test

import (
	"errors"
	"testing"

	"github.com/ShewakS/Credit-System/internal/core"
)

func newLedgerFixture(t *testing.T, today string) (*core.Store, *core.Ledger) {
	t.Helper()
	store := core.NewStore(core.NewClock(mustDate(t, today)))
	return store, core.NewLedger(store)
}

func addCustomer(t *testing.T, ledger *core.Ledger, name string, limit int64) core.Customer {
	t.Helper()
	cust, err := ledger.SaveCustomer(core.CustomerInput{Name: name, Contact: "555-0000", CreditLimit: dec(limit)})
	if err != nil {
		t.Fatalf("SaveCustomer(%s): %v", name, err)
	}
	return cust
}

func TestSaveCustomer_InsertStampsCreatedAtAndHistory(t *testing.T) {
	store, ledger := newLedgerFixture(t, "2026-01-19")

	cust, err := ledger.SaveCustomer(core.CustomerInput{Name: "  Alice Traders  ", Contact: "555-1010", CreditLimit: dec(2000)})
	if err != nil {
		t.Fatalf("SaveCustomer: %v", err)
	}
	if cust.ID != 1 {
		t.Errorf("ID = %d, want 1", cust.ID)
	}
	if cust.Name != "Alice Traders" {
		t.Errorf("Name = %q, want trimmed %q", cust.Name, "Alice Traders")
	}
	if cust.CreatedAt != "2026-01-19" {
		t.Errorf("CreatedAt = %q, want current date", cust.CreatedAt)
	}

	history := store.History()
	if len(history) != 1 {
		t.Fatalf("got %d history entries, want 1", len(history))
	}
	if history[0].Type != core.HistoryCustomer || history[0].Marker != "customer-added" {
		t.Errorf("history entry = %+v, want customer-added", history[0])
	}
}

func TestSaveCustomer_UpdatePreservesCreatedAt(t *testing.T) {
	store, ledger := newLedgerFixture(t, "2026-01-19")
	cust := addCustomer(t, ledger, "Alice Traders", 2000)

	if err := store.Advance(5); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	updated, err := ledger.SaveCustomer(core.CustomerInput{
		ID: cust.ID, Name: "Alice Traders Ltd", Contact: "555-9999", CreditLimit: dec(3000),
	})
	if err != nil {
		t.Fatalf("SaveCustomer update: %v", err)
	}
	if updated.ID != cust.ID {
		t.Errorf("update changed id from %d to %d", cust.ID, updated.ID)
	}
	if updated.Name != "Alice Traders Ltd" || updated.Contact != "555-9999" {
		t.Errorf("fields not replaced: %+v", updated)
	}
	if updated.CreatedAt != cust.CreatedAt {
		t.Errorf("update rewrote CreatedAt: %q -> %q", cust.CreatedAt, updated.CreatedAt)
	}
	if got := len(store.Customers()); got != 1 {
		t.Errorf("store has %d customers after update, want 1", got)
	}
	// Updates leave the audit trail alone.
	if got := len(store.History()); got != 1 {
		t.Errorf("history has %d entries after update, want 1", got)
	}
}

func TestSaveCustomer_Validation(t *testing.T) {
	_, ledger := newLedgerFixture(t, "2026-01-19")

	tests := []struct {
		name string
		in   core.CustomerInput
	}{
		{"empty name", core.CustomerInput{Name: "   ", Contact: "555-1010", CreditLimit: dec(100)}},
		{"empty contact", core.CustomerInput{Name: "Alice", Contact: "", CreditLimit: dec(100)}},
		{"negative limit", core.CustomerInput{Name: "Alice", Contact: "555-1010", CreditLimit: dec(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ledger.SaveCustomer(tt.in); !errors.Is(err, core.ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestSaveCredit_AssignsNextIDAndRecordsHistory(t *testing.T) {
	store, ledger := newLedgerFixture(t, "2026-01-19")
	cust := addCustomer(t, ledger, "Alice Traders", 2000)

	// Pre-load four credits so ids 1..4 are taken.
	for i := 0; i < 4; i++ {
		store.AddCredit(core.CreditEntry{CustomerID: cust.ID, Amount: dec(10), IssueDate: "2026-01-01", DueDate: "2026-02-01"})
	}

	credit, err := ledger.SaveCredit(core.CreditInput{CustomerID: cust.ID, Amount: dec(250), IssueDate: "2026-01-19", DueDate: "2026-02-19"})
	if err != nil {
		t.Fatalf("SaveCredit: %v", err)
	}
	if credit.ID != 5 {
		t.Errorf("ID = %d, want 5", credit.ID)
	}
	if credit.ReminderSent {
		t.Error("fresh credit starts with reminder flag set")
	}

	history := store.History()
	last := history[len(history)-1]
	if last.Type != core.HistoryCredit || last.Marker != "credit-issued" {
		t.Errorf("last history entry = %+v, want credit-issued", last)
	}
	assertDecimal(t, "history amount", last.Amount, dec(250))
}

func TestSaveCredit_DefaultsIssueDateToDueDate(t *testing.T) {
	_, ledger := newLedgerFixture(t, "2026-01-19")
	cust := addCustomer(t, ledger, "Alice Traders", 2000)

	credit, err := ledger.SaveCredit(core.CreditInput{CustomerID: cust.ID, Amount: dec(100), DueDate: "2026-02-01"})
	if err != nil {
		t.Fatalf("SaveCredit: %v", err)
	}
	if credit.IssueDate != "2026-02-01" {
		t.Errorf("IssueDate = %q, want defaulted to due date", credit.IssueDate)
	}
}

func TestSaveCredit_RejectsUnknownCustomer(t *testing.T) {
	store, ledger := newLedgerFixture(t, "2026-01-19")

	_, err := ledger.SaveCredit(core.CreditInput{CustomerID: 99, Amount: dec(100), IssueDate: "2026-01-19", DueDate: "2026-02-01"})
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if got := len(store.Credits()); got != 0 {
		t.Errorf("rejected save still stored %d credits", got)
	}
}

func TestSaveCredit_Validation(t *testing.T) {
	_, ledger := newLedgerFixture(t, "2026-01-19")
	cust := addCustomer(t, ledger, "Alice Traders", 2000)

	tests := []struct {
		name string
		in   core.CreditInput
	}{
		{"zero amount", core.CreditInput{CustomerID: cust.ID, Amount: dec(0), IssueDate: "2026-01-19", DueDate: "2026-02-01"}},
		{"negative amount", core.CreditInput{CustomerID: cust.ID, Amount: dec(-50), IssueDate: "2026-01-19", DueDate: "2026-02-01"}},
		{"missing due date", core.CreditInput{CustomerID: cust.ID, Amount: dec(100), IssueDate: "2026-01-19"}},
		{"malformed due date", core.CreditInput{CustomerID: cust.ID, Amount: dec(100), IssueDate: "2026-01-19", DueDate: "01/02/2026"}},
		{"no customer reference", core.CreditInput{Amount: dec(100), IssueDate: "2026-01-19", DueDate: "2026-02-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ledger.SaveCredit(tt.in); !errors.Is(err, core.ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestSaveCredit_UpdateReplacesInPlace(t *testing.T) {
	store, ledger := newLedgerFixture(t, "2026-01-19")
	cust := addCustomer(t, ledger, "Alice Traders", 2000)
	credit, err := ledger.SaveCredit(core.CreditInput{CustomerID: cust.ID, Amount: dec(100), IssueDate: "2026-01-19", DueDate: "2026-02-01"})
	if err != nil {
		t.Fatalf("SaveCredit: %v", err)
	}

	historyBefore := len(store.History())
	updated, err := ledger.SaveCredit(core.CreditInput{
		ID: credit.ID, CustomerID: cust.ID, Amount: dec(175), IssueDate: "2026-01-19", DueDate: "2026-02-15",
	})
	if err != nil {
		t.Fatalf("SaveCredit update: %v", err)
	}
	if updated.ID != credit.ID {
		t.Errorf("update changed id from %d to %d", credit.ID, updated.ID)
	}
	assertDecimal(t, "Amount", updated.Amount, dec(175))
	if updated.DueDate != "2026-02-15" {
		t.Errorf("DueDate = %q, want 2026-02-15", updated.DueDate)
	}
	if got := len(store.Credits()); got != 1 {
		t.Errorf("store has %d credits after update, want 1", got)
	}
	if got := len(store.History()); got != historyBefore {
		t.Errorf("update appended history: %d -> %d entries", historyBefore, got)
	}
}

func TestSavePayment_InsertAndReject(t *testing.T) {
	store, ledger := newLedgerFixture(t, "2026-01-19")
	cust := addCustomer(t, ledger, "Alice Traders", 2000)

	payment, err := ledger.SavePayment(core.PaymentInput{CustomerID: cust.ID, Amount: dec(200), Date: "2026-01-19", Method: "Cash"})
	if err != nil {
		t.Fatalf("SavePayment: %v", err)
	}
	if payment.ID != 1 {
		t.Errorf("ID = %d, want 1", payment.ID)
	}
	history := store.History()
	last := history[len(history)-1]
	if last.Type != core.HistoryPayment || last.Marker != "payment-received" {
		t.Errorf("last history entry = %+v, want payment-received", last)
	}

	if _, err := ledger.SavePayment(core.PaymentInput{CustomerID: 99, Amount: dec(50), Date: "2026-01-19"}); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("unknown customer err = %v, want ErrNotFound", err)
	}
	if _, err := ledger.SavePayment(core.PaymentInput{CustomerID: cust.ID, Amount: dec(50), Date: ""}); !errors.Is(err, core.ErrValidation) {
		t.Errorf("missing date err = %v, want ErrValidation", err)
	}
}

func TestToggleReminder(t *testing.T) {
	_, ledger := newLedgerFixture(t, "2026-01-19")
	cust := addCustomer(t, ledger, "Alice Traders", 2000)
	credit, err := ledger.SaveCredit(core.CreditInput{CustomerID: cust.ID, Amount: dec(100), IssueDate: "2026-01-01", DueDate: "2026-01-10"})
	if err != nil {
		t.Fatalf("SaveCredit: %v", err)
	}

	flipped, err := ledger.ToggleReminder(credit.ID)
	if err != nil {
		t.Fatalf("ToggleReminder: %v", err)
	}
	if !flipped.ReminderSent {
		t.Error("first toggle did not set the flag")
	}
	flipped, err = ledger.ToggleReminder(credit.ID)
	if err != nil {
		t.Fatalf("ToggleReminder: %v", err)
	}
	if flipped.ReminderSent {
		t.Error("second toggle did not clear the flag")
	}

	if _, err := ledger.ToggleReminder(99); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("unknown credit err = %v, want ErrNotFound", err)
	}
}

func TestRecordReminder(t *testing.T) {
	_, ledger := newLedgerFixture(t, "2026-01-19")
	cust := addCustomer(t, ledger, "Alice Traders", 2000)

	rec, err := ledger.RecordReminder(cust.ID, core.ReminderSent)
	if err != nil {
		t.Fatalf("RecordReminder: %v", err)
	}
	if rec.Count != 1 || rec.LastSent != "2026-01-19" {
		t.Errorf("sent record = %+v, want count 1 sent today", rec)
	}
	if rec.NextScheduled != "2026-01-26" {
		t.Errorf("NextScheduled = %q, want seven days out", rec.NextScheduled)
	}

	// A second send accumulates on the same record.
	rec, err = ledger.RecordReminder(cust.ID, core.ReminderSent)
	if err != nil {
		t.Fatalf("RecordReminder: %v", err)
	}
	if rec.Count != 2 {
		t.Errorf("Count = %d, want 2", rec.Count)
	}

	// Queued reschedules without bumping the count.
	rec, err = ledger.RecordReminder(cust.ID, core.ReminderQueued)
	if err != nil {
		t.Fatalf("RecordReminder: %v", err)
	}
	if rec.Count != 2 || rec.Status != core.ReminderQueued {
		t.Errorf("queued record = %+v, want count unchanged", rec)
	}

	if _, err := ledger.RecordReminder(cust.ID, "shouted"); !errors.Is(err, core.ErrValidation) {
		t.Errorf("bad status err = %v, want ErrValidation", err)
	}
	if _, err := ledger.RecordReminder(99, core.ReminderSent); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("unknown customer err = %v, want ErrNotFound", err)
	}
}

func TestLimitExceeded(t *testing.T) {
	_, ledger := newLedgerFixture(t, "2026-01-19")
	cust := addCustomer(t, ledger, "Alice Traders", 5000)
	// Balance sits at 700: 900 of credit minus a 200 payment.
	credit, err := ledger.SaveCredit(core.CreditInput{CustomerID: cust.ID, Amount: dec(900), IssueDate: "2026-01-01", DueDate: "2026-02-01"})
	if err != nil {
		t.Fatalf("SaveCredit: %v", err)
	}
	if _, err := ledger.SavePayment(core.PaymentInput{CustomerID: cust.ID, Amount: dec(200), Date: "2026-01-10"}); err != nil {
		t.Fatalf("SavePayment: %v", err)
	}

	// Landing exactly on the limit is allowed; one past it is not.
	exceeded, err := ledger.LimitExceeded(cust.ID, dec(4300), 0)
	if err != nil {
		t.Fatalf("LimitExceeded: %v", err)
	}
	if exceeded {
		t.Error("projection equal to the limit reported as exceeded")
	}
	exceeded, err = ledger.LimitExceeded(cust.ID, dec(4301), 0)
	if err != nil {
		t.Fatalf("LimitExceeded: %v", err)
	}
	if !exceeded {
		t.Error("projection past the limit not reported")
	}

	// Editing the existing credit excludes its current amount.
	exceeded, err = ledger.LimitExceeded(cust.ID, dec(5200), credit.ID)
	if err != nil {
		t.Fatalf("LimitExceeded: %v", err)
	}
	if exceeded {
		t.Error("edit projection counted the credit being replaced")
	}

	if _, err := ledger.LimitExceeded(99, dec(1), 0); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("unknown customer err = %v, want ErrNotFound", err)
	}
}
