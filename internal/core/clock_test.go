package core_test

import (
	"errors"
	"testing"

	"github.com/ShewakS/Credit-System/internal/core"
)

func TestClockAdvance(t *testing.T) {
	clock := core.NewClock(mustDate(t, "2026-01-28"))

	if err := clock.Advance(5); err != nil {
		t.Fatalf("Advance(5): %v", err)
	}
	if got := clock.DateString(); got != "2026-02-02" {
		t.Errorf("DateString = %q, want month rollover to 2026-02-02", got)
	}

	for _, days := range []int{0, -1} {
		if err := clock.Advance(days); !errors.Is(err, core.ErrValidation) {
			t.Errorf("Advance(%d) err = %v, want ErrValidation", days, err)
		}
	}
	if got := clock.DateString(); got != "2026-02-02" {
		t.Errorf("rejected advance still moved the clock to %q", got)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2026-01-19", "2026-01-05", 14},
		{"2026-01-05", "2026-01-19", -14},
		{"2026-01-19", "2026-01-19", 0},
		{"2026-03-01", "2026-02-28", 1}, // not a leap year
		{"2026-01-01", "2025-12-25", 7},
	}
	for _, tt := range tests {
		got := core.DaysBetween(mustDate(t, tt.a), mustDate(t, tt.b))
		if got != tt.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	if _, err := core.ParseDate("2026-01-19"); err != nil {
		t.Errorf("ParseDate valid date: %v", err)
	}
	for _, s := range []string{"", "19-01-2026", "2026/01/19", "2026-13-01", "yesterday"} {
		if _, err := core.ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) accepted a malformed date", s)
		}
	}
}

func TestStoreAdvanceReagesLedger(t *testing.T) {
	// A credit due tomorrow becomes overdue after advancing two days,
	// with no writes in between.
	store, reporting := newFixture(t, "2026-01-19")
	cust := store.AddCustomer(core.Customer{Name: "Alice Traders", Contact: "555-1010", CreditLimit: dec(2000), CreatedAt: "2026-01-01"})
	store.AddCredit(core.CreditEntry{CustomerID: cust.ID, Amount: dec(400), IssueDate: "2026-01-12", DueDate: "2026-01-20"})

	assertDecimal(t, "overdue before", reporting.CustomerTotals(cust.ID).OverdueAmount, dec(0))

	if err := store.Advance(2); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	totals := reporting.CustomerTotals(cust.ID)
	assertDecimal(t, "overdue after", totals.OverdueAmount, dec(400))
	if totals.MaxOverdueDays != 2 {
		t.Errorf("MaxOverdueDays = %d, want 2", totals.MaxOverdueDays)
	}
}

func TestStoreIDAssignmentRestartsFromMax(t *testing.T) {
	store := core.NewStore(core.NewClock(mustDate(t, "2026-01-19")))

	first := store.AddCustomer(core.Customer{Name: "A", Contact: "x"})
	second := store.AddCustomer(core.Customer{Name: "B", Contact: "x"})
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", first.ID, second.ID)
	}

	store.Reset()
	again := store.AddCustomer(core.Customer{Name: "C", Contact: "x"})
	if again.ID != 1 {
		t.Errorf("id after reset = %d, want 1", again.ID)
	}
}
