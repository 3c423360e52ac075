package repl

import (
	"context"
	"fmt"
	"strings"

	"github.com/ShewakS/Credit-System/internal/app"
)

func printDashboard(result *app.DashboardResult) {
	t := result.Totals
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("  DASHBOARD — %s\n", result.Date)
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("  Customers          : %d  (%d new this week)\n", t.CustomerCount, t.NewCustomersThisWeek)
	fmt.Printf("  Credit given       : %s\n", t.TotalCredit.StringFixed(2))
	fmt.Printf("  Payments received  : %s\n", t.TotalPayments.StringFixed(2))
	fmt.Printf("  Outstanding        : %s\n", t.Outstanding.StringFixed(2))
	fmt.Printf("  Overdue            : %s across %d customer(s)\n", t.OverdueTotal.StringFixed(2), t.OverdueCustomerCount)
	fmt.Println(strings.Repeat("-", 72))
	fmt.Printf("  %-25s %-15s %12s  %s\n", "NAME", "CONTACT", "BALANCE", "STATUS")
	fmt.Println(strings.Repeat("-", 72))
	for _, row := range result.Rows {
		fmt.Printf("  %-25s %-15s %12s  %s\n",
			row.Customer.Name, row.Customer.Contact, row.Balance.StringFixed(2), row.Status)
	}
	fmt.Println(strings.Repeat("=", 72))
}

func printCustomers(result *app.CustomerListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 78))
	fmt.Println("  CUSTOMERS")
	fmt.Println(strings.Repeat("=", 78))
	if len(result.Rows) == 0 {
		fmt.Println("  No customers found.")
		fmt.Println(strings.Repeat("=", 78))
		return
	}
	fmt.Printf("  %-4s %-25s %-15s %12s %12s  %s\n", "ID", "NAME", "CONTACT", "LIMIT", "BALANCE", "STATUS")
	fmt.Println(strings.Repeat("-", 78))
	for _, row := range result.Rows {
		c := row.Customer
		fmt.Printf("  %-4d %-25s %-15s %12s %12s  %s\n",
			c.ID, c.Name, c.Contact, c.CreditLimit.StringFixed(2), row.Balance.StringFixed(2), row.Status)
	}
	fmt.Println(strings.Repeat("=", 78))
}

func printSummary(ctx context.Context, svc app.ApplicationService, result *app.CustomerListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 78))
	fmt.Println("  CUSTOMER SUMMARY")
	fmt.Println(strings.Repeat("=", 78))
	fmt.Printf("  %-25s %12s %12s %12s %12s\n", "NAME", "CREDIT", "PAYMENTS", "BALANCE", "OVERDUE")
	fmt.Println(strings.Repeat("-", 78))
	for _, row := range result.Rows {
		summary, err := svc.GetCustomerSummary(ctx, row.Customer.ID)
		if err != nil {
			continue
		}
		t := summary.Totals
		fmt.Printf("  %-25s %12s %12s %12s %12s\n",
			row.Customer.Name,
			t.TotalCredit.StringFixed(2),
			t.TotalPayments.StringFixed(2),
			t.Balance.StringFixed(2),
			t.OverdueAmount.StringFixed(2))
	}
	fmt.Println(strings.Repeat("=", 78))
}

func printOverdue(result *app.OverdueResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 78))
	fmt.Printf("  OVERDUE CREDITS — as of %s\n", result.Date)
	fmt.Println(strings.Repeat("=", 78))
	if len(result.Rows) == 0 {
		fmt.Println("  Nothing overdue.")
		fmt.Println(strings.Repeat("=", 78))
		return
	}
	fmt.Printf("  %-25s %-12s %6s %12s  %s\n", "CUSTOMER", "DUE", "DAYS", "OUTSTANDING", "REMINDER")
	fmt.Println(strings.Repeat("-", 78))
	for _, row := range result.Rows {
		reminder := "Not Sent"
		if row.ReminderSent {
			reminder = "Sent"
		}
		fmt.Printf("  %-25s %-12s %6d %12s  %s\n",
			row.CustomerName, row.DueDate, row.DaysOverdue, row.Outstanding.StringFixed(2), reminder)
	}
	fmt.Println(strings.Repeat("=", 78))
}

func printAging(upcoming, pastDue *app.AgingResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("  AGING")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("  %-28s %-9s %-9s %s\n", "", "1-7d", "8-30d", "30+d")
	fmt.Println(strings.Repeat("-", 60))
	u := upcoming.Buckets
	p := pastDue.Buckets
	fmt.Printf("  %-28s %-9s %-9s %s\n", "Upcoming (days until due)",
		u.Within7.StringFixed(2), u.Within30.StringFixed(2), u.Over30.StringFixed(2))
	fmt.Printf("  %-28s %-9s %-9s %s\n", "Past due (days since due)",
		p.Within7.StringFixed(2), p.Within30.StringFixed(2), p.Over30.StringFixed(2))
	fmt.Println(strings.Repeat("=", 60))
}

func printRisk(result *app.CustomerSummaryResult) {
	r := result.Risk
	fmt.Println()
	fmt.Printf("CUSTOMER:      %s\n", result.Customer.Name)
	fmt.Printf("RISK SCORE:    %d (%s)\n", r.Score, r.Tier)
	fmt.Printf("OVERDUE DAYS:  %d\n", r.MaxOverdueDays)
	fmt.Printf("UTILIZATION:   %.2f\n", r.Utilization)
	fmt.Printf("BALANCE:       %s\n", result.Totals.Balance.StringFixed(2))
}

func printStatement(result *app.StatementResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 78))
	fmt.Printf("  STATEMENT — %s\n", result.CustomerName)
	fmt.Println(strings.Repeat("=", 78))
	if len(result.Lines) == 0 {
		fmt.Println("  No history.")
		fmt.Println(strings.Repeat("=", 78))
		return
	}
	fmt.Printf("  %-18s %-10s %-18s %12s %12s\n", "TIMESTAMP", "TYPE", "MARKER", "AMOUNT", "BALANCE")
	fmt.Println(strings.Repeat("-", 78))
	for _, line := range result.Lines {
		fmt.Printf("  %-18s %-10s %-18s %12s %12s\n",
			line.Timestamp, line.Type, line.Marker,
			line.Amount.StringFixed(2), line.RunningBalance.StringFixed(2))
	}
	fmt.Println(strings.Repeat("=", 78))
}

func printReminders(result *app.ReminderListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("  REMINDERS")
	fmt.Println(strings.Repeat("=", 72))
	if len(result.Reminders) == 0 {
		fmt.Println("  No reminder records.")
		fmt.Println(strings.Repeat("=", 72))
		return
	}
	fmt.Printf("  %-10s %-12s %6s %-12s %s\n", "CUSTOMER", "LAST SENT", "COUNT", "NEXT", "STATUS")
	fmt.Println(strings.Repeat("-", 72))
	for _, rec := range result.Reminders {
		fmt.Printf("  %-10d %-12s %6d %-12s %s\n",
			rec.CustomerID, rec.LastSent, rec.Count, rec.NextScheduled, rec.Status)
	}
	fmt.Println(strings.Repeat("=", 72))
}
