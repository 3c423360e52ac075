package repl

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ShewakS/Credit-System/internal/app"
)

// Run starts the interactive dashboard loop. It reads one command per line
// and runs it to completion before reading the next — the core never sees
// concurrent mutation from here.
func Run(ctx context.Context, svc app.ApplicationService) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Println("Credit System Console")
	fmt.Println("Type 'help' for commands, 'dashboard' for the overview.")
	fmt.Println("---------------------")

	for {
		fmt.Print("\n> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		tokens := strings.Fields(input)
		cmd := strings.ToLower(tokens[0])
		args := tokens[1:]

		if cmd == "exit" || cmd == "quit" {
			return
		}
		if err := runCommand(ctx, svc, cmd, args); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

func runCommand(ctx context.Context, svc app.ApplicationService, cmd string, args []string) error {
	switch cmd {
	case "help":
		printHelp()

	case "dashboard":
		result, err := svc.GetDashboard(ctx)
		if err != nil {
			return err
		}
		printDashboard(result)

	case "customers":
		result, err := svc.ListCustomers(ctx)
		if err != nil {
			return err
		}
		printCustomers(result)

	case "summary":
		result, err := svc.ListCustomers(ctx)
		if err != nil {
			return err
		}
		printSummary(ctx, svc, result)

	case "overdue":
		result, err := svc.GetOverdue(ctx)
		if err != nil {
			return err
		}
		printOverdue(result)

	case "aging":
		upcoming, err := svc.GetUpcomingAging(ctx)
		if err != nil {
			return err
		}
		pastDue, err := svc.GetPastDueAging(ctx)
		if err != nil {
			return err
		}
		printAging(upcoming, pastDue)

	case "risk":
		id, err := intArg(args, "risk <customer-id>")
		if err != nil {
			return err
		}
		result, err := svc.GetCustomerSummary(ctx, id)
		if err != nil {
			return err
		}
		printRisk(result)

	case "statement":
		id, err := intArg(args, "statement <customer-id>")
		if err != nil {
			return err
		}
		result, err := svc.GetStatement(ctx, id)
		if err != nil {
			return err
		}
		printStatement(result)

	case "reminders":
		result, err := svc.ListReminders(ctx)
		if err != nil {
			return err
		}
		printReminders(result)

	case "today":
		result, err := svc.CurrentDate(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Current date: %s\n", result.Date)

	case "advance":
		days := 1
		if len(args) > 0 {
			d, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("usage: advance [days]")
			}
			days = d
		}
		result, err := svc.AdvanceDate(ctx, days)
		if err != nil {
			return err
		}
		fmt.Printf("Advanced to %s\n", result.Date)

	case "seed":
		if err := svc.SeedDemoData(ctx); err != nil {
			return err
		}
		fmt.Println("Demo data loaded.")

	case "reset":
		if err := svc.ResetLedger(ctx); err != nil {
			return err
		}
		fmt.Println("Ledger cleared.")

	default:
		return fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
	return nil
}

func intArg(args []string, usage string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	return id, nil
}

func printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  dashboard            global totals and customer status")
	fmt.Println("  customers            customer table with balances")
	fmt.Println("  summary              per-customer credit/payment summary")
	fmt.Println("  overdue              past-due credit entries")
	fmt.Println("  aging                upcoming and past-due aging buckets")
	fmt.Println("  risk <id>            risk profile for one customer")
	fmt.Println("  statement <id>       running-balance history for one customer")
	fmt.Println("  reminders            reminder records")
	fmt.Println("  today                show the simulated date")
	fmt.Println("  advance [days]       advance the simulated date (default 1)")
	fmt.Println("  seed                 load the demo book")
	fmt.Println("  reset                clear all collections")
	fmt.Println("  exit | quit")
}
