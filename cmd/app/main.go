package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/ShewakS/Credit-System/internal/adapters/repl"
	"github.com/ShewakS/Credit-System/internal/app"
	"github.com/ShewakS/Credit-System/internal/core"
	"github.com/ShewakS/Credit-System/internal/logger"
)

func main() {
	_ = godotenv.Load()
	logger.Setup()
	log := logger.WithComponent("app")

	start := time.Now()
	if v := os.Getenv("LEDGER_START_DATE"); v != "" {
		parsed, err := core.ParseDate(v)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid LEDGER_START_DATE")
		}
		start = parsed
	}

	store := core.NewStore(core.NewClock(start))
	ledger := core.NewLedger(store)
	reporting := core.NewReportingService(store)
	svc := app.NewAppService(store, ledger, reporting)

	// The console starts with the demo book loaded, like the dashboard UI
	// it replaces. State is volatile; a restart rebuilds it.
	core.Seed(store)

	ctx := context.Background()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "dashboard":
			result, err := svc.GetDashboard(ctx)
			if err != nil {
				log.Fatal().Err(err).Msg("dashboard failed")
			}
			printJSON(result)

		case "overdue":
			result, err := svc.GetOverdue(ctx)
			if err != nil {
				log.Fatal().Err(err).Msg("overdue failed")
			}
			printJSON(result)

		case "risk":
			if len(os.Args) < 3 {
				log.Fatal().Msg("usage: app risk <customer-id>")
			}
			id, err := strconv.Atoi(os.Args[2])
			if err != nil {
				log.Fatal().Msg("usage: app risk <customer-id>")
			}
			result, err := svc.GetCustomerSummary(ctx, id)
			if err != nil {
				log.Fatal().Err(err).Msg("risk failed")
			}
			printJSON(result)

		case "advance":
			days := 1
			if len(os.Args) > 2 {
				d, err := strconv.Atoi(os.Args[2])
				if err != nil {
					log.Fatal().Msg("usage: app advance [days]")
				}
				days = d
			}
			result, err := svc.AdvanceDate(ctx, days)
			if err != nil {
				log.Fatal().Err(err).Msg("advance failed")
			}
			fmt.Printf("Advanced to %s\n", result.Date)

		default:
			log.Fatal().Str("command", os.Args[1]).Msg("unknown command")
		}
		return
	}

	repl.Run(ctx, svc)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
