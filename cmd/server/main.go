package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	webAdapter "github.com/ShewakS/Credit-System/internal/adapters/web"
	"github.com/ShewakS/Credit-System/internal/app"
	"github.com/ShewakS/Credit-System/internal/core"
	"github.com/ShewakS/Credit-System/internal/logger"
)

func main() {
	_ = godotenv.Load()
	logger.Setup()
	log := logger.WithComponent("server")

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

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		core.Seed(store)
		log.Info().Msg("demo data loaded")
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins)

	log.Info().Str("port", port).Str("date", store.DateString()).Msg("listening")
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
