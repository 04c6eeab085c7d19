// Package cli wires the budget subcommands: shared initialization, the
// command registry and the terminal rendering glue.
package cli

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/emmy649/budget/internal/config"
	"github.com/emmy649/budget/internal/kv"
	applog "github.com/emmy649/budget/internal/log"
	"github.com/emmy649/budget/internal/services"
	"github.com/emmy649/budget/internal/store"
)

// SetupLogger initializes structured logging and sets it as the default.
func SetupLogger() *applog.Logger {
	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(os.Getenv("LOG_LEVEL")),
		Component: "budget",
	})
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// OpenService loads the configuration, opens the configured backend and
// builds the ledger service on top of it. The returned cleanup closes the
// backend.
func OpenService(ctx context.Context) (*services.BudgetService, *config.Config, func(), error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	st, err := kv.Open(kv.BackendType(cfg.Backend), cfg.DBPath, cfg.QuotaBytes)
	if err != nil {
		return nil, nil, nil, err
	}

	gw := store.NewGateway(st)
	svc := services.NewBudgetService(
		store.NewTransactionStore(ctx, gw),
		store.NewCategoryRegistry(ctx, gw),
		store.NewWastefulSet(ctx, gw),
	)
	cleanup := func() { _ = st.Close() }
	return svc, cfg, cleanup, nil
}
