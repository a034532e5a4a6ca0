// tenderctl administrative tasks that do not belong behind the HTTP API:
// schema migrations, bulk tender import and bootstrapping the first admin.
//
// Usage:
//
//	tenderctl migrate up
//	tenderctl migrate down --steps 1
//	tenderctl import-tenders tenders.csv --encoding latin1
//	tenderctl create-admin --email admin@example.com --name "Platform Admin" --password ...
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/YudheerRM/bidding-insights/pkg/config"
	"github.com/YudheerRM/bidding-insights/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tenderctl",
		Short:         "Bidding Insights administration",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newMigrateCmd(), newImportTendersCmd(), newCreateAdminCmd())
	return root
}

// loadConfig config plus a console logger on stderr.
func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.NewWithWriter(logger.Config{Env: "development", Level: cfg.App.LogLevel}, os.Stderr)
	return cfg, log, nil
}
