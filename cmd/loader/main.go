package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/config"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/db"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/ingest"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/logger"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/metrics"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/repository/postgres"
)

// One-shot loader: walks the pulse data tree, replaces every slice it finds
// and exits. Re-running it after a data refresh is the supported update path.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool); err != nil {
		log.Error("migrations", "err", err)
		os.Exit(1)
	}

	metrics.Init()
	repos := postgres.NewRepositories(pool)
	runner := ingest.NewRunner(cfg.DataDir, repos.Ingest, repos.LoadRuns, log, clockwork.NewRealClock())

	run, err := runner.Run(ctx)
	if err != nil {
		log.Error("load failed", "run_id", run.ID, "err", err)
		os.Exit(1)
	}
	log.Info("load completed",
		"run_id", run.ID,
		"rows_loaded", run.RowsLoaded,
		"rows_rejected", run.RowsRejected,
	)
}
