package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/metrics"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/models"
	repo "github.com/manju-ramakrishnan/phonepe-capstone-project/internal/repository"
)

// Runner walks a local pulse data checkout and loads it table by table.
// Loading is sequential; a parse or write failure aborts the run and the
// error is surfaced to the operator unchanged.
type Runner struct {
	dataDir string
	ingest  repo.Ingest
	runs    repo.LoadRuns
	logger  *slog.Logger
	clock   clockwork.Clock
}

func NewRunner(dataDir string, ingest repo.Ingest, runs repo.LoadRuns, logger *slog.Logger, clock clockwork.Clock) *Runner {
	return &Runner{
		dataDir: dataDir,
		ingest:  ingest,
		runs:    runs,
		logger:  logger,
		clock:   clock,
	}
}

// Run executes one full load and records it in load_runs.
func (r *Runner) Run(ctx context.Context) (models.LoadRun, error) {
	run := models.LoadRun{
		ID:        uuid.NewString(),
		StartedAt: r.clock.Now(),
		Status:    models.RunRunning,
	}
	if err := r.runs.Start(ctx, run); err != nil {
		return run, fmt.Errorf("record run start: %w", err)
	}
	r.logger.Info("load run started", "run_id", run.ID, "data_dir", r.dataDir)

	valid, err := r.ingest.ValidStates(ctx)
	if err == nil {
		err = r.loadAll(ctx, valid, &run)
	}

	now := r.clock.Now()
	run.FinishedAt = &now
	if err != nil {
		run.Status = models.RunFailed
		run.ErrorMessage = err.Error()
		metrics.LoadRunsTotal.WithLabelValues(models.RunFailed).Inc()
		if ferr := r.runs.Finish(ctx, run); ferr != nil {
			r.logger.Error("record run failure", "run_id", run.ID, "err", ferr)
		}
		return run, err
	}

	run.Status = models.RunCompleted
	metrics.LoadRunsTotal.WithLabelValues(models.RunCompleted).Inc()
	if err := r.runs.Finish(ctx, run); err != nil {
		return run, fmt.Errorf("record run finish: %w", err)
	}
	r.logger.Info("load run completed",
		"run_id", run.ID,
		"rows_loaded", run.RowsLoaded,
		"rows_rejected", run.RowsRejected,
		"duration", now.Sub(run.StartedAt),
	)
	return run, nil
}

func (r *Runner) loadAll(ctx context.Context, valid map[string]bool, run *models.LoadRun) error {
	steps := []struct {
		name string
		fn   func(context.Context, map[string]bool, *models.LoadRun) error
	}{
		{"aggregated_transaction", r.loadAggTransaction},
		{"aggregated_user", r.loadAggUser},
		{"aggregated_insurance", r.loadAggInsurance},
		{"map_transaction", r.loadMapTransaction},
		{"map_user", r.loadMapUser},
		{"map_insurance", r.loadMapInsurance},
		{"top_map", r.loadTopMap},
		{"top_user", r.loadTopUser},
	}
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.logger.Info("loading table", "table", s.name)
		if err := s.fn(ctx, valid, run); err != nil {
			return fmt.Errorf("load %s: %w", s.name, err)
		}
	}
	return nil
}

func (r *Runner) loadAggTransaction(ctx context.Context, valid map[string]bool, run *models.LoadRun) error {
	root := filepath.Join(r.dataDir, "aggregated", "transaction", "country", "india")
	return r.walkStates(root, func(state string, year, quarter int, data []byte) error {
		rows, err := ParseAggTransaction(data, state, year, quarter)
		if err != nil {
			return err
		}
		if r.rejected(valid, state, len(rows), run) {
			return nil
		}
		if err := r.ingest.ReplaceAggTransaction(ctx, repo.SliceKey{State: state, Year: year, Quarter: quarter}, rows); err != nil {
			return err
		}
		r.loaded("aggregated_transaction", len(rows), run)
		return nil
	})
}

func (r *Runner) loadAggUser(ctx context.Context, valid map[string]bool, run *models.LoadRun) error {
	root := filepath.Join(r.dataDir, "aggregated", "user", "country", "india")
	return r.walkStates(root, func(state string, year, quarter int, data []byte) error {
		rows, err := ParseAggUser(data, state, year, quarter)
		if err != nil {
			return err
		}
		if r.rejected(valid, state, len(rows), run) {
			return nil
		}
		if err := r.ingest.ReplaceAggUser(ctx, repo.SliceKey{State: state, Year: year, Quarter: quarter}, rows); err != nil {
			return err
		}
		r.loaded("aggregated_user", len(rows), run)
		return nil
	})
}

func (r *Runner) loadAggInsurance(ctx context.Context, valid map[string]bool, run *models.LoadRun) error {
	root := filepath.Join(r.dataDir, "aggregated", "insurance", "country", "india")
	return r.walkStates(root, func(state string, year, quarter int, data []byte) error {
		rows, err := ParseAggInsurance(data, state, year, quarter)
		if err != nil {
			return err
		}
		if r.rejected(valid, state, len(rows), run) {
			return nil
		}
		if err := r.ingest.ReplaceAggInsurance(ctx, repo.SliceKey{State: state, Year: year, Quarter: quarter}, rows); err != nil {
			return err
		}
		r.loaded("aggregated_insurance", len(rows), run)
		return nil
	})
}

func (r *Runner) loadMapTransaction(ctx context.Context, valid map[string]bool, run *models.LoadRun) error {
	root := filepath.Join(r.dataDir, "map", "transaction", "hover", "country", "india")
	return r.walkStates(root, func(state string, year, quarter int, data []byte) error {
		rows, err := ParseMapTransaction(data, state, year, quarter)
		if err != nil {
			return err
		}
		if r.rejected(valid, state, len(rows), run) {
			return nil
		}
		if err := r.ingest.ReplaceMapTransaction(ctx, repo.SliceKey{State: state, Year: year, Quarter: quarter}, rows); err != nil {
			return err
		}
		r.loaded("map_transaction", len(rows), run)
		return nil
	})
}

func (r *Runner) loadMapUser(ctx context.Context, valid map[string]bool, run *models.LoadRun) error {
	root := filepath.Join(r.dataDir, "map", "user", "hover", "country", "india")
	return r.walkStates(root, func(state string, year, quarter int, data []byte) error {
		rows, err := ParseMapUser(data, state, year, quarter)
		if err != nil {
			return err
		}
		if r.rejected(valid, state, len(rows), run) {
			return nil
		}
		if err := r.ingest.ReplaceMapUser(ctx, repo.SliceKey{State: state, Year: year, Quarter: quarter}, rows); err != nil {
			return err
		}
		r.loaded("map_user", len(rows), run)
		return nil
	})
}

func (r *Runner) loadMapInsurance(ctx context.Context, valid map[string]bool, run *models.LoadRun) error {
	root := filepath.Join(r.dataDir, "map", "insurance", "hover", "country", "india")
	return r.walkStates(root, func(state string, year, quarter int, data []byte) error {
		rows, err := ParseMapInsurance(data, state, year, quarter)
		if err != nil {
			return err
		}
		if r.rejected(valid, state, len(rows), run) {
			return nil
		}
		if err := r.ingest.ReplaceMapInsurance(ctx, repo.SliceKey{State: state, Year: year, Quarter: quarter}, rows); err != nil {
			return err
		}
		r.loaded("map_insurance", len(rows), run)
		return nil
	})
}

func (r *Runner) loadTopMap(ctx context.Context, valid map[string]bool, run *models.LoadRun) error {
	root := filepath.Join(r.dataDir, "top", "transaction", "country", "india")

	// Country-level file: state rankings.
	err := r.walkPeriods(root, func(year, quarter int, data []byte) error {
		rows, err := ParseTopMap(data, "", year, quarter)
		if err != nil {
			return err
		}
		if err := r.ingest.ReplaceTopMap(ctx, repo.SliceKey{Year: year, Quarter: quarter}, rows); err != nil {
			return err
		}
		r.loaded("top_map", len(rows), run)
		return nil
	})
	if err != nil {
		return err
	}

	return r.walkStates(root, func(state string, year, quarter int, data []byte) error {
		rows, err := ParseTopMap(data, state, year, quarter)
		if err != nil {
			return err
		}
		if r.rejected(valid, state, len(rows), run) {
			return nil
		}
		if err := r.ingest.ReplaceTopMap(ctx, repo.SliceKey{State: state, Year: year, Quarter: quarter}, rows); err != nil {
			return err
		}
		r.loaded("top_map", len(rows), run)
		return nil
	})
}

func (r *Runner) loadTopUser(ctx context.Context, valid map[string]bool, run *models.LoadRun) error {
	root := filepath.Join(r.dataDir, "top", "user", "country", "india")

	err := r.walkPeriods(root, func(year, quarter int, data []byte) error {
		rows, err := ParseTopUser(data, "", year, quarter)
		if err != nil {
			return err
		}
		if err := r.ingest.ReplaceTopUser(ctx, repo.SliceKey{Year: year, Quarter: quarter}, rows); err != nil {
			return err
		}
		r.loaded("top_user", len(rows), run)
		return nil
	})
	if err != nil {
		return err
	}

	return r.walkStates(root, func(state string, year, quarter int, data []byte) error {
		rows, err := ParseTopUser(data, state, year, quarter)
		if err != nil {
			return err
		}
		if r.rejected(valid, state, len(rows), run) {
			return nil
		}
		if err := r.ingest.ReplaceTopUser(ctx, repo.SliceKey{State: state, Year: year, Quarter: quarter}, rows); err != nil {
			return err
		}
		r.loaded("top_user", len(rows), run)
		return nil
	})
}

func (r *Runner) loaded(table string, n int, run *models.LoadRun) {
	run.RowsLoaded += int64(n)
	metrics.RowsLoaded.WithLabelValues(table).Add(float64(n))
	metrics.FilesParsed.Inc()
}

// rejected drops a file whose state key is missing from the reference set and
// reports whether it was dropped. The run keeps going: a bad geography key is
// data noise, not an operator error.
func (r *Runner) rejected(valid map[string]bool, state string, n int, run *models.LoadRun) bool {
	if valid[state] {
		return false
	}
	run.RowsRejected += int64(n)
	metrics.RowsRejected.Add(float64(n))
	r.logger.Warn("unknown state, slice rejected", "state", state, "rows", n)
	return true
}

// walkStates visits every <root>/state/<slug>/<year>/<quarter>.json file in
// lexical order. A missing tree is not an error: pulse checkouts do not carry
// every dataset for every period.
func (r *Runner) walkStates(root string, fn func(state string, year, quarter int, data []byte) error) error {
	stateDir := filepath.Join(root, "state")
	entries, err := os.ReadDir(stateDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		state := StateNameFromSlug(e.Name())
		err := r.walkPeriods(filepath.Join(stateDir, e.Name()), func(year, quarter int, data []byte) error {
			return fn(state, year, quarter, data)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// walkPeriods visits every <dir>/<year>/<quarter>.json file directly under
// dir, skipping anything that is not a numeric year directory or quarter file.
func (r *Runner) walkPeriods(dir string, fn func(year, quarter int, data []byte) error) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, ye := range entries {
		if !ye.IsDir() {
			continue
		}
		year, err := strconv.Atoi(ye.Name())
		if err != nil {
			continue
		}
		files, err := os.ReadDir(filepath.Join(dir, ye.Name()))
		if err != nil {
			return err
		}
		for _, fe := range files {
			if fe.IsDir() || !strings.HasSuffix(fe.Name(), ".json") {
				continue
			}
			quarter, err := strconv.Atoi(strings.TrimSuffix(fe.Name(), ".json"))
			if err != nil {
				continue
			}
			path := filepath.Join(dir, ye.Name(), fe.Name())
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if err := fn(year, quarter, data); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	return nil
}
