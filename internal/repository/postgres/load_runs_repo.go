package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/models"
)

type loadRunsRepo struct{ pool *pgxpool.Pool }

func (r *loadRunsRepo) Start(ctx context.Context, run models.LoadRun) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO load_runs (id, started_at, status) VALUES ($1, $2, $3)`,
		run.ID, run.StartedAt, run.Status)
	return err
}

func (r *loadRunsRepo) Finish(ctx context.Context, run models.LoadRun) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE load_runs
		    SET finished_at=$2, status=$3, rows_loaded=$4, rows_rejected=$5, error_message=NULLIF($6,'')
		  WHERE id=$1`,
		run.ID, run.FinishedAt, run.Status, run.RowsLoaded, run.RowsRejected, run.ErrorMessage)
	return err
}
