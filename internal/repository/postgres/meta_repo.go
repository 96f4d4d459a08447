package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/models"
)

type metaRepo struct{ pool *pgxpool.Pool }

func (r *metaRepo) Periods(ctx context.Context) ([]models.Period, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT year, quarter FROM aggregated_transaction ORDER BY year, quarter`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Period
	for rows.Next() {
		var p models.Period
		if err := rows.Scan(&p.Year, &p.Quarter); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *metaRepo) QuartersForYear(ctx context.Context, year int) ([]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT quarter FROM aggregated_transaction WHERE year=$1 ORDER BY quarter`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var q int
		if err := rows.Scan(&q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *metaRepo) States(ctx context.Context, year, quarter int) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT state FROM aggregated_transaction WHERE year=$1 AND quarter=$2 ORDER BY state`,
		year, quarter)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

func (r *metaRepo) ReferenceStates(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT name FROM states ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

func scanStrings(rows pgx.Rows) ([]string, error) {
	defer rows.Close()
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
