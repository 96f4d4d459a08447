package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/models"
)

type transactionsRepo struct{ pool *pgxpool.Pool }

func (r *transactionsRepo) IndiaKPIs(ctx context.Context, year, quarter int) (models.TxnKPIs, error) {
	var k models.TxnKPIs
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(transaction_amount),0), COALESCE(SUM(transaction_count),0)
		   FROM aggregated_transaction
		  WHERE year=$1 AND quarter=$2`,
		year, quarter,
	).Scan(&k.Amount, &k.Count)
	if err != nil {
		return models.TxnKPIs{}, err
	}
	if k.Count > 0 {
		k.AvgValue = k.Amount / float64(k.Count)
	}
	return k, nil
}

func (r *transactionsRepo) StateKPIs(ctx context.Context, state string, year, quarter int) (models.TxnKPIs, error) {
	var k models.TxnKPIs
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(transaction_amount),0), COALESCE(SUM(transaction_count),0)
		   FROM aggregated_transaction
		  WHERE state=$1 AND year=$2 AND quarter=$3`,
		state, year, quarter,
	).Scan(&k.Amount, &k.Count)
	if err != nil {
		return models.TxnKPIs{}, err
	}
	if k.Count > 0 {
		k.AvgValue = k.Amount / float64(k.Count)
	}
	return k, nil
}

func (r *transactionsRepo) AmountByState(ctx context.Context, year, quarter int) ([]models.StateValue, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT state, SUM(transaction_amount) AS value
		   FROM aggregated_transaction
		  WHERE year=$1 AND quarter=$2
		  GROUP BY state
		  ORDER BY state`,
		year, quarter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.StateValue
	for rows.Next() {
		var v models.StateValue
		if err := rows.Scan(&v.State, &v.Value); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *transactionsRepo) ByCategory(ctx context.Context, state string, year, quarter int) ([]models.CategorySplit, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT transaction_type,
		        SUM(transaction_amount) AS amount,
		        SUM(transaction_count)  AS cnt
		   FROM aggregated_transaction
		  WHERE state=$1 AND year=$2 AND quarter=$3
		  GROUP BY transaction_type
		  ORDER BY amount DESC NULLS LAST`,
		state, year, quarter)
	if err != nil {
		return nil, err
	}
	return scanCategories(rows)
}

func (r *transactionsRepo) CategoryTotals(ctx context.Context, year, quarter int) ([]models.CategorySplit, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT transaction_type,
		        SUM(transaction_amount) AS amount,
		        SUM(transaction_count)  AS cnt
		   FROM aggregated_transaction
		  WHERE year=$1 AND quarter=$2
		  GROUP BY transaction_type
		  ORDER BY amount DESC NULLS LAST`,
		year, quarter)
	if err != nil {
		return nil, err
	}
	return scanCategories(rows)
}

func (r *transactionsRepo) StateTrend(ctx context.Context, state string) ([]models.TrendPoint, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT year, quarter, SUM(transaction_amount) AS amount
		   FROM aggregated_transaction
		  WHERE state=$1
		  GROUP BY year, quarter
		  ORDER BY year, quarter`,
		state)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TrendPoint
	for rows.Next() {
		var p models.TrendPoint
		if err := rows.Scan(&p.Year, &p.Quarter, &p.Value); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *transactionsRepo) TopStatesByAmount(ctx context.Context, year, quarter, limit int) ([]models.StateValue, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT state, SUM(transaction_amount) AS amount
		   FROM aggregated_transaction
		  WHERE year=$1 AND quarter=$2
		  GROUP BY state
		  ORDER BY amount DESC NULLS LAST
		  LIMIT $3`,
		year, quarter, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.StateValue
	for rows.Next() {
		var v models.StateValue
		if err := rows.Scan(&v.State, &v.Value); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// DistrictTotals reads the hover-map district slices, not the top rankings,
// so every district of the state is present.
func (r *transactionsRepo) DistrictTotals(ctx context.Context, state string, year, quarter int) ([]models.TopGeoRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name, SUM(count) AS txns, SUM(amount) AS amount
		   FROM map_transaction
		  WHERE state=$1 AND year=$2 AND quarter=$3
		  GROUP BY name
		  ORDER BY amount DESC NULLS LAST`,
		state, year, quarter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TopGeoRow
	for rows.Next() {
		var g models.TopGeoRow
		if err := rows.Scan(&g.Name, &g.Count, &g.Amount); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
