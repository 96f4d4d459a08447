package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/models"
)

type insuranceRepo struct{ pool *pgxpool.Pool }

func (r *insuranceRepo) AmountByState(ctx context.Context, year, quarter int) ([]models.StateValue, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT state, SUM(insurance_amount) AS value
		   FROM aggregated_insurance
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

func (r *insuranceRepo) TypeSplit(ctx context.Context, year, quarter int) ([]models.CategorySplit, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT insurance_type,
		        SUM(insurance_amount) AS amount,
		        SUM(insurance_count)  AS cnt
		   FROM aggregated_insurance
		  WHERE year=$1 AND quarter=$2
		  GROUP BY insurance_type
		  ORDER BY amount DESC`,
		year, quarter)
	if err != nil {
		return nil, err
	}
	return scanCategories(rows)
}

func (r *insuranceRepo) TopDistricts(ctx context.Context, state string, year, quarter, limit int) ([]models.TopGeoRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name AS district, SUM(insurance_count) AS cnt, SUM(insurance_amount) AS amount
		   FROM map_insurance
		  WHERE state=$1 AND year=$2 AND quarter=$3
		  GROUP BY name
		  ORDER BY amount DESC NULLS LAST
		  LIMIT $4`,
		state, year, quarter, limit)
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

func (r *insuranceRepo) States(ctx context.Context, year, quarter int) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT state FROM map_insurance
		  WHERE year=$1 AND quarter=$2
		  ORDER BY state`,
		year, quarter)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

func (r *insuranceRepo) YoYByState(ctx context.Context, year, quarter int) ([]models.YoYRow, error) {
	rows, err := r.pool.Query(ctx,
		`WITH cur AS (
		   SELECT state, SUM(insurance_amount) AS amt
		     FROM aggregated_insurance WHERE year=$1 AND quarter=$2
		    GROUP BY state
		 ),
		 prev AS (
		   SELECT state, SUM(insurance_amount) AS amt
		     FROM aggregated_insurance WHERE year=$1 - 1 AND quarter=$2
		    GROUP BY state
		 )
		 SELECT c.state, c.amt,
		        p.amt,
		        ROUND(100*(c.amt - p.amt)/NULLIF(p.amt,0), 2) AS yoy_pct
		   FROM cur c LEFT JOIN prev p USING (state)
		  ORDER BY yoy_pct DESC NULLS LAST`,
		year, quarter)
	if err != nil {
		return nil, err
	}
	return scanYoY(rows)
}

func (r *insuranceRepo) VsTransactions(ctx context.Context, year, quarter int) ([]models.InsuranceRatio, error) {
	rows, err := r.pool.Query(ctx,
		`WITH ins AS (
		   SELECT state, SUM(insurance_amount) AS ins_amt
		     FROM aggregated_insurance WHERE year=$1 AND quarter=$2 GROUP BY state
		 ),
		 txn AS (
		   SELECT state, SUM(transaction_amount) AS txn_amt
		     FROM aggregated_transaction WHERE year=$1 AND quarter=$2 GROUP BY state
		 )
		 SELECT COALESCE(t.state, i.state) AS state,
		        COALESCE(i.ins_amt, 0),
		        COALESCE(t.txn_amt, 0),
		        ROUND(100 * i.ins_amt / NULLIF(t.txn_amt,0), 2) AS ins_vs_txn_pct
		   FROM txn t FULL JOIN ins i ON i.state=t.state
		  ORDER BY ins_vs_txn_pct DESC NULLS LAST`,
		year, quarter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.InsuranceRatio
	for rows.Next() {
		var x models.InsuranceRatio
		if err := rows.Scan(&x.State, &x.InsuranceAmount, &x.TransactionAmount, &x.Pct); err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, rows.Err()
}
