package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/models"
)

type rankingsRepo struct{ pool *pgxpool.Pool }

func (r *rankingsRepo) TopGeoInState(ctx context.Context, state string, year, quarter int, entity models.EntityType, limit int) ([]models.TopGeoRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT entity_name AS name, SUM(count) AS txns, SUM(amount) AS amount
		   FROM top_map
		  WHERE state=$1 AND year=$2 AND quarter=$3 AND entity_type=$4
		  GROUP BY entity_name
		  ORDER BY amount DESC NULLS LAST
		  LIMIT $5`,
		state, year, quarter, entity, limit)
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

// TopGeoCountrywide ranks entities across all states. State rankings group by
// entity name alone because state rows carry their own name in both columns.
func (r *rankingsRepo) TopGeoCountrywide(ctx context.Context, year, quarter int, entity models.EntityType, limit int) ([]models.TopGeoRow, error) {
	if entity == models.EntityState {
		rows, err := r.pool.Query(ctx,
			`SELECT entity_name AS state, SUM(count) AS txns, SUM(amount) AS amount
			   FROM top_map
			  WHERE year=$1 AND quarter=$2 AND entity_type='State'
			  GROUP BY entity_name
			  ORDER BY amount DESC NULLS LAST
			  LIMIT $3`,
			year, quarter, limit)
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

	rows, err := r.pool.Query(ctx,
		`SELECT entity_name AS name, state, SUM(count) AS txns, SUM(amount) AS amount
		   FROM top_map
		  WHERE year=$1 AND quarter=$2 AND entity_type=$3
		  GROUP BY entity_name, state
		  ORDER BY amount DESC NULLS LAST
		  LIMIT $4`,
		year, quarter, entity, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TopGeoRow
	for rows.Next() {
		var g models.TopGeoRow
		if err := rows.Scan(&g.Name, &g.State, &g.Count, &g.Amount); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *rankingsRepo) TopPincodesByUsers(ctx context.Context, state string, year, quarter, limit int) ([]models.PincodeUsers, error) {
	if state == "" {
		rows, err := r.pool.Query(ctx,
			`SELECT entity_name AS pincode, state, SUM(registered_users) AS users
			   FROM top_user
			  WHERE year=$1 AND quarter=$2 AND entity_type='Pincode'
			  GROUP BY entity_name, state
			  ORDER BY users DESC
			  LIMIT $3`,
			year, quarter, limit)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		var out []models.PincodeUsers
		for rows.Next() {
			var p models.PincodeUsers
			if err := rows.Scan(&p.Pincode, &p.State, &p.RegisteredUsers); err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		return out, rows.Err()
	}

	rows, err := r.pool.Query(ctx,
		`SELECT entity_name AS pincode, SUM(registered_users) AS users
		   FROM top_user
		  WHERE state=$1 AND year=$2 AND quarter=$3 AND entity_type='Pincode'
		  GROUP BY entity_name
		  ORDER BY users DESC
		  LIMIT $4`,
		state, year, quarter, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.PincodeUsers
	for rows.Next() {
		var p models.PincodeUsers
		if err := rows.Scan(&p.Pincode, &p.RegisteredUsers); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *rankingsRepo) DistrictNames(ctx context.Context, state string, year, quarter int) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT entity_name AS district
		   FROM top_map
		  WHERE state=$1 AND year=$2 AND quarter=$3 AND entity_type='District'
		  ORDER BY district`,
		state, year, quarter)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

// PincodeNames lists pincodes for a state, from the transaction rankings or
// the user rankings depending on the dashboard view.
func (r *rankingsRepo) PincodeNames(ctx context.Context, state string, year, quarter int, source string) ([]string, error) {
	table := "top_map"
	if source == "users" {
		table = "top_user"
	}
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT entity_name AS pincode
		   FROM `+table+`
		  WHERE state=$1 AND year=$2 AND quarter=$3 AND entity_type='Pincode'
		  ORDER BY pincode`,
		state, year, quarter)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

func (r *rankingsRepo) StatesWithDistricts(ctx context.Context, year, quarter int) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT state
		   FROM top_map
		  WHERE year=$1 AND quarter=$2 AND entity_type='District'
		  ORDER BY state`,
		year, quarter)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

func (r *rankingsRepo) DistrictShare(ctx context.Context, state string, year, quarter int) ([]models.DistrictShare, error) {
	rows, err := r.pool.Query(ctx,
		`WITH s AS (
		   SELECT entity_name AS district, SUM(amount) AS amt
		     FROM top_map
		    WHERE entity_type='District' AND state=$1 AND year=$2 AND quarter=$3
		    GROUP BY entity_name
		 ),
		 tot AS (SELECT SUM(amt) total_amt FROM s)
		 SELECT district, amt,
		        ROUND(100 * amt / NULLIF(t.total_amt,0), 2) AS share_pct
		   FROM s CROSS JOIN tot t
		  ORDER BY amt DESC NULLS LAST`,
		state, year, quarter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.DistrictShare
	for rows.Next() {
		var d models.DistrictShare
		if err := rows.Scan(&d.District, &d.Amount, &d.SharePct); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *rankingsRepo) DistrictYoY(ctx context.Context, state string, year, quarter int) ([]models.YoYRow, error) {
	rows, err := r.pool.Query(ctx,
		`WITH cur AS (
		   SELECT entity_name AS district, SUM(amount) AS amt
		     FROM top_map
		    WHERE entity_type='District' AND state=$1 AND year=$2 AND quarter=$3
		    GROUP BY entity_name
		 ),
		 prev AS (
		   SELECT entity_name AS district, SUM(amount) AS amt
		     FROM top_map
		    WHERE entity_type='District' AND state=$1 AND year=$2 - 1 AND quarter=$3
		    GROUP BY entity_name
		 )
		 SELECT c.district, c.amt,
		        p.amt,
		        ROUND(100*(c.amt - p.amt)/NULLIF(p.amt,0), 2) AS yoy_pct
		   FROM cur c LEFT JOIN prev p USING (district)
		  ORDER BY yoy_pct DESC NULLS LAST`,
		state, year, quarter)
	if err != nil {
		return nil, err
	}
	return scanYoY(rows)
}
