package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/models"
)

type usersRepo struct{ pool *pgxpool.Pool }

func (r *usersRepo) IndiaKPIs(ctx context.Context, year, quarter int) (models.UserKPIs, error) {
	var k models.UserKPIs
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(registered_users),0), COALESCE(SUM(app_opens),0)
		   FROM map_user
		  WHERE year=$1 AND quarter=$2`,
		year, quarter,
	).Scan(&k.RegisteredUsers, &k.AppOpens)
	return k, err
}

func (r *usersRepo) StateKPIs(ctx context.Context, state string, year, quarter int) (models.UserKPIs, error) {
	var k models.UserKPIs
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(registered_users),0), COALESCE(SUM(app_opens),0)
		   FROM map_user
		  WHERE state=$1 AND year=$2 AND quarter=$3`,
		state, year, quarter,
	).Scan(&k.RegisteredUsers, &k.AppOpens)
	return k, err
}

func (r *usersRepo) UsersByState(ctx context.Context, year, quarter int) ([]models.StateValue, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT state, SUM(registered_users) AS value
		   FROM map_user
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

func (r *usersRepo) DistrictUsers(ctx context.Context, state string, year, quarter, limit int) ([]models.DistrictUsers, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name AS district, SUM(registered_users) AS users, SUM(app_opens) AS app_opens
		   FROM map_user
		  WHERE state=$1 AND year=$2 AND quarter=$3
		  GROUP BY name
		  ORDER BY users DESC NULLS LAST
		  LIMIT $4`,
		state, year, quarter, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.DistrictUsers
	for rows.Next() {
		var d models.DistrictUsers
		if err := rows.Scan(&d.District, &d.RegisteredUsers, &d.AppOpens); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *usersRepo) Districts(ctx context.Context, state string, year, quarter int) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT name AS district
		   FROM map_user
		  WHERE state=$1 AND year=$2 AND quarter=$3
		  ORDER BY district`,
		state, year, quarter)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

func (r *usersRepo) Brands(ctx context.Context, year, quarter int) ([]models.BrandUsage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT brand, SUM(count) AS users, ROUND(AVG(percentage)*100, 2) AS avg_share_pct
		   FROM aggregated_user
		  WHERE year=$1 AND quarter=$2
		  GROUP BY brand
		  ORDER BY users DESC`,
		year, quarter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.BrandUsage
	for rows.Next() {
		var b models.BrandUsage
		if err := rows.Scan(&b.Brand, &b.Users, &b.AvgSharePct); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *usersRepo) BrandNames(ctx context.Context, year, quarter int) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT brand
		   FROM aggregated_user
		  WHERE year=$1 AND quarter=$2
		  ORDER BY brand`,
		year, quarter)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

func (r *usersRepo) TopBrandPerState(ctx context.Context, year, quarter int) ([]models.StateBrand, error) {
	rows, err := r.pool.Query(ctx,
		`WITH b AS (
		   SELECT state, brand, SUM(count) AS users
		     FROM aggregated_user
		    WHERE year=$1 AND quarter=$2
		    GROUP BY state, brand
		 ),
		 r AS (
		   SELECT state, brand, users,
		          ROW_NUMBER() OVER (PARTITION BY state ORDER BY users DESC) rn
		     FROM b
		 )
		 SELECT state, brand, users
		   FROM r WHERE rn = 1
		  ORDER BY users DESC NULLS LAST`,
		year, quarter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.StateBrand
	for rows.Next() {
		var s models.StateBrand
		if err := rows.Scan(&s.State, &s.Brand, &s.Users); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *usersRepo) BrandTrend(ctx context.Context, brand string) ([]models.TrendPoint, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT year, quarter, SUM(count) AS users
		   FROM aggregated_user
		  WHERE brand=$1
		  GROUP BY year, quarter
		  ORDER BY year, quarter`,
		brand)
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

func (r *usersRepo) BrandShareByState(ctx context.Context, brand string, year, quarter int) ([]models.BrandShare, error) {
	rows, err := r.pool.Query(ctx,
		`WITH share AS (
		   SELECT au.state,
		          100.0 * SUM(CASE WHEN au.brand=$1 THEN au.count ELSE 0 END)
		          / NULLIF(SUM(au.count),0) AS brand_share_pct
		     FROM aggregated_user au
		    WHERE au.year=$2 AND au.quarter=$3
		    GROUP BY au.state
		 ),
		 eng AS (
		   SELECT mu.state,
		          ROUND(SUM(mu.app_opens)::numeric / NULLIF(SUM(mu.registered_users),0), 2) AS opens_per_user
		     FROM map_user mu
		    WHERE mu.year=$2 AND mu.quarter=$3
		    GROUP BY mu.state
		 )
		 SELECT s.state, ROUND(s.brand_share_pct,2), e.opens_per_user
		   FROM share s LEFT JOIN eng e USING (state)
		  WHERE s.brand_share_pct IS NOT NULL
		  ORDER BY s.brand_share_pct DESC NULLS LAST`,
		brand, year, quarter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.BrandShare
	for rows.Next() {
		var b models.BrandShare
		if err := rows.Scan(&b.State, &b.SharePct, &b.OpensPerUser); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *usersRepo) Engagement(ctx context.Context, year, quarter int) ([]models.Engagement, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT state,
		        SUM(registered_users) AS reg_users,
		        SUM(app_opens)        AS app_opens,
		        ROUND(SUM(app_opens)::numeric / NULLIF(SUM(registered_users),0), 2) AS opens_per_user
		   FROM map_user
		  WHERE year=$1 AND quarter=$2
		  GROUP BY state
		  ORDER BY opens_per_user DESC NULLS LAST`,
		year, quarter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Engagement
	for rows.Next() {
		var e models.Engagement
		if err := rows.Scan(&e.State, &e.RegisteredUsers, &e.AppOpens, &e.OpensPerUser); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// LatestCommonPeriod finds the newest (year, quarter) present in both
// aggregated_user and map_user, so device and engagement analyses line up.
func (r *usersRepo) LatestCommonPeriod(ctx context.Context) (models.Period, error) {
	var p models.Period
	err := r.pool.QueryRow(ctx,
		`WITH a AS (SELECT year, quarter FROM aggregated_user GROUP BY 1,2),
		      m AS (SELECT year, quarter FROM map_user        GROUP BY 1,2)
		 SELECT year, quarter
		   FROM a INNER JOIN m USING (year, quarter)
		  ORDER BY year DESC, quarter DESC
		  LIMIT 1`,
	).Scan(&p.Year, &p.Quarter)
	return p, err
}
