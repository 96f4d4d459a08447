package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/models"
	repo "github.com/manju-ramakrishnan/phonepe-capstone-project/internal/repository"
)

type ingestRepo struct{ pool *pgxpool.Pool }

func (r *ingestRepo) ValidStates(ctx context.Context) (map[string]bool, error) {
	rows, err := r.pool.Query(ctx, `SELECT name FROM states`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out[s] = true
	}
	return out, rows.Err()
}

// replaceSlice deletes the target slice and bulk-inserts the replacement rows
// inside one transaction, so a re-run never leaves duplicates behind.
func (r *ingestRepo) replaceSlice(ctx context.Context, del string, delArgs []any, table string, cols []string, vals [][]any) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, del, delArgs...); err != nil {
		return fmt.Errorf("delete %s slice: %w", table, err)
	}
	if len(vals) > 0 {
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{table}, cols, pgx.CopyFromRows(vals)); err != nil {
			return fmt.Errorf("copy into %s: %w", table, err)
		}
	}
	return tx.Commit(ctx)
}

func sliceDelete(table string) string {
	return `DELETE FROM ` + table + ` WHERE state=$1 AND year=$2 AND quarter=$3`
}

func (r *ingestRepo) ReplaceAggTransaction(ctx context.Context, key repo.SliceKey, rows []models.AggTransaction) error {
	vals := make([][]any, 0, len(rows))
	for _, v := range rows {
		vals = append(vals, []any{v.State, v.Year, v.Quarter, v.Type, v.Count, v.Amount})
	}
	return r.replaceSlice(ctx,
		sliceDelete("aggregated_transaction"), []any{key.State, key.Year, key.Quarter},
		"aggregated_transaction",
		[]string{"state", "year", "quarter", "transaction_type", "transaction_count", "transaction_amount"},
		vals)
}

func (r *ingestRepo) ReplaceAggUser(ctx context.Context, key repo.SliceKey, rows []models.AggUser) error {
	vals := make([][]any, 0, len(rows))
	for _, v := range rows {
		vals = append(vals, []any{v.State, v.Year, v.Quarter, v.Brand, v.Count, v.Percentage})
	}
	return r.replaceSlice(ctx,
		sliceDelete("aggregated_user"), []any{key.State, key.Year, key.Quarter},
		"aggregated_user",
		[]string{"state", "year", "quarter", "brand", "count", "percentage"},
		vals)
}

func (r *ingestRepo) ReplaceAggInsurance(ctx context.Context, key repo.SliceKey, rows []models.AggInsurance) error {
	vals := make([][]any, 0, len(rows))
	for _, v := range rows {
		vals = append(vals, []any{v.State, v.Year, v.Quarter, v.Type, v.Count, v.Amount})
	}
	return r.replaceSlice(ctx,
		sliceDelete("aggregated_insurance"), []any{key.State, key.Year, key.Quarter},
		"aggregated_insurance",
		[]string{"state", "year", "quarter", "insurance_type", "insurance_count", "insurance_amount"},
		vals)
}

func (r *ingestRepo) ReplaceMapTransaction(ctx context.Context, key repo.SliceKey, rows []models.MapTransaction) error {
	vals := make([][]any, 0, len(rows))
	for _, v := range rows {
		vals = append(vals, []any{v.State, v.Year, v.Quarter, v.Name, v.Count, v.Amount})
	}
	return r.replaceSlice(ctx,
		sliceDelete("map_transaction"), []any{key.State, key.Year, key.Quarter},
		"map_transaction",
		[]string{"state", "year", "quarter", "name", "count", "amount"},
		vals)
}

func (r *ingestRepo) ReplaceMapUser(ctx context.Context, key repo.SliceKey, rows []models.MapUser) error {
	vals := make([][]any, 0, len(rows))
	for _, v := range rows {
		vals = append(vals, []any{v.State, v.Year, v.Quarter, v.Name, v.RegisteredUsers, v.AppOpens})
	}
	return r.replaceSlice(ctx,
		sliceDelete("map_user"), []any{key.State, key.Year, key.Quarter},
		"map_user",
		[]string{"state", "year", "quarter", "name", "registered_users", "app_opens"},
		vals)
}

func (r *ingestRepo) ReplaceMapInsurance(ctx context.Context, key repo.SliceKey, rows []models.MapInsurance) error {
	vals := make([][]any, 0, len(rows))
	for _, v := range rows {
		vals = append(vals, []any{v.State, v.Year, v.Quarter, v.Name, v.Count, v.Amount})
	}
	return r.replaceSlice(ctx,
		sliceDelete("map_insurance"), []any{key.State, key.Year, key.Quarter},
		"map_insurance",
		[]string{"state", "year", "quarter", "name", "insurance_count", "insurance_amount"},
		vals)
}

// Country-level top files produce the State rankings, so their slice is keyed
// by entity_type alone; state-level files own the District and Pincode rows.
func (r *ingestRepo) ReplaceTopMap(ctx context.Context, key repo.SliceKey, rows []models.TopMap) error {
	vals := make([][]any, 0, len(rows))
	for _, v := range rows {
		vals = append(vals, []any{v.State, v.Year, v.Quarter, string(v.EntityType), v.EntityName, v.Count, v.Amount})
	}
	del := `DELETE FROM top_map WHERE state=$1 AND year=$2 AND quarter=$3 AND entity_type IN ('District','Pincode')`
	delArgs := []any{key.State, key.Year, key.Quarter}
	if key.State == "" {
		del = `DELETE FROM top_map WHERE year=$1 AND quarter=$2 AND entity_type='State'`
		delArgs = []any{key.Year, key.Quarter}
	}
	return r.replaceSlice(ctx, del, delArgs,
		"top_map",
		[]string{"state", "year", "quarter", "entity_type", "entity_name", "count", "amount"},
		vals)
}

func (r *ingestRepo) ReplaceTopUser(ctx context.Context, key repo.SliceKey, rows []models.TopUser) error {
	vals := make([][]any, 0, len(rows))
	for _, v := range rows {
		vals = append(vals, []any{v.State, v.Year, v.Quarter, string(v.EntityType), v.EntityName, v.RegisteredUsers})
	}
	del := `DELETE FROM top_user WHERE state=$1 AND year=$2 AND quarter=$3 AND entity_type IN ('District','Pincode')`
	delArgs := []any{key.State, key.Year, key.Quarter}
	if key.State == "" {
		del = `DELETE FROM top_user WHERE year=$1 AND quarter=$2 AND entity_type='State'`
		delArgs = []any{key.Year, key.Quarter}
	}
	return r.replaceSlice(ctx, del, delArgs,
		"top_user",
		[]string{"state", "year", "quarter", "entity_type", "entity_name", "registered_users"},
		vals)
}
