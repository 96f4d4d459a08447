package postgres

import (
	"github.com/jackc/pgx/v5"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/models"
)

func scanCategories(rows pgx.Rows) ([]models.CategorySplit, error) {
	defer rows.Close()
	var out []models.CategorySplit
	for rows.Next() {
		var c models.CategorySplit
		if err := rows.Scan(&c.Category, &c.Amount, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanYoY(rows pgx.Rows) ([]models.YoYRow, error) {
	defer rows.Close()
	var out []models.YoYRow
	for rows.Next() {
		var y models.YoYRow
		if err := rows.Scan(&y.Name, &y.CurAmount, &y.PrevAmount, &y.Pct); err != nil {
			return nil, err
		}
		out = append(out, y)
	}
	return out, rows.Err()
}
