package storage

import (
	"context"
	"database/sql"
)

type AvailabilityRepo struct{ db *sql.DB }

func NewAvailabilityRepo(db *sql.DB) *AvailabilityRepo { return &AvailabilityRepo{db: db} }

func (r *AvailabilityRepo) ListByUser(ctx context.Context, userID string) ([]WindowRow, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT user_id, day, start_m, end_m
  FROM availability
 WHERE user_id = $1
 ORDER BY day, start_m
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWindows(rows)
}

func (r *AvailabilityRepo) ListByUserDay(ctx context.Context, userID string, day int) ([]WindowRow, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT user_id, day, start_m, end_m
  FROM availability
 WHERE user_id = $1 AND day = $2
 ORDER BY start_m
`, userID, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWindows(rows)
}

// ReplaceDay reescribe todas las ventanas de un día en una transacción: el
// service ya resolvió los merges, acá sólo persistimos el resultado.
func (r *AvailabilityRepo) ReplaceDay(ctx context.Context, userID string, day int, windows []WindowRow) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
DELETE FROM availability WHERE user_id = $1 AND day = $2
`, userID, day); err != nil {
		return err
	}
	for _, w := range windows {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO availability (user_id, day, start_m, end_m)
VALUES ($1,$2,$3,$4)
ON CONFLICT (user_id, day, start_m, end_m) DO NOTHING
`, userID, day, w.StartM, w.EndM); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *AvailabilityRepo) ClearDay(ctx context.Context, userID string, day int) error {
	_, err := r.db.ExecContext(ctx, `
DELETE FROM availability WHERE user_id = $1 AND day = $2
`, userID, day)
	return err
}

func scanWindows(rows *sql.Rows) ([]WindowRow, error) {
	var out []WindowRow
	for rows.Next() {
		var w WindowRow
		if err := rows.Scan(&w.UserID, &w.Day, &w.StartM, &w.EndM); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
