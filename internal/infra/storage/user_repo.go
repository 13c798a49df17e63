package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jose-valero/gamenight-bot/internal/domain"
)

type UserRepo struct{ db *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// Ensure crea la fila del usuario si no existe. Todo comando que muta datos
// pasa por acá primero.
func (r *UserRepo) Ensure(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO users (user_id) VALUES ($1)
ON CONFLICT (user_id) DO NOTHING
`, userID)
	return err
}

func (r *UserRepo) Get(ctx context.Context, userID string) (UserRecord, error) {
	var u UserRecord
	err := r.db.QueryRowContext(ctx, `
SELECT user_id, timezone, snooze_until, created_at
  FROM users
 WHERE user_id = $1
`, userID).Scan(&u.UserID, &u.Timezone, &u.SnoozeUntil, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return UserRecord{}, domain.ErrNotFound
	}
	return u, err
}

func (r *UserRepo) SetTimezone(ctx context.Context, userID, tz string) error {
	if err := r.Ensure(ctx, userID); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
UPDATE users SET timezone = $1 WHERE user_id = $2
`, tz, userID)
	return err
}

// SetSnooze guarda el instante hasta el cual el usuario queda silenciado.
func (r *UserRepo) SetSnooze(ctx context.Context, userID string, until time.Time) error {
	if err := r.Ensure(ctx, userID); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
UPDATE users SET snooze_until = $1 WHERE user_id = $2
`, until, userID)
	return err
}

// ClearSnooze limpia incondicionalmente (idempotente).
func (r *UserRepo) ClearSnooze(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE users SET snooze_until = NULL WHERE user_id = $1
`, userID)
	return err
}

// ListCandidates: usuarios con timezone seteada y al menos una ventana.
// Es el fan-out de ready-to-play; el resto se filtra en memoria.
func (r *UserRepo) ListCandidates(ctx context.Context) ([]UserRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT u.user_id, u.timezone, u.snooze_until, u.created_at
  FROM users u
 WHERE u.timezone <> ''
   AND EXISTS (SELECT 1 FROM availability a WHERE a.user_id = u.user_id)
 ORDER BY u.user_id
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []UserRecord
	for rows.Next() {
		var u UserRecord
		if err := rows.Scan(&u.UserID, &u.Timezone, &u.SnoozeUntil, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// PruneExpiredSnoozes: limpieza perezosa de snoozes vencidos. El engine los
// ignora igual; esto sólo mantiene las filas prolijas.
func (r *UserRepo) PruneExpiredSnoozes(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE users
   SET snooze_until = NULL
 WHERE snooze_until IS NOT NULL
   AND snooze_until < now()
`)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}
