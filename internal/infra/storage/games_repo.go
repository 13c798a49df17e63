package storage

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

type GamesRepo struct{ db *sql.DB }

func NewGamesRepo(db *sql.DB) *GamesRepo { return &GamesRepo{db: db} }

// Upsert: si ya existe el juego normalizado, refresca el display name.
func (r *GamesRepo) Upsert(ctx context.Context, g GameRow) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO games (user_id, game_name, normalized)
VALUES ($1,$2,$3)
ON CONFLICT (user_id, normalized) DO UPDATE SET
  game_name = EXCLUDED.game_name
`, g.UserID, g.GameName, g.Normalized)
	return err
}

// Delete devuelve false si el juego no estaba (no es error).
func (r *GamesRepo) Delete(ctx context.Context, userID, normalized string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM games WHERE user_id = $1 AND normalized = $2
`, userID, normalized)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *GamesRepo) ListByUser(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT game_name FROM games WHERE user_id = $1 ORDER BY normalized
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNames(rows)
}

// Common: juegos en común entre dos usuarios, display del lado A.
func (r *GamesRepo) Common(ctx context.Context, userA, userB string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT a.game_name
  FROM games a
  JOIN games b ON a.normalized = b.normalized
 WHERE a.user_id = $1 AND b.user_id = $2
 ORDER BY a.normalized
`, userA, userB)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNames(rows)
}

// CommonBulk: juegos en común entre el requester y cada candidato, en una
// sola query. Devuelve candidato → juegos (display del requester).
func (r *GamesRepo) CommonBulk(ctx context.Context, requester string, candidates []string) (map[string][]string, error) {
	out := map[string][]string{}
	if len(candidates) == 0 {
		return out, nil
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT b.user_id, a.game_name
  FROM games a
  JOIN games b ON a.normalized = b.normalized
 WHERE a.user_id = $1 AND b.user_id = ANY($2)
 ORDER BY b.user_id, a.normalized
`, requester, pq.Array(candidates))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var uid, name string
		if err := rows.Scan(&uid, &name); err != nil {
			return nil, err
		}
		out[uid] = append(out[uid], name)
	}
	return out, rows.Err()
}

// OwnersOf: quiénes tienen el juego (lookup inverso por título normalizado).
func (r *GamesRepo) OwnersOf(ctx context.Context, normalized string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT user_id FROM games WHERE normalized = $1 ORDER BY user_id
`, normalized)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNames(rows)
}

// AllNames: títulos distintos conocidos en toda la comunidad (autocomplete).
func (r *GamesRepo) AllNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT DISTINCT ON (normalized) game_name
  FROM games
 ORDER BY normalized, game_name
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNames(rows)
}

func scanNames(rows *sql.Rows) ([]string, error) {
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
