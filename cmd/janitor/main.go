package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Limpieza programada para deployments donde el proceso del bot no corre el
// upkeep: borra snoozes vencidos. La evaluación perezosa del engine sigue
// siendo la fuente de verdad; esto es prolijidad de filas nomás.
func handler(ctx context.Context) (string, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return "no DATABASE_URL", nil
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return fmt.Sprintf("parse: %v", err), nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return fmt.Sprintf("pool: %v", err), nil
	}
	defer pool.Close()

	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, _ = pool.Exec(cctx, `
UPDATE users
   SET snooze_until = NULL
 WHERE snooze_until IS NOT NULL
   AND snooze_until < now();`)

	return "ok", nil
}

func main() { lambda.Start(handler) }
