package service

import (
	"context"
	"time"

	"github.com/jose-valero/gamenight-bot/internal/infra/storage"
)

// Lo implementa internal/infra/storage.UserRepo
type UserRepo interface {
	Ensure(ctx context.Context, userID string) error
	Get(ctx context.Context, userID string) (storage.UserRecord, error)
	SetTimezone(ctx context.Context, userID, tz string) error
	SetSnooze(ctx context.Context, userID string, until time.Time) error
	ClearSnooze(ctx context.Context, userID string) error
	ListCandidates(ctx context.Context) ([]storage.UserRecord, error)
	Count(ctx context.Context) (int, error)
}

// Lo implementa internal/infra/storage.AvailabilityRepo
type AvailabilityRepo interface {
	ListByUser(ctx context.Context, userID string) ([]storage.WindowRow, error)
	ListByUserDay(ctx context.Context, userID string, day int) ([]storage.WindowRow, error)
	ReplaceDay(ctx context.Context, userID string, day int, windows []storage.WindowRow) error
	ClearDay(ctx context.Context, userID string, day int) error
}

// Lo implementa internal/infra/storage.GamesRepo
type GamesRepo interface {
	Upsert(ctx context.Context, g storage.GameRow) error
	Delete(ctx context.Context, userID, normalized string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]string, error)
	Common(ctx context.Context, userA, userB string) ([]string, error)
	CommonBulk(ctx context.Context, requester string, candidates []string) (map[string][]string, error)
	OwnersOf(ctx context.Context, normalized string) ([]string, error)
	AllNames(ctx context.Context) ([]string, error)
}
