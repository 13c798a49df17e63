package service

import (
	"context"
	"fmt"

	"github.com/jose-valero/gamenight-bot/internal/domain"
	"github.com/jose-valero/gamenight-bot/internal/infra/storage"
)

type GamesService struct {
	users UserRepo
	games GamesRepo
}

func NewGamesService(users UserRepo, games GamesRepo) *GamesService {
	return &GamesService{users: users, games: games}
}

func (s *GamesService) Add(ctx context.Context, userID, name string) error {
	normalized := domain.NormalizeGameName(name)
	if normalized == "" {
		return fmt.Errorf("nombre de juego vacío")
	}
	if err := s.users.Ensure(ctx, userID); err != nil {
		return err
	}
	return s.games.Upsert(ctx, storage.GameRow{
		UserID:     userID,
		GameName:   name,
		Normalized: normalized,
	})
}

// Remove devuelve false si el juego no estaba (no es error).
func (s *GamesService) Remove(ctx context.Context, userID, name string) (bool, error) {
	return s.games.Delete(ctx, userID, domain.NormalizeGameName(name))
}

func (s *GamesService) List(ctx context.Context, userID string) ([]string, error) {
	return s.games.ListByUser(ctx, userID)
}

func (s *GamesService) Common(ctx context.Context, userA, userB string) ([]string, error) {
	return s.games.Common(ctx, userA, userB)
}

// WhoPlays: dueños del juego (lookup inverso).
func (s *GamesService) WhoPlays(ctx context.Context, name string) ([]string, error) {
	return s.games.OwnersOf(ctx, domain.NormalizeGameName(name))
}

// Known: todos los títulos conocidos de la comunidad (autocomplete).
func (s *GamesService) Known(ctx context.Context) ([]string, error) {
	return s.games.AllNames(ctx)
}
