package service

import (
	"context"
	"errors"

	"github.com/jose-valero/gamenight-bot/internal/domain"
)

type ProfileService struct {
	users UserRepo
}

func NewProfileService(users UserRepo) *ProfileService {
	return &ProfileService{users: users}
}

// SetTimezone valida contra la base IANA y guarda la forma canónica.
func (s *ProfileService) SetTimezone(ctx context.Context, userID, tz string) (string, error) {
	canonical, err := domain.ValidateTZ(tz)
	if err != nil {
		return "", err
	}
	if err := s.users.SetTimezone(ctx, userID, canonical); err != nil {
		return "", err
	}
	return canonical, nil
}

// Timezone devuelve la tz guardada; ErrUnresolvedTimezone si no hay.
func (s *ProfileService) Timezone(ctx context.Context, userID string) (string, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUnresolvedTimezone
		}
		return "", err
	}
	if u.Timezone == "" {
		return "", domain.ErrUnresolvedTimezone
	}
	return u.Timezone, nil
}

func (s *ProfileService) UserCount(ctx context.Context) (int, error) {
	return s.users.Count(ctx)
}
