package service

import (
	"context"
	"sort"
	"time"

	"github.com/jose-valero/gamenight-bot/internal/domain"
)

// MatchmakingService no tiene estado propio: cada ReadyToPlay es una consulta
// pura sobre los repos, así que puede correr concurrente para distintos
// requesters sin locking.
type MatchmakingService struct {
	users   UserRepo
	windows AvailabilityRepo
	games   GamesRepo
}

func NewMatchmakingService(users UserRepo, windows AvailabilityRepo, games GamesRepo) *MatchmakingService {
	return &MatchmakingService{users: users, windows: windows, games: games}
}

type Match struct {
	UserID      string
	SharedGames []string
}

// ReadyToPlay: quiénes están disponibles ahora y comparten juegos con el
// requester. nowUTC se captura una sola vez y se enhebra por toda la
// evaluación para que la consulta sea internamente consistente.
//
// Usuarios sin timezone (o con una inválida) se excluyen en silencio: fallar
// cerrado por usuario, nunca tirar la consulta entera.
func (s *MatchmakingService) ReadyToPlay(ctx context.Context, requesterID, gameFilter string, nowUTC time.Time) ([]Match, error) {
	candidates, err := s.users.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}

	var available []string
	for _, u := range candidates {
		if u.UserID == requesterID {
			continue
		}
		rows, err := s.windows.ListByUser(ctx, u.UserID)
		if err != nil {
			return nil, err
		}
		sched := domain.WeekSchedule{TZ: u.Timezone, Windows: toWindows(rows)}
		scheduled, err := sched.AvailableAt(nowUTC)
		if err != nil {
			continue // tz rota: el usuario queda fuera, no la query
		}
		if domain.EffectiveAvailability(scheduled, u.SnoozeUntil, nowUTC) {
			available = append(available, u.UserID)
		}
	}
	if len(available) == 0 {
		return nil, nil
	}

	shared, err := s.games.CommonBulk(ctx, requesterID, available)
	if err != nil {
		return nil, err
	}

	normFilter := domain.NormalizeGameName(gameFilter)
	var out []Match
	for _, uid := range available {
		games := shared[uid]
		if normFilter != "" {
			games = filterByNormalized(games, normFilter)
		}
		if len(games) == 0 {
			continue
		}
		out = append(out, Match{UserID: uid, SharedGames: games})
	}

	// más juegos en común primero; empate por user id para determinismo
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].SharedGames) != len(out[j].SharedGames) {
			return len(out[i].SharedGames) > len(out[j].SharedGames)
		}
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}

func filterByNormalized(games []string, norm string) []string {
	for _, g := range games {
		if domain.NormalizeGameName(g) == norm {
			return []string{g}
		}
	}
	return nil
}
