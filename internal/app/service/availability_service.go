package service

import (
	"context"
	"errors"
	"time"

	"github.com/jose-valero/gamenight-bot/internal/domain"
	"github.com/jose-valero/gamenight-bot/internal/infra/storage"
)

type AvailabilityService struct {
	users   UserRepo
	windows AvailabilityRepo
}

func NewAvailabilityService(users UserRepo, windows AvailabilityRepo) *AvailabilityService {
	return &AvailabilityService{users: users, windows: windows}
}

// WeekOverview es el snapshot que renderiza /my-availability.
type WeekOverview struct {
	Timezone    string // vacío = no seteada
	Windows     []domain.TimeWindow
	SnoozeUntil *time.Time
}

// SetWindow agrega una ventana al día dado, fusionando solapamientos con las
// ventanas normales existentes de ese día (read-modify-write por usuario).
func (s *AvailabilityService) SetWindow(ctx context.Context, userID string, day domain.Weekday, startM, endM int) (domain.TimeWindow, error) {
	w, err := domain.NewTimeWindow(day, startM, endM)
	if err != nil {
		return domain.TimeWindow{}, err
	}
	if err := s.users.Ensure(ctx, userID); err != nil {
		return domain.TimeWindow{}, err
	}

	rows, err := s.windows.ListByUserDay(ctx, userID, int(day))
	if err != nil {
		return domain.TimeWindow{}, err
	}
	merged := domain.MergeInto(toWindows(rows), w)

	if err := s.windows.ReplaceDay(ctx, userID, int(day), toRows(userID, merged)); err != nil {
		return domain.TimeWindow{}, err
	}
	return w, nil
}

// ClearDay borra todas las ventanas del día (idempotente).
func (s *AvailabilityService) ClearDay(ctx context.Context, userID string, day domain.Weekday) error {
	return s.windows.ClearDay(ctx, userID, int(day))
}

func (s *AvailabilityService) Overview(ctx context.Context, userID string) (WeekOverview, error) {
	var ov WeekOverview
	u, err := s.users.Get(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return ov, err
	}
	ov.Timezone = u.Timezone
	ov.SnoozeUntil = u.SnoozeUntil

	rows, err := s.windows.ListByUser(ctx, userID)
	if err != nil {
		return ov, err
	}
	ov.Windows = toWindows(rows)
	return ov, nil
}

// schedule materializa el snapshot del usuario para una consulta.
func (s *AvailabilityService) schedule(ctx context.Context, userID string) (domain.WeekSchedule, *time.Time, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.WeekSchedule{}, nil, domain.ErrUnresolvedTimezone
		}
		return domain.WeekSchedule{}, nil, err
	}
	rows, err := s.windows.ListByUser(ctx, userID)
	if err != nil {
		return domain.WeekSchedule{}, nil, err
	}
	return domain.WeekSchedule{TZ: u.Timezone, Windows: toWindows(rows)}, u.SnoozeUntil, nil
}

// NextAvailable: cuándo vuelve a estar disponible el usuario. El bool indica
// que ya está disponible ahora mismo (el instante devuelto es nowUTC).
func (s *AvailabilityService) NextAvailable(ctx context.Context, userID string, nowUTC time.Time) (time.Time, bool, error) {
	sched, _, err := s.schedule(ctx, userID)
	if err != nil {
		return time.Time{}, false, err
	}
	at, err := sched.NextAvailable(nowUTC)
	if err != nil {
		return time.Time{}, false, err
	}
	return at, at.Equal(nowUTC), nil
}

// Snooze silencia al usuario hasta el minuto local dado de hoy.
func (s *AvailabilityService) Snooze(ctx context.Context, userID string, minute int, nowUTC time.Time) (time.Time, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return time.Time{}, domain.ErrUnresolvedTimezone
		}
		return time.Time{}, err
	}
	until, err := domain.SnoozeTarget(nowUTC, u.Timezone, minute)
	if err != nil {
		return time.Time{}, err
	}
	if err := s.users.SetSnooze(ctx, userID, until); err != nil {
		return time.Time{}, err
	}
	return until, nil
}

func (s *AvailabilityService) Unsnooze(ctx context.Context, userID string) error {
	return s.users.ClearSnooze(ctx, userID)
}

func toWindows(rows []storage.WindowRow) []domain.TimeWindow {
	out := make([]domain.TimeWindow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.TimeWindow{Day: domain.Weekday(r.Day), StartM: r.StartM, EndM: r.EndM})
	}
	return out
}

func toRows(userID string, ws []domain.TimeWindow) []storage.WindowRow {
	out := make([]storage.WindowRow, 0, len(ws))
	for _, w := range ws {
		out = append(out, storage.WindowRow{UserID: userID, Day: int(w.Day), StartM: w.StartM, EndM: w.EndM})
	}
	return out
}
