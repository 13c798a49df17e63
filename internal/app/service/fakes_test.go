package service

import (
	"context"
	"sort"
	"time"

	"github.com/jose-valero/gamenight-bot/internal/domain"
	"github.com/jose-valero/gamenight-bot/internal/infra/storage"
)

// memStore respalda los fakes en memoria. Tres vistas distintas porque los
// puertos comparten nombres de método con firmas diferentes.
type memStore struct {
	users   map[string]*storage.UserRecord
	windows map[string][]storage.WindowRow
	games   map[string][]storage.GameRow
}

func newMemStore() *memStore {
	return &memStore{
		users:   map[string]*storage.UserRecord{},
		windows: map[string][]storage.WindowRow{},
		games:   map[string][]storage.GameRow{},
	}
}

func (m *memStore) addUser(userID, tz string) {
	m.users[userID] = &storage.UserRecord{UserID: userID, Timezone: tz}
}

func (m *memStore) addWindow(userID string, day domain.Weekday, startM, endM int) {
	m.windows[userID] = append(m.windows[userID], storage.WindowRow{
		UserID: userID, Day: int(day), StartM: startM, EndM: endM,
	})
}

func (m *memStore) addGame(userID, name string) {
	m.games[userID] = append(m.games[userID], storage.GameRow{
		UserID: userID, GameName: name, Normalized: domain.NormalizeGameName(name),
	})
}

func (m *memStore) snoozeUser(userID string, until time.Time) {
	m.users[userID].SnoozeUntil = &until
}

type fakeUsers struct{ st *memStore }

func (f *fakeUsers) Ensure(_ context.Context, userID string) error {
	if _, ok := f.st.users[userID]; !ok {
		f.st.users[userID] = &storage.UserRecord{UserID: userID}
	}
	return nil
}

func (f *fakeUsers) Get(_ context.Context, userID string) (storage.UserRecord, error) {
	u, ok := f.st.users[userID]
	if !ok {
		return storage.UserRecord{}, domain.ErrNotFound
	}
	return *u, nil
}

func (f *fakeUsers) SetTimezone(ctx context.Context, userID, tz string) error {
	_ = f.Ensure(ctx, userID)
	f.st.users[userID].Timezone = tz
	return nil
}

func (f *fakeUsers) SetSnooze(_ context.Context, userID string, until time.Time) error {
	u, ok := f.st.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	u.SnoozeUntil = &until
	return nil
}

func (f *fakeUsers) ClearSnooze(_ context.Context, userID string) error {
	if u, ok := f.st.users[userID]; ok {
		u.SnoozeUntil = nil
	}
	return nil
}

// ListCandidates replica el contrato del repo real: tz seteada y al menos una
// ventana configurada.
func (f *fakeUsers) ListCandidates(_ context.Context) ([]storage.UserRecord, error) {
	var out []storage.UserRecord
	for id, u := range f.st.users {
		if u.Timezone == "" || len(f.st.windows[id]) == 0 {
			continue
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (f *fakeUsers) Count(_ context.Context) (int, error) {
	return len(f.st.users), nil
}

type fakeWindows struct{ st *memStore }

func (f *fakeWindows) ListByUser(_ context.Context, userID string) ([]storage.WindowRow, error) {
	return append([]storage.WindowRow(nil), f.st.windows[userID]...), nil
}

func (f *fakeWindows) ListByUserDay(_ context.Context, userID string, day int) ([]storage.WindowRow, error) {
	var out []storage.WindowRow
	for _, r := range f.st.windows[userID] {
		if r.Day == day {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeWindows) ReplaceDay(ctx context.Context, userID string, day int, windows []storage.WindowRow) error {
	_ = f.ClearDay(ctx, userID, day)
	f.st.windows[userID] = append(f.st.windows[userID], windows...)
	return nil
}

func (f *fakeWindows) ClearDay(_ context.Context, userID string, day int) error {
	kept := f.st.windows[userID][:0]
	for _, r := range f.st.windows[userID] {
		if r.Day != day {
			kept = append(kept, r)
		}
	}
	f.st.windows[userID] = kept
	return nil
}

type fakeGames struct{ st *memStore }

func (f *fakeGames) Upsert(_ context.Context, g storage.GameRow) error {
	for i, e := range f.st.games[g.UserID] {
		if e.Normalized == g.Normalized {
			f.st.games[g.UserID][i] = g
			return nil
		}
	}
	f.st.games[g.UserID] = append(f.st.games[g.UserID], g)
	return nil
}

func (f *fakeGames) Delete(_ context.Context, userID, normalized string) (bool, error) {
	for i, e := range f.st.games[userID] {
		if e.Normalized == normalized {
			f.st.games[userID] = append(f.st.games[userID][:i], f.st.games[userID][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGames) ListByUser(_ context.Context, userID string) ([]string, error) {
	var out []string
	for _, e := range f.st.games[userID] {
		out = append(out, e.GameName)
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeGames) Common(_ context.Context, userA, userB string) ([]string, error) {
	return domain.CommonGames(f.names(userA), f.names(userB)), nil
}

func (f *fakeGames) CommonBulk(_ context.Context, requester string, candidates []string) (map[string][]string, error) {
	out := make(map[string][]string, len(candidates))
	mine := f.names(requester)
	for _, c := range candidates {
		if shared := domain.CommonGames(mine, f.names(c)); len(shared) > 0 {
			out[c] = shared
		}
	}
	return out, nil
}

func (f *fakeGames) OwnersOf(_ context.Context, normalized string) ([]string, error) {
	var out []string
	for id, rows := range f.st.games {
		for _, e := range rows {
			if e.Normalized == normalized {
				out = append(out, id)
				break
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeGames) AllNames(_ context.Context) ([]string, error) {
	seen := map[string]string{}
	for _, rows := range f.st.games {
		for _, e := range rows {
			seen[e.Normalized] = e.GameName
		}
	}
	var out []string
	for _, name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeGames) names(userID string) []string {
	var out []string
	for _, e := range f.st.games[userID] {
		out = append(out, e.GameName)
	}
	return out
}
