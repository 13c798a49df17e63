package domain

import (
	"fmt"
	"time"
)

// loadLocation resuelve la timezone del usuario. Timezone vacía o inválida →
// ErrUnresolvedTimezone: nunca adivinamos UTC.
func loadLocation(tz string) (*time.Location, error) {
	if tz == "" {
		return nil, ErrUnresolvedTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnresolvedTimezone, tz)
	}
	return loc, nil
}

// ValidateTZ chequea que tz sea una zona IANA válida y la devuelve canónica.
func ValidateTZ(tz string) (string, error) {
	loc, err := loadLocation(tz)
	if err != nil {
		return "", err
	}
	return loc.String(), nil
}

// LocalAt convierte un instante canónico (UTC) al marco local del usuario:
// (día de semana, minuto del día). Siempre se evalúa contra la fecha real del
// instante, así el offset (DST incluido) es el vigente.
func LocalAt(nowUTC time.Time, tz string) (Weekday, int, error) {
	loc, err := loadLocation(tz)
	if err != nil {
		return 0, 0, err
	}
	local := nowUTC.In(loc)
	return WeekdayOf(local), local.Hour()*60 + local.Minute(), nil
}

// CanonicalAt devuelve el primer instante canónico, igual o posterior a
// nowUTC, cuyo marco local del usuario es (day, minute). La fecha de
// referencia es la del propio nowUTC; time.Date en la location resuelve DST.
func CanonicalAt(nowUTC time.Time, tz string, day Weekday, minute int) (time.Time, error) {
	loc, err := loadLocation(tz)
	if err != nil {
		return time.Time{}, err
	}
	local := nowUTC.In(loc)

	ahead := (int(day) - int(WeekdayOf(local)) + 7) % 7
	cand := time.Date(local.Year(), local.Month(), local.Day()+ahead, minute/60, minute%60, 0, 0, loc)
	if cand.Before(local) {
		cand = cand.AddDate(0, 0, 7)
	}
	return cand.UTC(), nil
}

// FormatMinutes renderiza minutos desde medianoche como HH:MM.
func FormatMinutes(mins int) string {
	if mins < 0 || mins >= MinutesPerDay {
		mins = 0
	}
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}
