package domain

import (
	"fmt"
	"time"
)

// SnoozeTarget construye el instante canónico hasta el cual silenciar la
// disponibilidad. minute es un minuto del día local *de hoy*: el target se
// arma sobre la fecha local actual, así un snooze nunca cruza medianoche.
// Un target que no queda estrictamente en el futuro → ErrInvalidSnooze.
func SnoozeTarget(nowUTC time.Time, tz string, minute int) (time.Time, error) {
	if minute < 0 || minute >= MinutesPerDay {
		return time.Time{}, fmt.Errorf("%w: minute %d", ErrInvalidSnooze, minute)
	}
	loc, err := loadLocation(tz)
	if err != nil {
		return time.Time{}, err
	}
	local := nowUTC.In(loc)
	target := time.Date(local.Year(), local.Month(), local.Day(), minute/60, minute%60, 0, 0, loc)
	if !target.After(local) {
		return time.Time{}, fmt.Errorf("%w: %s ya pasó", ErrInvalidSnooze, FormatMinutes(minute))
	}
	return target.UTC(), nil
}

// SnoozedAt: hay un snooze activo si el valor guardado es estrictamente
// posterior a nowUTC. Un snooze vencido cuenta como inexistente (el caller
// puede limpiarlo de forma perezosa).
func SnoozedAt(until *time.Time, nowUTC time.Time) bool {
	return until != nil && until.After(nowUTC)
}

// EffectiveAvailability combina el resultado del schedule con el snooze. El
// snooze sólo puede ocultar disponibilidad, nunca otorgarla.
func EffectiveAvailability(scheduled bool, until *time.Time, nowUTC time.Time) bool {
	return scheduled && !SnoozedAt(until, nowUTC)
}
