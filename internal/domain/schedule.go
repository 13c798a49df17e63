package domain

import "time"

// WeekSchedule es la disponibilidad semanal de un usuario: su timezone y el
// set de ventanas locales. Es un snapshot por request, no estado compartido.
type WeekSchedule struct {
	TZ      string
	Windows []TimeWindow
}

// AvailableAt responde si el usuario está disponible en el instante canónico
// dado, según su reloj local.
func (s WeekSchedule) AvailableAt(nowUTC time.Time) (bool, error) {
	day, minute, err := LocalAt(nowUTC, s.TZ)
	if err != nil {
		return false, err
	}
	for _, w := range s.Windows {
		if w.Contains(day, minute) {
			return true, nil
		}
	}
	return false, nil
}

// NextAvailable devuelve el próximo instante canónico en que el usuario está
// disponible. Si ya está disponible devuelve nowUTC tal cual. Sin ventanas
// configuradas → ErrNoAvailability.
func (s WeekSchedule) NextAvailable(nowUTC time.Time) (time.Time, error) {
	if len(s.Windows) == 0 {
		return time.Time{}, ErrNoAvailability
	}

	day, minute, err := LocalAt(nowUTC, s.TZ)
	if err != nil {
		return time.Time{}, err
	}

	from := absMinute(day, minute)
	best := -1
	for _, w := range s.Windows {
		if w.Contains(day, minute) {
			return nowUTC, nil
		}
		// sólo interesan los inicios: un fin nunca abre disponibilidad
		d := cyclicDelta(from, absMinute(w.Day, w.StartM))
		if best < 0 || d < best {
			best = d
		}
	}

	nextDay, nextMinute := splitAbs(from + best)
	return CanonicalAt(nowUTC, s.TZ, nextDay, nextMinute)
}
