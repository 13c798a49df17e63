package domain

import "fmt"

// TimeWindow es una ventana de disponibilidad local anclada a un día de la
// semana. StartM/EndM son minutos desde medianoche [0,1440). Si EndM < StartM
// la ventana cruza medianoche: se interpreta como [StartM,1440) en Day unión
// [0,EndM) en Day+1.
type TimeWindow struct {
	Day    Weekday
	StartM int
	EndM   int
}

// NewTimeWindow valida rangos y rechaza ventanas de largo cero (start==end es
// ambiguo entre "todo el día" y "nada": el caller debe usar clear-day).
func NewTimeWindow(day Weekday, startM, endM int) (TimeWindow, error) {
	if day < 0 || day > 6 {
		return TimeWindow{}, fmt.Errorf("%w: day %d", ErrInvalidWindow, day)
	}
	if startM < 0 || startM >= MinutesPerDay || endM < 0 || endM >= MinutesPerDay {
		return TimeWindow{}, fmt.Errorf("%w: minutes out of range", ErrInvalidWindow)
	}
	if startM == endM {
		return TimeWindow{}, fmt.Errorf("%w: start and end must differ", ErrInvalidWindow)
	}
	return TimeWindow{Day: day, StartM: startM, EndM: endM}, nil
}

// Wraps indica si la ventana cruza medianoche hacia el día siguiente.
func (w TimeWindow) Wraps() bool { return w.EndM < w.StartM }

// Contains responde si (day, minute) cae dentro de la ventana. Intervalos
// semiabiertos: el inicio pertenece, el fin no. Para ventanas con wrap chequea
// el día propio y el derrame en el día siguiente.
func (w TimeWindow) Contains(day Weekday, minute int) bool {
	if !w.Wraps() {
		return day == w.Day && minute >= w.StartM && minute < w.EndM
	}
	if day == w.Day {
		return minute >= w.StartM
	}
	if day == w.Day.Next() {
		return minute < w.EndM
	}
	return false
}

// boundaries devuelve inicio y fin en minutos absolutos de la semana. El fin
// de una ventana con wrap vive en el día siguiente.
func (w TimeWindow) boundaries() (start, end int) {
	start = absMinute(w.Day, w.StartM)
	if w.Wraps() {
		end = absMinute(w.Day.Next(), w.EndM)
	} else {
		end = absMinute(w.Day, w.EndM)
	}
	return start, end
}

// NextBoundaryAfter devuelve el borde (inicio o fin) estrictamente posterior
// al punto dado, recorriendo la semana en forma cíclica. Siempre termina: el
// mismo borde existe a lo sumo 7 días (10080 minutos) más adelante.
func (w TimeWindow) NextBoundaryAfter(day Weekday, minute int) (Weekday, int) {
	from := absMinute(day, minute)
	start, end := w.boundaries()

	best := cyclicDelta(from, start)
	if d := cyclicDelta(from, end); d < best {
		best = d
	}
	return splitAbs(from + best)
}

// cyclicDelta: distancia estrictamente positiva de from a target sobre la
// semana, en (0, MinutesPerWeek].
func cyclicDelta(from, target int) int {
	return (target-from-1+MinutesPerWeek)%MinutesPerWeek + 1
}

// Overlaps: solapamiento (o contacto de bordes) entre dos ventanas normales
// del mismo día. Sólo tiene sentido para ventanas sin wrap.
func (w TimeWindow) Overlaps(o TimeWindow) bool {
	if w.Day != o.Day || w.Wraps() || o.Wraps() {
		return false
	}
	return w.StartM <= o.EndM && w.EndM >= o.StartM
}

// MergeInto agrega w al set de ventanas existentes, fusionando las ventanas
// normales del mismo día que se solapen o toquen. Las ventanas con wrap se
// agregan tal cual (sin duplicar una idéntica).
func MergeInto(existing []TimeWindow, w TimeWindow) []TimeWindow {
	if w.Wraps() {
		for _, e := range existing {
			if e == w {
				return existing
			}
		}
		return append(existing, w)
	}

	merged := w
	out := existing[:0:0]
	for _, e := range existing {
		if merged.Overlaps(e) {
			if e.StartM < merged.StartM {
				merged.StartM = e.StartM
			}
			if e.EndM > merged.EndM {
				merged.EndM = e.EndM
			}
			continue
		}
		out = append(out, e)
	}
	return append(out, merged)
}
