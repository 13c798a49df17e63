package domain

import "time"

// Weekday es un día de la semana con lunes=0 .. domingo=6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const (
	// MinutesPerDay: minutos de reloj por día local.
	MinutesPerDay = 24 * 60
	// MinutesPerWeek: grilla semanal completa en minutos.
	MinutesPerWeek = 7 * MinutesPerDay
)

// DayKeys son las claves cortas que usan los comandos (mon..sun).
var DayKeys = [7]string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

func (d Weekday) String() string {
	if d < 0 || d > 6 {
		return "???"
	}
	return DayKeys[d]
}

// Next devuelve el día siguiente, con wrap de domingo a lunes.
func (d Weekday) Next() Weekday { return (d + 1) % 7 }

// WeekdayOf mapea el weekday de Go (domingo=0) al nuestro (lunes=0).
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// absMinute proyecta (día, minuto) sobre la grilla semanal [0, MinutesPerWeek).
func absMinute(d Weekday, minute int) int {
	return int(d)*MinutesPerDay + minute
}

// splitAbs es la inversa de absMinute.
func splitAbs(abs int) (Weekday, int) {
	abs = ((abs % MinutesPerWeek) + MinutesPerWeek) % MinutesPerWeek
	return Weekday(abs / MinutesPerDay), abs % MinutesPerDay
}
