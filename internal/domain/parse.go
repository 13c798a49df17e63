package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHHMM parsea "HH:MM" a minutos desde medianoche.
func ParseHHMM(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("se esperaba HH:MM, recibí %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("hora inválida en %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("minuto inválido en %q", s)
	}
	return h*60 + m, nil
}

// ParseDay mapea una clave corta (mon..sun) a Weekday.
func ParseDay(s string) (Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, k := range DayKeys {
		if k == key {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("día inválido %q (mon..sun)", s)
}
