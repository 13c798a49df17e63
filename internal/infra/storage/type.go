package storage

import "time"

type UserRecord struct {
	UserID      string
	Timezone    string // vacío = no seteada
	SnoozeUntil *time.Time
	CreatedAt   time.Time
}

type WindowRow struct {
	UserID string
	Day    int // lunes=0 .. domingo=6
	StartM int
	EndM   int // EndM < StartM ⇒ la ventana cruza medianoche
}

type GameRow struct {
	UserID     string
	GameName   string // como lo escribió el usuario
	Normalized string
}
