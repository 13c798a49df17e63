package discord

import "github.com/bwmarrin/discordgo"

func dayChoices() []*discordgo.ApplicationCommandOptionChoice {
	days := []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(days))
	for _, d := range days {
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: d, Value: d})
	}
	return out
}

var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "set-timezone",
		Description: "Configura tu timezone (IANA, ej: America/Argentina/Buenos_Aires)",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "tz",
			Description:  "Identificador IANA",
			Required:     true,
			Autocomplete: true,
		}},
	},
	{
		Name:        "my-timezone",
		Description: "Muestra tu timezone guardada",
	},
	{
		Name:        "set-availability",
		Description: "Agrega una franja horaria para un día (puede cruzar medianoche)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "day",
				Description: "Día de la semana",
				Required:    true,
				Choices:     dayChoices(),
			},
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "start",
				Description:  "Inicio HH:MM (hora local tuya)",
				Required:     true,
				Autocomplete: true,
			},
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "end",
				Description:  "Fin HH:MM (si es menor al inicio, cruza medianoche)",
				Required:     true,
				Autocomplete: true,
			},
		},
	},
	{
		Name:        "clear-availability",
		Description: "Borra todas tus franjas de un día",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "day",
			Description: "Día de la semana",
			Required:    true,
			Choices:     dayChoices(),
		}},
	},
	{
		Name:        "my-availability",
		Description: "Muestra tu disponibilidad semanal",
	},
	{
		Name:        "snooze",
		Description: "Silencia tu disponibilidad hasta una hora de hoy",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "until",
			Description:  "Hora local HH:MM (sólo hoy, a futuro)",
			Required:     true,
			Autocomplete: true,
		}},
	},
	{
		Name:        "unsnooze",
		Description: "Cancela tu snooze",
	},
	{
		Name:        "next-available",
		Description: "Cuándo vuelve a estar disponible un usuario (vos por defecto)",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Otro usuario",
			Required:    false,
		}},
	},
	{
		Name:        "add-game",
		Description: "Agrega un juego a tu lista",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "game",
			Description:  "Nombre del juego",
			Required:     true,
			Autocomplete: true,
		}},
	},
	{
		Name:        "remove-game",
		Description: "Saca un juego de tu lista",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "game",
			Description:  "Nombre del juego",
			Required:     true,
			Autocomplete: true,
		}},
	},
	{
		Name:        "remove-game-menu",
		Description: "Saca un juego de tu lista con un menú desplegable",
	},
	{
		Name:        "list-games",
		Description: "Lista tus juegos guardados",
	},
	{
		Name:        "common-games",
		Description: "Juegos en común con otro usuario",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "other",
			Description: "El otro usuario",
			Required:    true,
		}},
	},
	{
		Name:        "who-plays",
		Description: "Quiénes tienen un juego en su lista",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "game",
			Description:  "Nombre del juego",
			Required:     true,
			Autocomplete: true,
		}},
	},
	{
		Name:        "ready-to-play",
		Description: "Quiénes están disponibles ahora y comparten tus juegos",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "game",
			Description:  "Filtrar por un juego puntual",
			Required:     false,
			Autocomplete: true,
		}},
	},
	{
		Name:        "stats",
		Description: "Estadísticas del bot (admins)",
	},
}
