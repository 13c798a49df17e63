package discord

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jose-valero/gamenight-bot/internal/domain"
)

// Timezones sugeridas en el autocomplete. El usuario puede tipear cualquier
// zona IANA igual; esto es sólo la lista corta de la comunidad.
var knownTimezones = []string{
	"US/Eastern", "US/Central", "US/Mountain", "US/Pacific", "US/Alaska", "US/Hawaii",
	"America/Argentina/Buenos_Aires", "America/Bogota", "America/Mexico_City",
	"America/Santiago", "America/Sao_Paulo",
	"Europe/London", "Europe/Madrid", "Europe/Berlin", "Europe/Moscow",
	"Asia/Tokyo", "Australia/Sydney", "UTC",
}

// timeIncrements: el día en pasos de 15 minutos para start/end/until.
func timeIncrements(prefix string) []*discordgo.ApplicationCommandOptionChoice {
	var out []*discordgo.ApplicationCommandOptionChoice
	for m := 0; m < domain.MinutesPerDay; m += 15 {
		hhmm := domain.FormatMinutes(m)
		if prefix != "" && !strings.HasPrefix(hhmm, prefix) {
			continue
		}
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: hhmm, Value: hhmm})
		if len(out) == 25 {
			break
		}
	}
	return out
}

func filterContains(items []string, current string) []*discordgo.ApplicationCommandOptionChoice {
	lower := strings.ToLower(current)
	var out []*discordgo.ApplicationCommandOptionChoice
	for _, it := range items {
		if lower != "" && !strings.Contains(strings.ToLower(it), lower) {
			continue
		}
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: it, Value: it})
		if len(out) == 25 {
			break
		}
	}
	return out
}

func (r *Router) handleAutocomplete(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	cmd := ic.ApplicationCommandData()
	opt, current := focusedOpt(ic)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	switch {
	case cmd.Name == "set-timezone" && opt == "tz":
		SuggestChoices(s, ic, filterContains(knownTimezones, current))

	case opt == "start" || opt == "end" || opt == "until":
		SuggestChoices(s, ic, timeIncrements(current))

	// remove-game sugiere de tu propia lista
	case cmd.Name == "remove-game" && opt == "game":
		games, err := r.games.List(ctx, invokerID(ic))
		if err != nil {
			SuggestChoices(s, ic, nil)
			return
		}
		SuggestChoices(s, ic, filterContains(games, current))

	// add-game / who-plays / ready-to-play sugieren de todos los juegos conocidos
	case opt == "game":
		games, err := r.games.Known(ctx)
		if err != nil {
			SuggestChoices(s, ic, nil)
			return
		}
		SuggestChoices(s, ic, filterContains(games, current))
	}
}
