package discord

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jose-valero/gamenight-bot/internal/app/service"
	"github.com/jose-valero/gamenight-bot/internal/domain"
)

// Render de resultados estructurados a texto de usuario. El engine devuelve
// datos; las palabras viven todas acá.

func errText(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnresolvedTimezone):
		return "🌍 No tenés timezone configurada. Usa `/set-timezone` primero."
	case errors.Is(err, domain.ErrNoAvailability):
		return "ℹ️ No hay disponibilidad configurada. Usa `/set-availability`."
	case errors.Is(err, domain.ErrInvalidWindow):
		return "⚠️ Franja inválida: inicio y fin deben diferir (usa `/clear-availability` para borrar un día)."
	case errors.Is(err, domain.ErrInvalidSnooze):
		return "⚠️ El snooze tiene que apuntar a una hora de **hoy** que todavía no pasó."
	default:
		return "❌ Ocurrió un error inesperado: " + err.Error()
	}
}

func fmtOverview(ov service.WeekOverview, nowUTC time.Time) string {
	var b strings.Builder
	if ov.Timezone != "" {
		b.WriteString("🌍 timezone: **" + ov.Timezone + "**\n")
	} else {
		b.WriteString("🌍 timezone: *no seteada*\n")
	}
	if domain.SnoozedAt(ov.SnoozeUntil, nowUTC) {
		fmt.Fprintf(&b, "😴 snooze hasta <t:%d:t>\n", ov.SnoozeUntil.Unix())
	}

	byDay := make(map[domain.Weekday][]domain.TimeWindow)
	for _, w := range ov.Windows {
		byDay[w.Day] = append(byDay[w.Day], w)
	}
	for d := domain.Monday; d <= domain.Sunday; d++ {
		ws := byDay[d]
		if len(ws) == 0 {
			b.WriteString(d.String() + ": —\n")
			continue
		}
		parts := make([]string, 0, len(ws))
		for _, w := range ws {
			parts = append(parts, domain.FormatMinutes(w.StartM)+"-"+domain.FormatMinutes(w.EndM))
		}
		b.WriteString(d.String() + ": " + strings.Join(parts, ", ") + "\n")
	}
	return b.String()
}

func fmtMatches(matches []service.Match, gameFilter string) string {
	if len(matches) == 0 {
		if gameFilter != "" {
			return fmt.Sprintf("ℹ️ Nadie está disponible ahora para **%s**.", gameFilter)
		}
		return "ℹ️ Nadie con juegos en común está disponible ahora."
	}
	var b strings.Builder
	b.WriteString("🎮 **Disponibles ahora:**\n")
	for _, m := range matches {
		fmt.Fprintf(&b, "<@%s> — %s\n", m.UserID, strings.Join(m.SharedGames, ", "))
	}
	return b.String()
}

func fmtGameList(games []string) string {
	if len(games) == 0 {
		return "ℹ️ No tenés juegos guardados."
	}
	var b strings.Builder
	b.WriteString("🕹️ **Tus juegos:**\n")
	for _, g := range games {
		b.WriteString("• " + g + "\n")
	}
	return b.String()
}

func fmtCommonGames(otherID string, common []string) string {
	if len(common) == 0 {
		return fmt.Sprintf("ℹ️ No tenés juegos en común con <@%s>.", otherID)
	}
	return fmt.Sprintf("🕹️ Juegos en común con <@%s>: **%s**", otherID, strings.Join(common, ", "))
}

func fmtWhoPlays(game string, owners []string) string {
	if len(owners) == 0 {
		return fmt.Sprintf("ℹ️ Nadie tiene **%s** en su lista todavía.", game)
	}
	mentions := make([]string, 0, len(owners))
	for _, id := range owners {
		mentions = append(mentions, "<@"+id+">")
	}
	return fmt.Sprintf("🕹️ **%s** lo juegan: %s", game, strings.Join(mentions, ", "))
}

func fmtNextAvailable(userID string, at time.Time, availableNow bool) string {
	if availableNow {
		return fmt.Sprintf("✅ <@%s> está disponible **ahora**.", userID)
	}
	return fmt.Sprintf("⏰ <@%s> vuelve a estar disponible <t:%d:R> (<t:%d:f>).", userID, at.Unix(), at.Unix())
}
