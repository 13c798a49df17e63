// Dispatch de InteractionApplicationCommand: acá sólo interpretamos la
// interacción y despachamos al service que corresponda. El texto final sale
// de texts.go.
package discord

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jose-valero/gamenight-bot/internal/domain"
)

func (r *Router) handleSlashCommand(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	cmd := ic.ApplicationCommandData()
	uid := invokerID(ic)
	log.Printf("cmd: /%s by=%s guild=%s", cmd.Name, uid, ic.GuildID)

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("panic in cmd /%s: %v", cmd.Name, rec)
			ReplyEphemeral(s, ic, "❌ Ocurrió un error inesperado procesando el comando.")
		}
	}()

	// ready-to-play responde público, el resto es efímero
	if cmd.Name == "ready-to-play" {
		_ = DeferPublic(s, ic)
	} else {
		_ = DeferEphemeral(s, ic)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
	defer cancel()

	// un solo read de reloj por interacción: toda la evaluación usa este now
	nowUTC := time.Now().UTC()

	switch cmd.Name {

	case "set-timezone":
		tz, _ := optStr(ic, "tz")
		canonical, err := r.profile.SetTimezone(ctx, uid, tz)
		if err != nil {
			ReplyEphemeral(s, ic, "⚠️ Timezone inválida: **"+tz+"**. Probá con el autocomplete.")
			return
		}
		ReplyEphemeral(s, ic, "✅ Timezone configurada: **"+canonical+"**.")

	case "my-timezone":
		tz, err := r.profile.Timezone(ctx, uid)
		if err != nil {
			ReplyEphemeral(s, ic, errText(err))
			return
		}
		ReplyEphemeral(s, ic, "🌍 Tu timezone: **"+tz+"**")

	case "set-availability":
		dayRaw, _ := optStr(ic, "day")
		startRaw, _ := optStr(ic, "start")
		endRaw, _ := optStr(ic, "end")

		day, err := domain.ParseDay(dayRaw)
		if err != nil {
			ReplyEphemeral(s, ic, "⚠️ "+err.Error())
			return
		}
		startM, err := domain.ParseHHMM(startRaw)
		if err != nil {
			ReplyEphemeral(s, ic, "⚠️ Las horas van en formato HH:MM (ej: 18:00).")
			return
		}
		endM, err := domain.ParseHHMM(endRaw)
		if err != nil {
			ReplyEphemeral(s, ic, "⚠️ Las horas van en formato HH:MM (ej: 18:00).")
			return
		}

		w, err := r.availability.SetWindow(ctx, uid, day, startM, endM)
		if err != nil {
			ReplyEphemeral(s, ic, errText(err))
			return
		}
		msg := fmt.Sprintf("✅ Agregado %s-%s el %s.",
			domain.FormatMinutes(w.StartM), domain.FormatMinutes(w.EndM), w.Day)
		if w.Wraps() {
			msg += " (cruza medianoche hacia el " + w.Day.Next().String() + ")"
		}
		ReplyEphemeral(s, ic, msg)

	case "clear-availability":
		dayRaw, _ := optStr(ic, "day")
		day, err := domain.ParseDay(dayRaw)
		if err != nil {
			ReplyEphemeral(s, ic, "⚠️ "+err.Error())
			return
		}
		if err := r.availability.ClearDay(ctx, uid, day); err != nil {
			ReplyEphemeral(s, ic, errText(err))
			return
		}
		ReplyEphemeral(s, ic, "✅ Disponibilidad del "+day.String()+" borrada.")

	case "my-availability":
		ov, err := r.availability.Overview(ctx, uid)
		if err != nil {
			ReplyEphemeral(s, ic, errText(err))
			return
		}
		ReplyEphemeral(s, ic, fmtOverview(ov, nowUTC))

	case "snooze":
		untilRaw, _ := optStr(ic, "until")
		minute, err := domain.ParseHHMM(untilRaw)
		if err != nil {
			ReplyEphemeral(s, ic, "⚠️ La hora va en formato HH:MM (ej: 23:00).")
			return
		}
		until, err := r.availability.Snooze(ctx, uid, minute, nowUTC)
		if err != nil {
			ReplyEphemeral(s, ic, errText(err))
			return
		}
		ReplyEphemeral(s, ic, fmt.Sprintf("😴 Silenciado hasta <t:%d:t>. Usa `/unsnooze` para volver antes.", until.Unix()))

	case "unsnooze":
		if err := r.availability.Unsnooze(ctx, uid); err != nil {
			ReplyEphemeral(s, ic, errText(err))
			return
		}
		ReplyEphemeral(s, ic, "✅ Snooze cancelado.")

	case "next-available":
		target := uid
		if other, ok := optUserID(ic, "user"); ok {
			target = other
		}
		at, availableNow, err := r.availability.NextAvailable(ctx, target, nowUTC)
		if err != nil {
			ReplyEphemeral(s, ic, errText(err))
			return
		}
		ReplyEphemeral(s, ic, fmtNextAvailable(target, at, availableNow))

	case "add-game":
		game, _ := optStr(ic, "game")
		if err := r.games.Add(ctx, uid, game); err != nil {
			ReplyEphemeral(s, ic, "⚠️ No pude agregar el juego: "+err.Error())
			return
		}
		ReplyEphemeral(s, ic, "✅ Agregado **"+game+"** a tus juegos.")

	case "remove-game":
		game, _ := optStr(ic, "game")
		removed, err := r.games.Remove(ctx, uid, game)
		if err != nil {
			ReplyEphemeral(s, ic, errText(err))
			return
		}
		if !removed {
			ReplyEphemeral(s, ic, "ℹ️ **"+game+"** no estaba en tu lista.")
			return
		}
		ReplyEphemeral(s, ic, "✅ Sacado **"+game+"** de tus juegos.")

	case "remove-game-menu":
		r.sendRemoveGameMenu(ctx, s, ic, uid)

	case "list-games":
		games, err := r.games.List(ctx, uid)
		if err != nil {
			ReplyEphemeral(s, ic, errText(err))
			return
		}
		ReplyEphemeral(s, ic, fmtGameList(games))

	case "common-games":
		otherID, ok := optUserID(ic, "other")
		if !ok {
			ReplyEphemeral(s, ic, "⚠️ Tenés que elegir un usuario.")
			return
		}
		common, err := r.games.Common(ctx, uid, otherID)
		if err != nil {
			ReplyEphemeral(s, ic, errText(err))
			return
		}
		ReplyEphemeral(s, ic, fmtCommonGames(otherID, common))

	case "who-plays":
		game, _ := optStr(ic, "game")
		owners, err := r.games.WhoPlays(ctx, game)
		if err != nil {
			ReplyEphemeral(s, ic, errText(err))
			return
		}
		ReplyEphemeral(s, ic, fmtWhoPlays(game, owners))

	case "ready-to-play":
		stop := step("cmd.ready_to_play.total")
		defer stop()
		gameFilter, _ := optStr(ic, "game")
		matches, err := r.matchmaking.ReadyToPlay(ctx, uid, gameFilter, nowUTC)
		if err != nil {
			Reply(s, ic, errText(err))
			return
		}
		Reply(s, ic, fmtMatches(matches, gameFilter))

	case "stats":
		if !r.requireAdminOrRoles(s, ic) {
			return
		}
		n, err := r.profile.UserCount(ctx)
		if err != nil {
			ReplyEphemeral(s, ic, errText(err))
			return
		}
		ReplyEphemeral(s, ic, fmt.Sprintf("📊 Usuarios registrados: **%d**", n))
	}
}
