package discord

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// sendRemoveGameMenu publica el select con los juegos del usuario.
func (r *Router) sendRemoveGameMenu(ctx context.Context, s *discordgo.Session, ic *discordgo.InteractionCreate, uid string) {
	games, err := r.games.List(ctx, uid)
	if err != nil {
		ReplyEphemeral(s, ic, errText(err))
		return
	}
	if len(games) == 0 {
		ReplyEphemeral(s, ic, "ℹ️ No tenés juegos guardados.")
		return
	}

	// Discord limita el select a 25 opciones
	if len(games) > 25 {
		games = games[:25]
	}
	opts := make([]discordgo.SelectMenuOption, 0, len(games))
	for _, g := range games {
		label := g
		if len(label) > 100 {
			label = label[:100]
		}
		opts = append(opts, discordgo.SelectMenuOption{Label: label, Value: g})
	}

	row := discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    "remove_game_select",
				Placeholder: "Elegí el juego a sacar...",
				Options:     opts,
			},
		},
	}
	_, err = s.FollowupMessageCreate(ic.Interaction, true, &discordgo.WebhookParams{
		Content:    "Elegí un juego para **sacar** de tu lista:",
		Components: []discordgo.MessageComponent{row},
	})
	if err != nil {
		log.Printf("remove-game-menu: %v", err)
	}
}

func (r *Router) handleMessageComponent(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	data := ic.MessageComponentData()
	uid := invokerID(ic)

	_ = DeferEphemeral(s, ic)

	ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()

	switch data.CustomID {

	case "remove_game_select":
		if !r.clickLimiter.Allow(uid) {
			ReplyEphemeral(s, ic, "⏳ Esperá un segundo…")
			return
		}
		if len(data.Values) == 0 {
			ReplyEphemeral(s, ic, "⚠️ Selección inválida.")
			return
		}
		game := strings.TrimSpace(data.Values[0])

		removed, err := r.games.Remove(ctx, uid, game)
		if err != nil {
			ReplyEphemeral(s, ic, errText(err))
			return
		}
		if removed {
			ReplyEphemeral(s, ic, "✅ Sacado **"+game+"** de tus juegos.")
		} else {
			ReplyEphemeral(s, ic, "ℹ️ **"+game+"** ya no estaba en tu lista.")
		}
	}
}
