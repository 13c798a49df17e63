package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jose-valero/gamenight-bot/internal/app/service"
)

type Router struct {
	s       *discordgo.Session
	guildID string

	profile      *service.ProfileService
	availability *service.AvailabilityService
	games        *service.GamesService
	matchmaking  *service.MatchmakingService

	adminRoleIDs []string
	clickLimiter *userLimiter
}

func NewRouter(
	s *discordgo.Session,
	guildID string,
	profile *service.ProfileService,
	availability *service.AvailabilityService,
	games *service.GamesService,
	matchmaking *service.MatchmakingService,
	adminRoleIDs []string,
) *Router {
	return &Router{
		s:            s,
		guildID:      guildID,
		profile:      profile,
		availability: availability,
		games:        games,
		matchmaking:  matchmaking,
		adminRoleIDs: adminRoleIDs,
		clickLimiter: newUserLimiter(2 * time.Second),
	}
}

func (r *Router) Register() error {
	appID := r.s.State.User.ID
	for _, cmd := range Commands {
		if _, err := r.s.ApplicationCommandCreate(appID, r.guildID, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (r *Router) Handlers() {
	r.s.AddHandler(func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		switch ic.Type {
		case discordgo.InteractionApplicationCommand:
			r.handleSlashCommand(s, ic)
		case discordgo.InteractionApplicationCommandAutocomplete:
			r.handleAutocomplete(s, ic)
		case discordgo.InteractionMessageComponent:
			r.handleMessageComponent(s, ic)
		}
	})
}
