package discord

import "github.com/bwmarrin/discordgo"

func (r *Router) requireAdminOrRoles(s *discordgo.Session, ic *discordgo.InteractionCreate) bool {
	if ic.Member == nil || ic.Member.User == nil {
		return false
	}

	// Owner del guild
	if g, _ := s.State.Guild(ic.GuildID); g != nil && ic.Member.User.ID == g.OwnerID {
		return true
	}

	// Bit de administrador en alguno de sus roles
	roles, _ := s.GuildRoles(ic.GuildID)
	byID := make(map[string]*discordgo.Role, len(roles))
	for _, ro := range roles {
		byID[ro.ID] = ro
	}
	for _, rid := range ic.Member.Roles {
		if ro, ok := byID[rid]; ok && ro.Permissions&discordgo.PermissionAdministrator != 0 {
			return true
		}
	}

	// Roles explícitos configurados para el bot
	for _, want := range r.adminRoleIDs {
		for _, rid := range ic.Member.Roles {
			if rid == want {
				return true
			}
		}
	}

	ReplyEphemeral(s, ic, "🔒 No tienes permisos para esta acción.")
	return false
}
