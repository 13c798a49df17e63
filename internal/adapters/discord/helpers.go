package discord

import (
	"github.com/bwmarrin/discordgo"
)

func optStr(ic *discordgo.InteractionCreate, name string) (string, bool) {
	for _, o := range ic.ApplicationCommandData().Options {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionString {
			return o.StringValue(), true
		}
	}
	return "", false
}

// optUserID devuelve el ID del usuario elegido en una opción tipo User.
// No usamos UserValue(s) para no pegarle a la API por el objeto completo.
func optUserID(ic *discordgo.InteractionCreate, name string) (string, bool) {
	for _, o := range ic.ApplicationCommandData().Options {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionUser {
			if u := o.UserValue(nil); u != nil {
				return u.ID, true
			}
		}
	}
	return "", false
}

// focusedOpt: la opción que el usuario está tipeando en un autocomplete.
func focusedOpt(ic *discordgo.InteractionCreate) (name, value string) {
	for _, o := range ic.ApplicationCommandData().Options {
		if o.Focused {
			return o.Name, o.StringValue()
		}
	}
	return "", ""
}

func invokerID(ic *discordgo.InteractionCreate) string {
	if ic.Member != nil && ic.Member.User != nil {
		return ic.Member.User.ID
	}
	if ic.User != nil {
		return ic.User.ID
	}
	return ""
}
