package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/hunterjsb/runebot/internal/rotation"
)

// handleVisWaxCommand handles the /viswax command
func (b *DiscordBot) handleVisWaxCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.deferResponse(s, i) {
		return
	}

	day, err := optionMap(i.ApplicationCommandData().Options).day(b.Clock.Now())
	if err != nil {
		b.sendError(s, i, "Invalid Date", err.Error())
		return
	}

	r, err := rotation.New(rotation.Runes{}, day)
	if err != nil {
		b.Logger.Error("rune rotation failed", "day", day, "err", err)
		b.sendError(s, i, "Rotation Error", "Could not compute the rune combination.")
		return
	}

	b.sendEmbed(s, i, formatVisWaxEmbed(r))
}

// formatVisWaxEmbed shows the runes of the day, one inline field per slot
func formatVisWaxEmbed(r *rotation.Rotation) *discordgo.MessageEmbed {
	names := make([]string, 0, len(r.Picks))
	fields := make([]*discordgo.MessageEmbedField, 0, len(r.Picks))
	for _, p := range r.Picks {
		names = append(names, p.Item.Name)
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   strings.ToUpper(p.Slot[:1]) + p.Slot[1:],
			Value:  fmt.Sprintf("**%s**", p.Item.Name),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "Rune Goldberg Machine",
		Description: fmt.Sprintf("Vis wax runes for **%s**\n%s", r.Date().Format("Monday 2 January 2006"), strings.Join(names, " • ")),
		Color:       colorRunes,
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Rune-date %d", r.Day),
		},
		Timestamp: r.Date().Format(time.RFC3339),
	}
}
