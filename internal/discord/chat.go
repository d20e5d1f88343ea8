package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
)

const chatTimeout = 30 * time.Second

// handleChatCommand handles the /chat command
func (b *DiscordBot) handleChatCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.deferResponse(s, i) {
		return
	}

	prompt := optionMap(i.ApplicationCommandData().Options).string("prompt")

	ctx, cancel := context.WithTimeout(context.Background(), chatTimeout)
	defer cancel()

	response, err := b.OpenAI.GenerateResponse(ctx, prompt)
	if err != nil {
		b.Logger.Error("error generating response", "err", err)
		b.sendError(s, i, "AI Error", "Sorry, I couldn't process your request.")
		return
	}

	b.sendEmbed(s, i, formatChatEmbed(response, b.Clock.Now()))
}

// formatChatEmbed wraps an LLM reply, trimming it to the embed description limit
func formatChatEmbed(response string, now time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "AI Response",
		Description: truncate(response, 4000),
		Color:       colorChat,
		Timestamp:   now.Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Powered by OpenAI",
		},
	}
}
