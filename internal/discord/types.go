package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/hunterjsb/runebot/internal/config"
	"github.com/hunterjsb/runebot/internal/hiscores"
	"github.com/sashabaranov/go-openai"
)

// DiscordBot represents a Discord bot
type DiscordBot struct {
	Session         *discordgo.Session
	Config          *config.Config
	OpenAI          *OpenAIClient // nil when chat is disabled
	Hiscores        HiscoresService
	Logger          *log.Logger
	Clock           quartz.Clock
	BotUserID       string
	GuildID         string
	Commands        []*discordgo.ApplicationCommand
	CommandHandlers map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
}

// HiscoresService is the part of the hiscores client the bot uses.
type HiscoresService interface {
	Lookup(ctx context.Context, name string) (*hiscores.Player, error)
	Compare(ctx context.Context, a, b string) (*hiscores.Comparison, error)
}

// OpenAIClient wraps the OpenAI API client
type OpenAIClient struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

// Embed colours
const (
	colorError    = 0xff0000
	colorMerchant = 0xc8a24a
	colorRunes    = 0x6a5acd
	colorHiscores = 0x2e8b57
	colorChat     = 0x00ff00
)
