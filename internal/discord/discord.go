// Package discord exposes the shop rotations and hiscores as Discord slash
// commands.
package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/hunterjsb/runebot/internal/config"
	"github.com/hunterjsb/runebot/internal/logging"
)

var dateOption = &discordgo.ApplicationCommandOption{
	Type:        discordgo.ApplicationCommandOptionString,
	Name:        "date",
	Description: "Day to show as YYYY-MM-DD (default: today)",
	Required:    false,
}

var playerOption = &discordgo.ApplicationCommandOption{
	Type:        discordgo.ApplicationCommandOptionString,
	Name:        "player",
	Description: "RuneScape display name",
	Required:    true,
}

// Command definitions
var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "merchant",
		Description: "Show the Travelling Merchant's stock",
		Options:     []*discordgo.ApplicationCommandOption{dateOption},
	},
	{
		Name:        "merchant-search",
		Description: "Find the next days the Travelling Merchant sells an item",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "item",
				Description: "Item name, id or code (e.g. 'taijitu')",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "count",
				Description: "Number of days to list",
				Required:    false,
			},
		},
	},
	{
		Name:        "viswax",
		Description: "Show the Rune Goldberg Machine runes",
		Options:     []*discordgo.ApplicationCommandOption{dateOption},
	},
	{
		Name:        "hiscores",
		Description: "Summarise a player's hiscores",
		Options:     []*discordgo.ApplicationCommandOption{playerOption},
	},
	{
		Name:        "compare",
		Description: "Compare two players skill by skill",
		Options: []*discordgo.ApplicationCommandOption{
			playerOption,
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "other",
				Description: "RuneScape display name to compare against",
				Required:    true,
			},
		},
	},
}

var chatCommand = &discordgo.ApplicationCommand{
	Name:        "chat",
	Description: "Chat with the LLM bot",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "prompt",
			Description: "Your message to the AI",
			Required:    true,
		},
	},
}

// NewDiscordBot creates a new Discord bot with the provided configuration.
// A nil logger discards output and a nil clock uses the wall clock.
func NewDiscordBot(cfg *config.Config, hs HiscoresService, logger *log.Logger, clock quartz.Clock) (*DiscordBot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	if logger == nil {
		logger = logging.Discard()
	}
	if clock == nil {
		clock = quartz.NewReal()
	}

	bot := &DiscordBot{
		Session:         session,
		Config:          cfg,
		Hiscores:        hs,
		Logger:          logger,
		Clock:           clock,
		GuildID:         cfg.GuildID,
		CommandHandlers: make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)),
	}

	// Set up command handlers
	bot.CommandHandlers["merchant"] = bot.handleMerchantCommand
	bot.CommandHandlers["merchant-search"] = bot.handleMerchantSearchCommand
	bot.CommandHandlers["viswax"] = bot.handleVisWaxCommand
	bot.CommandHandlers["hiscores"] = bot.handleHiscoresCommand
	bot.CommandHandlers["compare"] = bot.handleCompareCommand

	if cfg.ChatEnabled() {
		bot.OpenAI = NewOpenAIClient(cfg.OpenAIToken, cfg.MaxTokens, cfg.Temperature)
		bot.CommandHandlers["chat"] = bot.handleChatCommand
	}

	return bot, nil
}

// Start starts the Discord bot
func (b *DiscordBot) Start() error {
	user, err := b.Session.User("@me")
	if err != nil {
		return fmt.Errorf("error getting bot user: %w", err)
	}
	b.BotUserID = user.ID

	b.Session.AddHandler(b.interactionHandler)

	// Open a websocket connection to Discord
	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening Discord session: %w", err)
	}

	registeredCommands, err := b.registerCommands()
	if err != nil {
		return fmt.Errorf("error registering commands: %w", err)
	}
	b.Commands = registeredCommands

	b.Logger.Info("bot is running", "user", user.Username, "commands", len(registeredCommands))
	return nil
}

// Stop closes the session, removing the registered commands first when
// configured to.
func (b *DiscordBot) Stop() error {
	if b.Config.Bot.RemoveCommands {
		b.Logger.Info("removing commands", "count", len(b.Commands))
		for _, cmd := range b.Commands {
			if err := b.Session.ApplicationCommandDelete(b.Session.State.User.ID, b.GuildID, cmd.ID); err != nil {
				b.Logger.Error("error removing command", "command", cmd.Name, "err", err)
			}
		}
	}

	return b.Session.Close()
}

// commandList returns the commands this bot can serve.
func (b *DiscordBot) commandList() []*discordgo.ApplicationCommand {
	list := make([]*discordgo.ApplicationCommand, 0, len(commands)+1)
	for _, cmd := range commands {
		if _, ok := b.CommandHandlers[cmd.Name]; ok {
			list = append(list, cmd)
		}
	}
	if _, ok := b.CommandHandlers[chatCommand.Name]; ok {
		list = append(list, chatCommand)
	}
	return list
}

// registerCommands registers the defined slash commands
func (b *DiscordBot) registerCommands() ([]*discordgo.ApplicationCommand, error) {
	cmds := b.commandList()
	registeredCommands := make([]*discordgo.ApplicationCommand, len(cmds))

	for i, cmd := range cmds {
		registered, err := b.Session.ApplicationCommandCreate(b.Session.State.User.ID, b.GuildID, cmd)
		if err != nil {
			return nil, fmt.Errorf("error creating command '%s': %w", cmd.Name, err)
		}
		registeredCommands[i] = registered
	}

	return registeredCommands, nil
}

// interactionHandler handles Discord interaction events
func (b *DiscordBot) interactionHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	commandName := i.ApplicationCommandData().Name
	if handler, ok := b.CommandHandlers[commandName]; ok {
		b.Logger.Debug("command", "name", commandName, "guild", i.GuildID)
		handler(s, i)
	}
}

// deferResponse acknowledges the interaction so the handler can take longer
// than Discord's three second window.
func (b *DiscordBot) deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		b.Logger.Error("error acknowledging interaction", "err", err)
		return false
	}
	return true
}

// sendEmbed replaces the deferred response with embed
func (b *DiscordBot) sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		b.Logger.Error("error editing interaction response", "err", err)
	}
}

// sendError sends an error embed
func (b *DiscordBot) sendError(s *discordgo.Session, i *discordgo.InteractionCreate, title, description string) {
	b.sendEmbed(s, i, errorEmbed(title, description))
}

func errorEmbed(title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       colorError,
	}
}
