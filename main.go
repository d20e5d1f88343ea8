package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/hunterjsb/runebot/internal/config"
	"github.com/hunterjsb/runebot/internal/dotenv"
	"github.com/hunterjsb/runebot/internal/logging"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command.
type Globals struct {
	Config   string       `help:"Path to an HCL config file (default: $RUNEBOT_CONFIG or runebot.hcl)" type:"path"`
	LogLevel string       `help:"Override the configured log level (debug, info, warn, error)"`
	Out      io.Writer    `kong:"-"`
	Clock    quartz.Clock `kong:"-"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Bot      BotCmd           `cmd:"" help:"Run the Discord bot"`
	Merchant MerchantCmd      `cmd:"" help:"Print the Travelling Merchant's stock"`
	Viswax   VisWaxCmd        `cmd:"" help:"Print the Rune Goldberg Machine runes"`
	Search   SearchCmd        `cmd:"" help:"Find the next days an item is stocked"`
	Serve    ServeCmd         `cmd:"" help:"Run the JSON API"`
	Hiscores HiscoresCmd      `cmd:"" help:"Show a player's hiscores, or compare two players"`
}

// load resolves the configuration and a logger for a command.
func (g *Globals) load(prefix string) (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	return cfg, logging.New(cfg.LogLevel, prefix), nil
}

func (g *Globals) clock() quartz.Clock {
	if g.Clock != nil {
		return g.Clock
	}
	return quartz.NewReal()
}

func (g *Globals) out() io.Writer {
	if g.Out != nil {
		return g.Out
	}
	return os.Stdout
}

func main() {
	// Existing environment variables win over the file
	if _, err := dotenv.LoadFirst(".env", "../.env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error loading .env file: %v\n", err)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("runebot"),
		kong.Description("RuneScape shop rotations and hiscores, as a Discord bot, an API and a CLI"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
