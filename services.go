package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/hunterjsb/runebot/internal/api"
	"github.com/hunterjsb/runebot/internal/config"
	"github.com/hunterjsb/runebot/internal/discord"
	"github.com/hunterjsb/runebot/internal/hiscores"
	"github.com/hunterjsb/runebot/internal/render"
)

func newHiscoresClient(cfg *config.Config, logger *log.Logger) *hiscores.Client {
	cache := hiscores.NewCache(cfg.Hiscores.CacheSize, cfg.Hiscores.CacheTTL)
	return hiscores.NewClient(cfg.Hiscores.BaseURL, cfg.Hiscores.Timeout, cache, logger.WithPrefix("hiscores"))
}

// BotCmd runs the Discord bot until interrupted
type BotCmd struct{}

func (c *BotCmd) Run(g *Globals) error {
	cfg, logger, err := g.load("bot")
	if err != nil {
		return err
	}
	if err := cfg.ValidateBot(); err != nil {
		return err
	}

	bot, err := discord.NewDiscordBot(cfg, newHiscoresClient(cfg, logger), logger, g.clock())
	if err != nil {
		return fmt.Errorf("error creating Discord bot: %w", err)
	}
	if err := bot.Start(); err != nil {
		return fmt.Errorf("error starting Discord bot: %w", err)
	}

	discord.SetupCloseHandler(logger, bot.Stop)

	logger.Info("press CTRL-C to exit")
	select {}
}

// ServeCmd runs the JSON API until interrupted
type ServeCmd struct {
	Addr string `help:"Listen address (default: config http.address)"`
}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, logger, err := g.load("api")
	if err != nil {
		return err
	}
	addr := cfg.HTTP.Address
	if c.Addr != "" {
		addr = c.Addr
	}

	e := api.NewServer(api.NewHandler(logger, g.clock(), cfg.Bot.MaxSearchCount))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// HiscoresCmd prints one player's stats, or a comparison when two are given
type HiscoresCmd struct {
	Player string `arg:"" help:"Display name"`
	Other  string `arg:"" optional:"" help:"Second display name to compare against"`
}

func (c *HiscoresCmd) Run(g *Globals) error {
	cfg, logger, err := g.load("hiscores")
	if err != nil {
		return err
	}
	client := newHiscoresClient(cfg, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.Hiscores.Timeout)
	defer cancel()

	if c.Other != "" {
		cmp, err := client.Compare(ctx, c.Player, c.Other)
		if err != nil {
			return err
		}
		return render.Comparison(g.out(), cmp)
	}

	p, err := client.Lookup(ctx, c.Player)
	if err != nil {
		return err
	}
	return render.Summary(g.out(), p, hiscores.Analyze(p))
}
