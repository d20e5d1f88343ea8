package discord

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/hunterjsb/runebot/internal/rotation"
)

// SetupCloseHandler creates a handler that will catch SIGINT and SIGTERM signals
// and gracefully close the application
func SetupCloseHandler(logger *log.Logger, cleanupFunc func() error) {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		logger.Info("shutting down")
		if err := cleanupFunc(); err != nil {
			logger.Error("error during cleanup", "err", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
}

type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) options {
	m := make(options, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

func (o options) string(name string) string {
	if opt, ok := o[name]; ok {
		return opt.StringValue()
	}
	return ""
}

// int returns the named integer option, or fallback when absent
func (o options) int(name string, fallback int) int {
	if opt, ok := o[name]; ok {
		return int(opt.IntValue())
	}
	return fallback
}

// day resolves the optional "date" option to a rune-date, defaulting to the
// day containing now.
func (o options) day(now time.Time) (int64, error) {
	s := o.string("date")
	if s == "" {
		return rotation.Day(now), nil
	}
	t, err := rotation.ParseDate(s)
	if err != nil {
		return 0, fmt.Errorf("`%s` is not a date, use YYYY-MM-DD", s)
	}
	return rotation.Day(t), nil
}

// clampCount keeps a requested count within 1..maxCount. Unset or
// non-positive counts use fallback.
func clampCount(count, fallback, maxCount int) int {
	switch {
	case count < 1:
		return fallback
	case count > maxCount:
		return maxCount
	default:
		return count
	}
}

// truncate shortens s to at most n bytes, marking the cut with "...".
// The cut never splits a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
