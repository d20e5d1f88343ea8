package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/hunterjsb/runebot/internal/render"
	"github.com/hunterjsb/runebot/internal/rotation"
)

// dayFlag resolves an optional YYYY-MM-DD flag to a rune-date, defaulting to
// the current day.
func dayFlag(date string, now time.Time) (int64, error) {
	if date == "" {
		return rotation.Day(now), nil
	}
	t, err := rotation.ParseDate(date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q, use YYYY-MM-DD", date)
	}
	return rotation.Day(t), nil
}

func printDays(g *Globals, v rotation.Variant, date string, days int) error {
	if days < 1 || days > 31 {
		return fmt.Errorf("--days must be between 1 and 31, got %d", days)
	}
	day, err := dayFlag(date, g.clock().Now())
	if err != nil {
		return err
	}

	w := g.out()
	for d := day; d < day+int64(days); d++ {
		r, err := rotation.New(v, d)
		if err != nil {
			return err
		}
		if d > day {
			fmt.Fprintln(w)
		}
		if err := render.Rotation(w, r); err != nil {
			return err
		}
	}
	return nil
}

// MerchantCmd prints the merchant stock of one or more days
type MerchantCmd struct {
	Date string `short:"d" help:"Day to show as YYYY-MM-DD (default: today)"`
	Days int    `short:"n" default:"1" help:"Number of consecutive days to show"`
}

func (c *MerchantCmd) Run(g *Globals) error {
	return printDays(g, rotation.Merchant{}, c.Date, c.Days)
}

// VisWaxCmd prints the vis wax runes of one or more days
type VisWaxCmd struct {
	Date string `short:"d" help:"Day to show as YYYY-MM-DD (default: today)"`
	Days int    `short:"n" default:"1" help:"Number of consecutive days to show"`
}

func (c *VisWaxCmd) Run(g *Globals) error {
	return printDays(g, rotation.Runes{}, c.Date, c.Days)
}

// SearchCmd finds the next days an item is stocked
type SearchCmd struct {
	Item  string `arg:"" help:"Item name, id or code"`
	Count int    `short:"c" default:"5" help:"Number of days to list"`
	From  string `help:"First day to search as YYYY-MM-DD (default: today)"`
	Runes bool   `help:"Search the rune rotation instead of the merchant"`
}

func (c *SearchCmd) Run(g *Globals) error {
	if c.Count < 1 {
		return fmt.Errorf("--count must be positive, got %d", c.Count)
	}

	var v rotation.Variant = rotation.Merchant{}
	if c.Runes {
		v = rotation.Runes{}
	}

	item, err := rotation.Lookup(v, c.Item)
	if err != nil {
		return err
	}
	from, err := dayFlag(c.From, g.clock().Now())
	if err != nil {
		return err
	}

	found, err := rotation.Find(v, from, item.ID, c.Count)
	if err != nil && !errors.Is(err, rotation.ErrSearchExhausted) {
		return err
	}
	return render.Search(g.out(), item, from, found, c.Count)
}
