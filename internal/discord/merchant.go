package discord

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/hunterjsb/runebot/internal/render"
	"github.com/hunterjsb/runebot/internal/rotation"
)

// handleMerchantCommand handles the /merchant command
func (b *DiscordBot) handleMerchantCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.deferResponse(s, i) {
		return
	}

	day, err := optionMap(i.ApplicationCommandData().Options).day(b.Clock.Now())
	if err != nil {
		b.sendError(s, i, "Invalid Date", err.Error())
		return
	}

	r, err := rotation.New(rotation.Merchant{}, day)
	if err != nil {
		b.Logger.Error("merchant rotation failed", "day", day, "err", err)
		b.sendError(s, i, "Rotation Error", "Could not compute the merchant stock.")
		return
	}

	b.sendEmbed(s, i, formatMerchantEmbed(r))
}

// handleMerchantSearchCommand handles the /merchant-search command
func (b *DiscordBot) handleMerchantSearchCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.deferResponse(s, i) {
		return
	}

	opts := optionMap(i.ApplicationCommandData().Options)
	settings := b.Config.Bot
	count := clampCount(opts.int("count", settings.DefaultSearchCount), settings.DefaultSearchCount, settings.MaxSearchCount)

	v := rotation.Merchant{}
	item, err := rotation.Lookup(v, opts.string("item"))
	if err != nil {
		b.sendError(s, i, "Unknown Item", lookupErrorMessage(err, opts.string("item")))
		return
	}

	today := rotation.Day(b.Clock.Now())
	found, err := rotation.Find(v, today, item.ID, count)
	if err != nil && !errors.Is(err, rotation.ErrSearchExhausted) {
		b.Logger.Error("merchant search failed", "item", item.ID, "err", err)
		b.sendError(s, i, "Search Error", "Could not search the merchant rotation.")
		return
	}

	b.sendEmbed(s, i, formatSearchEmbed(item, today, found, count))
}

// formatMerchantEmbed formats one day of merchant stock into a Discord embed
func formatMerchantEmbed(r *rotation.Rotation) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(r.Picks)+len(r.Fixed))
	for _, item := range r.Items() {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   item.Name,
			Value:  formatItemValue(item),
			Inline: false,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "Travelling Merchant",
		Description: fmt.Sprintf("Stock for **%s**", r.Date().Format("Monday 2 January 2006")),
		Color:       colorMerchant,
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Rune-date %d", r.Day),
		},
		Timestamp: r.Date().Format(time.RFC3339),
	}
}

func formatItemValue(item rotation.Item) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s coins", render.Coins(item.Cost))
	if item.Quantity.Max > 1 {
		fmt.Fprintf(&sb, " • x%s", item.Quantity)
	}
	if item.Description != "" {
		fmt.Fprintf(&sb, "\n*%s*", item.Description)
	}
	return sb.String()
}

// formatSearchEmbed lists the upcoming days an item is stocked
func formatSearchEmbed(item rotation.Item, today int64, found []*rotation.Rotation, wanted int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🔍 %s", item.Name),
		Color: colorMerchant,
	}

	if len(found) == 0 {
		embed.Description = fmt.Sprintf("Not stocked in the next %d days.", rotation.SearchHorizon)
		return embed
	}

	lines := make([]string, 0, len(found))
	for _, r := range found {
		lines = append(lines, fmt.Sprintf("`%s` %s", r.Date().Format(time.DateOnly), render.RelativeDay(r.Day-today)))
	}
	embed.Description = truncate(strings.Join(lines, "\n"), 4000)

	if len(found) < wanted {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Only %d of %d found within %d days", len(found), wanted, rotation.SearchHorizon),
		}
	}
	return embed
}

func lookupErrorMessage(err error, query string) string {
	if errors.Is(err, rotation.ErrAmbiguousItem) {
		return fmt.Sprintf("`%s` matches more than one item. Be more specific.", query)
	}
	return fmt.Sprintf("No item matches `%s`.", query)
}
