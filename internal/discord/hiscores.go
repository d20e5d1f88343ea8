package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/hunterjsb/runebot/internal/hiscores"
	"github.com/hunterjsb/runebot/internal/render"
)

const hiscoresTimeout = 15 * time.Second

// handleHiscoresCommand handles the /hiscores command
func (b *DiscordBot) handleHiscoresCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.deferResponse(s, i) {
		return
	}

	name := optionMap(i.ApplicationCommandData().Options).string("player")

	ctx, cancel := context.WithTimeout(context.Background(), hiscoresTimeout)
	defer cancel()

	player, err := b.Hiscores.Lookup(ctx, name)
	if err != nil {
		b.sendHiscoresError(s, i, err, name)
		return
	}

	b.sendEmbed(s, i, formatHiscoresEmbed(player, hiscores.Analyze(player)))
}

// handleCompareCommand handles the /compare command
func (b *DiscordBot) handleCompareCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.deferResponse(s, i) {
		return
	}

	opts := optionMap(i.ApplicationCommandData().Options)
	a, other := opts.string("player"), opts.string("other")

	ctx, cancel := context.WithTimeout(context.Background(), hiscoresTimeout)
	defer cancel()

	cmp, err := b.Hiscores.Compare(ctx, a, other)
	if err != nil {
		b.sendHiscoresError(s, i, err, a, other)
		return
	}

	b.sendEmbed(s, i, formatComparisonEmbed(cmp))
}

func (b *DiscordBot) sendHiscoresError(s *discordgo.Session, i *discordgo.InteractionCreate, err error, names ...string) {
	quoted := make([]string, len(names))
	for n, name := range names {
		quoted[n] = "`" + name + "`"
	}
	who := strings.Join(quoted, " or ")

	switch {
	case errors.Is(err, hiscores.ErrInvalidName):
		b.sendError(s, i, "Invalid Name", "Display names are 1 to 12 characters long.")
	case errors.Is(err, hiscores.ErrPlayerNotFound):
		b.sendError(s, i, "Player Not Found", fmt.Sprintf("Could not find %s on the hiscores", who))
	default:
		b.Logger.Error("hiscores lookup failed", "players", names, "err", err)
		b.sendError(s, i, "API Error", "Error fetching data from the RuneScape hiscores")
	}
}

// formatHiscoresEmbed formats a player summary into a Discord embed
func formatHiscoresEmbed(p *hiscores.Player, sum hiscores.Summary) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Overview",
			Value:  fmt.Sprintf("Combat: **%d**\nTotal: **%d**\nXP: **%s**", sum.CombatLevel, sum.TotalLevel, render.XP(sum.TotalXP)),
			Inline: true,
		},
		{
			Name:   "Rank",
			Value:  render.Rank(sum.Rank),
			Inline: true,
		},
		{
			Name:   "Milestones",
			Value:  fmt.Sprintf("99s: **%d**\n120s: **%d**\n200M: **%d**", len(sum.Skills99), len(sum.Skills120), len(sum.Skills200M)),
			Inline: true,
		},
	}

	if sum.Closest != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "Closest Level",
			Value: fmt.Sprintf("%s %d → %d (%.1f%%, %s xp to go)",
				sum.Closest.Skill, sum.Closest.Level, sum.Closest.Level+1, sum.Closest.Percent, render.XP(sum.Closest.XPRemaining)),
			Inline: false,
		})
	}

	fields = append(fields, &discordgo.MessageEmbedField{
		Name:   "Skills",
		Value:  formatSkillGrid(p.Skills),
		Inline: false,
	})

	return &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("📜 %s", p.Name),
		Color:     colorHiscores,
		Fields:    fields,
		Timestamp: p.FetchedAt.Format(time.RFC3339),
	}
}

// formatSkillGrid lays skills out three per line in a code block
func formatSkillGrid(skills []hiscores.Skill) string {
	var sb strings.Builder
	sb.WriteString("```\n")
	for idx, sk := range skills {
		fmt.Fprintf(&sb, "%-13s %3d", sk.Name, sk.Level)
		if idx%3 == 2 || idx == len(skills)-1 {
			sb.WriteString("\n")
		} else {
			sb.WriteString("  ")
		}
	}
	sb.WriteString("```")
	return sb.String()
}

// formatComparisonEmbed lines the two players up skill by skill
func formatComparisonEmbed(cmp *hiscores.Comparison) *discordgo.MessageEmbed {
	leader := "Dead even"
	if l := cmp.Leader(); l != nil {
		leader = fmt.Sprintf("**%s** leads by %s xp", l.Name, render.XP(absXP(cmp.A.Overall.XP-cmp.B.Overall.XP)))
	}

	var lines []string
	for _, d := range cmp.Deltas {
		marker := "="
		switch {
		case d.XPDiff > 0:
			marker = "▲"
		case d.XPDiff < 0:
			marker = "▼"
		}
		lines = append(lines, fmt.Sprintf("%-13s %3d %s %3d", d.Name, d.LevelA, marker, d.LevelB))
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚔️ %s vs %s", cmp.A.Name, cmp.B.Name),
		Description: leader,
		Color:       colorHiscores,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Total",
				Value:  fmt.Sprintf("%d vs %d", cmp.A.Overall.Level, cmp.B.Overall.Level),
				Inline: false,
			},
			{
				Name:   "Skills",
				Value:  truncate("```\n"+strings.Join(lines, "\n")+"\n```", 1024),
				Inline: false,
			},
		},
	}
}

func absXP(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
