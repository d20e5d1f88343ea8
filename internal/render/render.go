// Package render prints rotations and hiscores for the terminal.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hunterjsb/runebot/internal/hiscores"
	"github.com/hunterjsb/runebot/internal/rotation"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	upStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	downStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func variantTitle(name string) string {
	switch name {
	case rotation.Merchant{}.Name():
		return "Travelling Merchant"
	case rotation.Runes{}.Name():
		return "Rune Goldberg Machine"
	default:
		return name
	}
}

// Rotation prints one day of a rotation as a slot/item/cost table.
func Rotation(w io.Writer, r *rotation.Rotation) error {
	fmt.Fprintf(w, "%s %s\n\n",
		titleStyle.Render(variantTitle(r.Variant)),
		mutedStyle.Render(fmt.Sprintf("%s (rune-date %d)", r.Date().Format(time.DateOnly), r.Day)))

	tw := newTable(w)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("slot"),
		headerStyle.Render("item"),
		headerStyle.Render("cost"),
		headerStyle.Render("qty"))

	for _, p := range r.Picks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Slot, itemStyle.Render(p.Item.Name), cost(p.Item), p.Item.Quantity)
	}
	for _, item := range r.Fixed {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", "fixed", itemStyle.Render(item.Name), cost(item), item.Quantity)
	}
	return tw.Flush()
}

func cost(item rotation.Item) string {
	if item.Cost == 0 {
		return "-"
	}
	return Coins(item.Cost)
}

// Search prints the days found by a forward search. When fewer than wanted
// were found the horizon is called out.
func Search(w io.Writer, item rotation.Item, from int64, found []*rotation.Rotation, wanted int) error {
	fmt.Fprintf(w, "%s\n\n", titleStyle.Render(item.Name))

	if len(found) == 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("not stocked in the next %d days", rotation.SearchHorizon)))
		return nil
	}

	tw := newTable(w)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("date"),
		headerStyle.Render("rune-date"),
		headerStyle.Render("when"))
	for _, r := range found {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", r.Date().Format(time.DateOnly), r.Day, RelativeDay(r.Day-from))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(found) < wanted {
		fmt.Fprintf(w, "\n%s\n", warnStyle.Render(
			fmt.Sprintf("only %d of %d found within %d days", len(found), wanted, rotation.SearchHorizon)))
	}
	return nil
}

// Summary prints a player's hiscores digest followed by every skill.
func Summary(w io.Writer, p *hiscores.Player, s hiscores.Summary) error {
	fmt.Fprintf(w, "%s %s\n\n", titleStyle.Render(p.Name), mutedStyle.Render(Rank(s.Rank)))

	fmt.Fprintf(w, "combat %d  total %d  xp %s\n", s.CombatLevel, s.TotalLevel, XP(s.TotalXP))
	fmt.Fprintf(w, "99s %d  120s %d  200m %d\n", len(s.Skills99), len(s.Skills120), len(s.Skills200M))
	if s.Closest != nil {
		fmt.Fprintf(w, "closest: %s %d -> %d (%.1f%%, %s xp to go)\n",
			s.Closest.Skill, s.Closest.Level, s.Closest.Level+1, s.Closest.Percent, XP(s.Closest.XPRemaining))
	}
	fmt.Fprintln(w)

	tw := newTable(w)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("skill"),
		headerStyle.Render("level"),
		headerStyle.Render("xp"),
		headerStyle.Render("rank"))
	for _, sk := range p.Skills {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", sk.Name, sk.Level, Coins(int(max(sk.XP, 0))), Rank(sk.Rank))
	}
	return tw.Flush()
}

// Comparison prints two players side by side with the xp gap per skill.
func Comparison(w io.Writer, cmp *hiscores.Comparison) error {
	fmt.Fprintf(w, "%s\n\n", titleStyle.Render(cmp.A.Name+" vs "+cmp.B.Name))

	tw := newTable(w)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("skill"),
		headerStyle.Render(cmp.A.Name),
		headerStyle.Render(cmp.B.Name),
		headerStyle.Render("xp gap"))
	for _, d := range cmp.Deltas {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", d.Name, d.LevelA, d.LevelB, gap(d.XPDiff))
	}
	fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", "Total", cmp.A.Overall.Level, cmp.B.Overall.Level,
		gap(max(cmp.A.Overall.XP, 0)-max(cmp.B.Overall.XP, 0)))
	if err := tw.Flush(); err != nil {
		return err
	}

	if l := cmp.Leader(); l != nil {
		fmt.Fprintf(w, "\n%s leads\n", l.Name)
	} else {
		fmt.Fprintln(w, "\ndead even")
	}
	return nil
}

func gap(diff int64) string {
	switch {
	case diff > 0:
		return upStyle.Render("+" + XP(diff))
	case diff < 0:
		return downStyle.Render("-" + XP(-diff))
	default:
		return mutedStyle.Render("0")
	}
}
