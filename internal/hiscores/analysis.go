package hiscores

import (
	"math"
	"sort"
)

const (
	// MaxVirtualLevel is the highest level the experience table covers.
	MaxVirtualLevel = 120
	// MaxXP is the experience cap of every skill.
	MaxXP int64 = 200_000_000
)

// xpTable[n] is the experience needed for level n.
var xpTable = buildXPTable()

func buildXPTable() [MaxVirtualLevel + 1]int64 {
	var table [MaxVirtualLevel + 1]int64
	var points float64
	for lvl := 1; lvl < MaxVirtualLevel; lvl++ {
		points += math.Floor(float64(lvl) + 300*math.Pow(2, float64(lvl)/7))
		table[lvl+1] = int64(math.Floor(points / 4))
	}
	return table
}

// XPForLevel returns the experience at which level starts. Levels outside
// 1..120 are clamped.
func XPForLevel(level int) int64 {
	level = min(max(level, 1), MaxVirtualLevel)
	return xpTable[level]
}

// LevelForXP returns the virtual level reached with xp, up to 120.
func LevelForXP(xp int64) int {
	lvl := sort.Search(len(xpTable)-1, func(i int) bool { return xpTable[i+1] > xp })
	return max(lvl, 1)
}

// Progress describes how far a skill is into its current level.
type Progress struct {
	Skill       string  `json:"skill"`
	Level       int     `json:"level"`
	Percent     float64 `json:"percent"`
	XPRemaining int64   `json:"xpRemaining"`
}

// Summary is the digest shown for a single player.
type Summary struct {
	Name        string    `json:"name"`
	CombatLevel int       `json:"combatLevel"`
	TotalLevel  int       `json:"totalLevel"`
	TotalXP     int64     `json:"totalXp"`
	Rank        int64     `json:"rank"`
	Skills99    []string  `json:"skills99"`
	Skills120   []string  `json:"skills120"`
	Skills200M  []string  `json:"skills200m"`
	Closest     *Progress `json:"closest,omitempty"`
}

// Analyze derives the summary of a player.
func Analyze(p *Player) Summary {
	s := Summary{
		Name:        p.Name,
		CombatLevel: CombatLevel(p),
		TotalLevel:  p.Overall.Level,
		TotalXP:     max(p.Overall.XP, 0),
		Rank:        p.Overall.Rank,
	}

	for _, sk := range p.Skills {
		xp := max(sk.XP, 0)
		if sk.Level >= 99 {
			s.Skills99 = append(s.Skills99, sk.Name)
		}
		if xp >= XPForLevel(MaxVirtualLevel) {
			s.Skills120 = append(s.Skills120, sk.Name)
		}
		if xp >= MaxXP {
			s.Skills200M = append(s.Skills200M, sk.Name)
		}

		prog, ok := progressOf(sk.Name, xp)
		if !ok {
			continue
		}
		if s.Closest == nil || prog.Percent > s.Closest.Percent {
			s.Closest = &prog
		}
	}
	return s
}

// progressOf reports progress towards the next virtual level. Skills already
// at 120 have nothing left to report.
func progressOf(name string, xp int64) (Progress, bool) {
	lvl := LevelForXP(xp)
	if lvl >= MaxVirtualLevel {
		return Progress{}, false
	}
	start, next := XPForLevel(lvl), XPForLevel(lvl+1)
	return Progress{
		Skill:       name,
		Level:       lvl,
		Percent:     100 * float64(xp-start) / float64(next-start),
		XPRemaining: next - xp,
	}, true
}

// CombatLevel applies the combat formula to the player's capped levels.
func CombatLevel(p *Player) int {
	lvl := func(name string) float64 { return float64(min(p.level(name), 99)) }

	offence := max(
		lvl("Attack")+lvl("Strength"),
		2*lvl("Magic"),
		2*lvl("Ranged"),
		2*lvl("Necromancy"),
	)
	base := 1.3*offence + lvl("Defence") + lvl("Constitution") +
		math.Floor(lvl("Prayer")/2) + math.Floor(lvl("Summoning")/2)
	return int(base / 4)
}
