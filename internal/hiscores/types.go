package hiscores

import (
	"strings"
	"time"
)

// SkillNames lists the skill rows of the lite hiscores, in response order.
// "Overall" is always first.
var SkillNames = []string{
	"Overall", "Attack", "Defence", "Strength", "Constitution", "Ranged",
	"Prayer", "Magic", "Cooking", "Woodcutting", "Fletching", "Fishing",
	"Firemaking", "Crafting", "Smithing", "Mining", "Herblore", "Agility",
	"Thieving", "Slayer", "Farming", "Runecrafting", "Hunter", "Construction",
	"Summoning", "Dungeoneering", "Divination", "Invention", "Archaeology",
	"Necromancy",
}

// Skill is one skill row. Rank is -1 for unranked players.
type Skill struct {
	Name  string `json:"name"`
	Rank  int64  `json:"rank"`
	Level int    `json:"level"`
	XP    int64  `json:"xp"`
}

// Activity is one minigame or clue row. Rows are unnamed in the API.
type Activity struct {
	Index int   `json:"index"`
	Rank  int64 `json:"rank"`
	Score int64 `json:"score"`
}

// Player is a parsed hiscores response.
type Player struct {
	Name       string     `json:"name"`
	Overall    Skill      `json:"overall"`
	Skills     []Skill    `json:"skills"`
	Activities []Activity `json:"activities,omitempty"`
	FetchedAt  time.Time  `json:"fetchedAt"`
}

// Skill returns the named skill, matching case-insensitively.
func (p *Player) Skill(name string) (Skill, bool) {
	for _, s := range p.Skills {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Skill{}, false
}

// level returns the level of name or 1 when the skill is missing.
func (p *Player) level(name string) int {
	if s, ok := p.Skill(name); ok && s.Level > 0 {
		return s.Level
	}
	return 1
}

// SkillDelta compares one skill between two players.
type SkillDelta struct {
	Name   string `json:"name"`
	LevelA int    `json:"levelA"`
	LevelB int    `json:"levelB"`
	XPDiff int64  `json:"xpDiff"` // A minus B
}

// Comparison is the result of comparing two players skill by skill.
type Comparison struct {
	A      *Player      `json:"a"`
	B      *Player      `json:"b"`
	Deltas []SkillDelta `json:"deltas"`
}

// Leader returns the player with more total experience, or nil on a tie.
func (c *Comparison) Leader() *Player {
	switch {
	case c.A.Overall.XP > c.B.Overall.XP:
		return c.A
	case c.B.Overall.XP > c.A.Overall.XP:
		return c.B
	default:
		return nil
	}
}
