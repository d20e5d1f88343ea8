package rotation

import (
	"fmt"
	"slices"

	"github.com/hunterjsb/runebot/internal/rsrandom"
)

// runeSlot draws with seed multiplier * (day << 32). The draw is shifted
// by offset and wrapped over the whole rune table.
type runeSlot struct {
	name       string
	multiplier int64
	bound      int32
	offset     int
}

var runeSlots = []runeSlot{
	{name: "first", multiplier: 1, bound: 19, offset: 0},
	{name: "second", multiplier: 5, bound: 19, offset: 3},
	{name: "third", multiplier: 11, bound: 19, offset: 7},
}

// Runes is the Rune Goldberg Machine's daily vis wax combination.
type Runes struct{}

func (Runes) Name() string { return "runes" }

func (Runes) Slots() []string {
	names := make([]string, len(runeSlots))
	for i, s := range runeSlots {
		names[i] = s.name
	}
	return names
}

func (Runes) Catalog() []Item {
	return append(runeStock[:0:0], runeStock[:]...)
}

func (Runes) Fixed() []Item { return nil }

// SelectSlot walks the slots in order because every slot must avoid the
// runes already taken by the slots before it.
func (Runes) SelectSlot(day int64, slot string) (Item, error) {
	taken := make([]int, 0, len(runeSlots))
	for _, s := range runeSlots {
		idx, err := s.draw(day)
		if err != nil {
			return Item{}, err
		}
		for slices.Contains(taken, idx) {
			idx = (idx + 1) % len(runeStock)
		}
		if s.name == slot {
			return runeStock[idx], nil
		}
		taken = append(taken, idx)
	}
	return Item{}, fmt.Errorf("runes: %w: %q", ErrUnknownSlot, slot)
}

// draw may overflow int64 for the larger multipliers; the generator only
// keeps the low 48 bits, which wrapping multiplication preserves.
func (s runeSlot) draw(day int64) (int, error) {
	g := rsrandom.New(s.multiplier * (day << 32))
	raw, err := g.NextIntn(s.bound)
	if err != nil {
		return 0, err
	}
	return (int(raw) + s.offset) % len(runeStock), nil
}
