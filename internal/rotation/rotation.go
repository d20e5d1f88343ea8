// Package rotation reproduces the game's daily shop rotations from the
// rune-date. Two independent algorithms are provided: the Travelling
// Merchant's stock and the Rune Goldberg Machine's runes.
package rotation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownSlot     = errors.New("unknown slot")
	ErrUnknownItem     = errors.New("unknown item")
	ErrAmbiguousItem   = errors.New("ambiguous item")
	ErrSearchExhausted = errors.New("search horizon reached")
)

// Variant is one rotation algorithm together with its catalog.
type Variant interface {
	// Name is a short identifier such as "merchant".
	Name() string
	// Slots lists slot names in selection order.
	Slots() []string
	// Catalog returns a copy of every item the variant can pick.
	Catalog() []Item
	// Fixed returns items stocked every day regardless of the draw.
	Fixed() []Item
	// SelectSlot picks the item for one slot on day.
	SelectSlot(day int64, slot string) (Item, error)
}

// Pick is the item chosen for a slot.
type Pick struct {
	Slot string `json:"slot"`
	Item Item   `json:"item"`
}

// Rotation is the full selection of a variant for one day.
type Rotation struct {
	Variant string `json:"variant"`
	Day     int64  `json:"runedate"`
	Picks   []Pick `json:"slots"`
	Fixed   []Item `json:"fixed,omitempty"`
}

// New computes every slot of v for day.
func New(v Variant, day int64) (*Rotation, error) {
	slots := v.Slots()
	r := &Rotation{
		Variant: v.Name(),
		Day:     day,
		Picks:   make([]Pick, 0, len(slots)),
		Fixed:   v.Fixed(),
	}
	for _, slot := range slots {
		item, err := v.SelectSlot(day, slot)
		if err != nil {
			return nil, fmt.Errorf("%s slot %s on day %d: %w", v.Name(), slot, day, err)
		}
		r.Picks = append(r.Picks, Pick{Slot: slot, Item: item})
	}
	return r, nil
}

// At computes the rotation active at instant t.
func At(v Variant, t time.Time) (*Rotation, error) {
	return New(v, Day(t))
}

// Date returns the UTC start of the rotation's day.
func (r *Rotation) Date() time.Time {
	return DateOf(r.Day)
}

// Slot returns the item picked for the named slot.
func (r *Rotation) Slot(name string) (Item, bool) {
	for _, p := range r.Picks {
		if p.Slot == name {
			return p.Item, true
		}
	}
	return Item{}, false
}

// Items returns the picked items in slot order, followed by the fixed stock.
func (r *Rotation) Items() []Item {
	items := make([]Item, 0, len(r.Picks)+len(r.Fixed))
	for _, p := range r.Picks {
		items = append(items, p.Item)
	}
	return append(items, r.Fixed...)
}

// Contains reports whether the item with id is on sale that day.
func (r *Rotation) Contains(id string) bool {
	for _, item := range r.Items() {
		if item.ID == id {
			return true
		}
	}
	return false
}
