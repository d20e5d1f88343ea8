package rotation

import (
	"fmt"

	"github.com/hunterjsb/runebot/internal/rsrandom"
)

// merchantSlot draws NextIntn(len(pool)) with seed (day << 32) + (day mod k).
// Slots A and B share a pool, so both can land on the same item.
type merchantSlot struct {
	name string
	k    int64
	pool []Item
}

var merchantSlots = []merchantSlot{
	{name: "A", k: 3, pool: commonStock[:]},
	{name: "B", k: 8, pool: commonStock[:]},
	{name: "C", k: 5, pool: rareStock[:]},
}

// Merchant is the Travelling Merchant's Shop.
type Merchant struct{}

func (Merchant) Name() string { return "merchant" }

func (Merchant) Slots() []string {
	names := make([]string, len(merchantSlots))
	for i, s := range merchantSlots {
		names[i] = s.name
	}
	return names
}

func (Merchant) Catalog() []Item {
	items := make([]Item, 0, len(commonStock)+len(rareStock))
	items = append(items, commonStock[:]...)
	return append(items, rareStock[:]...)
}

func (Merchant) Fixed() []Item {
	return []Item{islandMap}
}

// SlotCatalog returns the pool a single slot draws from.
func (Merchant) SlotCatalog(slot string) ([]Item, error) {
	s, err := findMerchantSlot(slot)
	if err != nil {
		return nil, err
	}
	return append([]Item(nil), s.pool...), nil
}

func (Merchant) SelectSlot(day int64, slot string) (Item, error) {
	s, err := findMerchantSlot(slot)
	if err != nil {
		return Item{}, err
	}

	g := rsrandom.New(day<<32 + floorMod(day, s.k))
	idx, err := g.NextIntn(int32(len(s.pool)))
	if err != nil {
		return Item{}, err
	}
	return s.pool[idx], nil
}

func findMerchantSlot(name string) (merchantSlot, error) {
	for _, s := range merchantSlots {
		if s.name == name {
			return s, nil
		}
	}
	return merchantSlot{}, fmt.Errorf("merchant: %w: %q", ErrUnknownSlot, name)
}
