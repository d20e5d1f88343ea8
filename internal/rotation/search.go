package rotation

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// SearchHorizon is the number of days a forward search scans.
const SearchHorizon = 1000

// Upcoming yields, in day order, the rotations from day from onward that
// stock itemID. It stops after SearchHorizon days. A rotation that fails to
// compute ends the sequence.
func Upcoming(v Variant, from int64, itemID string) iter.Seq[*Rotation] {
	return func(yield func(*Rotation) bool) {
		for day := from; day < from+SearchHorizon; day++ {
			r, err := New(v, day)
			if err != nil {
				return
			}
			if !r.Contains(itemID) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// Find collects the next count rotations that stock itemID. When the
// horizon is reached first it returns what it found and ErrSearchExhausted.
func Find(v Variant, from int64, itemID string, count int) ([]*Rotation, error) {
	if count <= 0 {
		return nil, nil
	}

	found := make([]*Rotation, 0, count)
	for r := range Upcoming(v, from, itemID) {
		found = append(found, r)
		if len(found) == count {
			return found, nil
		}
	}
	return found, fmt.Errorf("%s: %d of %d for %q within %d days: %w",
		v.Name(), len(found), count, itemID, SearchHorizon, ErrSearchExhausted)
}

// Lookup resolves a user query to a catalog item. It accepts an item ID, a
// numeric code, a full name in any case, or a fragment of exactly one name.
func Lookup(v Variant, query string) (Item, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Item{}, fmt.Errorf("%w: empty query", ErrUnknownItem)
	}
	items := append(v.Catalog(), v.Fixed()...)

	code, codeErr := strconv.Atoi(q)
	for _, item := range items {
		if item.ID == strings.ToLower(q) || strings.EqualFold(item.Name, q) || (codeErr == nil && item.Code == code) {
			return item, nil
		}
	}

	var matches []Item
	lower := strings.ToLower(q)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), lower) || strings.Contains(item.ID, lower) {
			matches = append(matches, item)
		}
	}
	switch len(matches) {
	case 0:
		return Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, query)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		return Item{}, fmt.Errorf("%w: %q matches %s", ErrAmbiguousItem, query, strings.Join(names, ", "))
	}
}

// Variants lists every rotation this package knows.
func Variants() []Variant {
	return []Variant{Merchant{}, Runes{}}
}

// ByName returns the variant called name.
func ByName(name string) (Variant, error) {
	for _, v := range Variants() {
		if v.Name() == name {
			return v, nil
		}
	}
	return nil, fmt.Errorf("unknown rotation %q", name)
}
