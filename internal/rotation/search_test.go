package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const newYear2024 = int64(7978)

func days(rs []*Rotation) []int64 {
	out := make([]int64, len(rs))
	for i, r := range rs {
		out[i] = r.Day
	}
	return out
}

func TestFind(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		item    string
		want    []int64
	}{
		{"merchant slot C", Merchant{}, "taijitu", []int64{7981, 7987, 7996}},
		{"merchant slots A and B", Merchant{}, "silverhawk-down", []int64{7980, 7983, 8013}},
		{"runes", Runes{}, "law", []int64{7983, 7985, 7990}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := Find(tt.variant, newYear2024, tt.item, 3)
			require.NoError(t, err)
			assert.Equal(t, tt.want, days(found))
			for _, r := range found {
				assert.True(t, r.Contains(tt.item))
			}
		})
	}
}

func TestFindStartsOnTheGivenDay(t *testing.T) {
	found, err := Find(Merchant{}, 7980, "silverhawk-down", 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{7980}, days(found))
}

func TestFindReturnsPartialResultsAtTheHorizon(t *testing.T) {
	found, err := Find(Merchant{}, newYear2024, "crystal-triskelion", 500)
	assert.ErrorIs(t, err, ErrSearchExhausted)
	assert.Len(t, found, 72)
	assert.Less(t, found[len(found)-1].Day, newYear2024+SearchHorizon)
}

func TestFindUnknownItemTerminates(t *testing.T) {
	found, err := Find(Merchant{}, newYear2024, "no-such-item", 5)
	assert.ErrorIs(t, err, ErrSearchExhausted)
	assert.Empty(t, found)
}

func TestFindZeroCount(t *testing.T) {
	found, err := Find(Runes{}, newYear2024, "law", 0)
	assert.NoError(t, err)
	assert.Empty(t, found)
}

func TestUpcomingIsLazy(t *testing.T) {
	var got []int64
	for r := range Upcoming(Merchant{}, newYear2024, "silverhawk-down") {
		got = append(got, r.Day)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int64{7980, 7983}, got)
}

func TestUpcomingFixedItemEveryDay(t *testing.T) {
	n := 0
	for range Upcoming(Merchant{}, 0, "uncharted-island-map") {
		n++
	}
	assert.Equal(t, SearchHorizon, n)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		query   string
		want    string
	}{
		{"id", Merchant{}, "taijitu", "taijitu"},
		{"name any case", Merchant{}, "harmonic DUST", "harmonic-dust"},
		{"code", Merchant{}, "27", "crystal-triskelion"},
		{"fragment", Merchant{}, "silverhawk", "silverhawk-down"},
		{"fixed stock", Merchant{}, "island map", "uncharted-island-map"},
		{"rune id", Runes{}, "law", "law"},
		{"rune item code", Runes{}, "9075", "astral"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := Lookup(tt.variant, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, item.ID)
		})
	}
}

func TestLookupErrors(t *testing.T) {
	_, err := Lookup(Merchant{}, "goebie")
	assert.ErrorIs(t, err, ErrAmbiguousItem)

	_, err = Lookup(Merchant{}, "dragon claws")
	assert.ErrorIs(t, err, ErrUnknownItem)

	_, err = Lookup(Runes{}, "  ")
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestByName(t *testing.T) {
	v, err := ByName("runes")
	require.NoError(t, err)
	assert.Equal(t, "runes", v.Name())

	_, err = ByName("bank")
	assert.Error(t, err)
}
