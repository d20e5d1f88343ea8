package rotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want int64
	}{
		{"epoch", Epoch, 0},
		{"one second before the next day", Epoch.Add(24*time.Hour - time.Second), 0},
		{"new year 2024", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 7978},
		{"midday", time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC), 8997},
		{"half a day before epoch truncates toward zero", Epoch.Add(-12 * time.Hour), 0},
		{"a day and a half before epoch", Epoch.Add(-36 * time.Hour), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Day(tt.at))
		})
	}
}

func TestDateOf(t *testing.T) {
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), DateOf(7978))
	assert.Equal(t, Epoch, DateOf(0))
	assert.Equal(t, int64(8997), Day(DateOf(8997)))
}

func TestDatesCenturiesAway(t *testing.T) {
	tests := []struct {
		date string
		day  int64
	}{
		{"2400-01-01", 145309},
		{"9999-12-31", 2921151},
		{"1900-01-01", -37312},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := ParseDate(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.day, Day(d))
			assert.Equal(t, d, DateOf(tt.day))
			assert.Equal(t, tt.date, DateOf(tt.day).Format(time.DateOnly))
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, int64(7978), Day(d))

	_, err = ParseDate("01/01/2024")
	assert.Error(t, err)
}

func TestFloorMod(t *testing.T) {
	assert.Equal(t, int64(2), floorMod(-1, 3))
	assert.Equal(t, int64(0), floorMod(-8, 8))
	assert.Equal(t, int64(3), floorMod(7978, 5))
}

func TestMerchantReferenceDays(t *testing.T) {
	tests := []struct {
		day     int64
		a, b, c string
	}{
		{0, "menaphite-gift-offering-small", "menaphite-gift-offering-small", "dungeoneering-wildcard"},
		{1, "goebie-burial-charm", "goebie-burial-charm", "dnd-token-weekly"},
		{2, "menaphite-gift-offering-small", "menaphite-gift-offering-small", "crystal-triskelion"},
		{7978, "broken-fishing-rod", "horn-of-honour", "message-in-a-bottle"},
		{7980, "livid-plant", "silverhawk-down", "menaphite-gift-offering-large"},
		{8997, "barrel-of-bait", "small-goebie-burial-charm", "crystal-triskelion"},
		{-1, "dnd-token-daily", "slayer-vip-coupon", "crystal-triskelion"},
	}

	for _, tt := range tests {
		r, err := New(Merchant{}, tt.day)
		require.NoError(t, err)

		for slot, want := range map[string]string{"A": tt.a, "B": tt.b, "C": tt.c} {
			item, ok := r.Slot(slot)
			require.True(t, ok)
			assert.Equal(t, want, item.ID, "day %d slot %s", tt.day, slot)
		}
		assert.True(t, r.Contains("uncharted-island-map"), "island map is always stocked")
	}
}

func TestMerchantSlotsStayInTheirPool(t *testing.T) {
	m := Merchant{}
	for _, slot := range m.Slots() {
		pool, err := m.SlotCatalog(slot)
		require.NoError(t, err)
		for day := int64(7900); day < 8100; day++ {
			item, err := m.SelectSlot(day, slot)
			require.NoError(t, err)
			assert.Contains(t, pool, item)
		}
	}
}

func TestMerchantPools(t *testing.T) {
	m := Merchant{}
	sizes := map[string]int{"A": 19, "B": 19, "C": 13}
	for slot, want := range sizes {
		pool, err := m.SlotCatalog(slot)
		require.NoError(t, err)
		assert.Len(t, pool, want, "slot %s", slot)
	}

	a, _ := m.SlotCatalog("A")
	b, _ := m.SlotCatalog("B")
	assert.Equal(t, a, b)
	assert.Len(t, m.Catalog(), 32)
}

func TestMerchantSharedPoolCanRepeat(t *testing.T) {
	r, err := New(Merchant{}, 7984)
	require.NoError(t, err)

	a, _ := r.Slot("A")
	b, _ := r.Slot("B")
	assert.Equal(t, a, b)
	assert.Len(t, r.Items(), 4)
}

func TestMerchantUnknownSlot(t *testing.T) {
	_, err := Merchant{}.SelectSlot(0, "D")
	assert.ErrorIs(t, err, ErrUnknownSlot)

	_, err = Merchant{}.SlotCatalog("")
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestRunesReferenceDays(t *testing.T) {
	tests := []struct {
		name                 string
		day                  int64
		first, second, third string
	}{
		{"epoch", 0, "mist", "steam", "chaos"},
		{"third collides with second", 7978, "water", "fire", "dust"},
		{"plain day", 8997, "earth", "body", "astral"},
		{"second collides with first", 7992, "blood", "soul", "dust"},
		{"collision wraps past the end", 8009, "water", "soul", "air"},
		{"third collides with first", 8010, "dust", "water", "lava"},
		{"before epoch", -1, "body", "blood", "dust"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(Runes{}, tt.day)
			require.NoError(t, err)
			require.Len(t, r.Picks, 3)
			assert.Equal(t, tt.first, r.Picks[0].Item.ID)
			assert.Equal(t, tt.second, r.Picks[1].Item.ID)
			assert.Equal(t, tt.third, r.Picks[2].Item.ID)
		})
	}
}

func TestRunesNeverRepeatWithinADay(t *testing.T) {
	for day := int64(-100); day < 10000; day++ {
		r, err := New(Runes{}, day)
		require.NoError(t, err)

		seen := make(map[string]bool)
		for _, p := range r.Picks {
			require.False(t, seen[p.Item.ID], "day %d repeats %s", day, p.Item.ID)
			seen[p.Item.ID] = true
		}
	}
}

func TestRunesUnknownSlot(t *testing.T) {
	_, err := Runes{}.SelectSlot(8997, "fourth")
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestRotationIsIdempotent(t *testing.T) {
	for _, v := range Variants() {
		for day := int64(7970); day < 7990; day++ {
			a, err := New(v, day)
			require.NoError(t, err)
			b, err := New(v, day)
			require.NoError(t, err)
			assert.Equal(t, a, b)
		}
	}
}

func TestAt(t *testing.T) {
	r, err := At(Merchant{}, time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(7978), r.Day)
	assert.Equal(t, "merchant", r.Variant)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.Date())
	assert.Len(t, r.Items(), 4)
}

func TestCatalogIsACopy(t *testing.T) {
	c := Merchant{}.Catalog()
	c[0].Name = "changed"
	assert.Equal(t, "Gift for the Reaper", Merchant{}.Catalog()[0].Name)

	runes := Runes{}.Catalog()
	require.Len(t, runes, 20)
	runes[0].ID = "changed"
	assert.Equal(t, "air", Runes{}.Catalog()[0].ID)
}

func TestQuantityString(t *testing.T) {
	assert.Equal(t, "1", Quantity{Min: 1, Max: 1}.String())
	assert.Equal(t, "500-1000", Quantity{Min: 500, Max: 1000}.String())
}
