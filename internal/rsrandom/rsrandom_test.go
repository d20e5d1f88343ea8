package rsrandom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Vectors below come from java.util.Random.
func TestNextIntMatchesJava(t *testing.T) {
	tests := []struct {
		seed int64
		want int32
	}{
		{0, -1155484576},
		{42, -1170105035},
		{-1, 1155099827},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, New(tt.seed).NextInt(), "seed %d", tt.seed)
	}
}

func TestNextIntnMatchesJava(t *testing.T) {
	tests := []struct {
		seed  int64
		bound int32
		want  int32
	}{
		{0, 10, 0},
		{42, 10, 0},
		{123456789, 100, 65},
	}

	for _, tt := range tests {
		got, err := New(tt.seed).NextIntn(tt.bound)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "seed %d bound %d", tt.seed, tt.bound)
	}
}

func TestNextBitWidths(t *testing.T) {
	g := New(0)
	assert.Equal(t, int32(1), g.Next(1))
	assert.Equal(t, int32(212), g.Next(8))
	assert.Equal(t, int32(15763), g.Next(16))
	assert.Equal(t, int32(-1690734402), g.Next(32))
}

func TestNextPanicsOnBadWidth(t *testing.T) {
	g := New(1)
	assert.Panics(t, func() { g.Next(0) })
	assert.Panics(t, func() { g.Next(33) })
}

func TestPowerOfTwoBound(t *testing.T) {
	g := New(7)
	var got []int32
	for i := 0; i < 5; i++ {
		v, err := g.NextIntn(16)
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int32{11, 10, 11, 0, 5}, got)

	// The fast path keeps the top four of the 31 drawn bits.
	raw := New(7)
	want := []int32{1569164236, 1371249164, 1608829485, 20678044, 747989380}
	for i, w := range want {
		bits := raw.Next(31)
		require.Equal(t, w, bits)
		assert.Equal(t, bits>>27, got[i])
	}
}

func TestDeterminism(t *testing.T) {
	for seed := int64(-50); seed < 50; seed++ {
		a, b := New(seed), New(seed)
		for _, bits := range []int{1, 7, 16, 31, 32, 31, 5} {
			require.Equal(t, a.Next(bits), b.Next(bits), "seed %d", seed)
		}
		assert.Equal(t, a.seed, b.seed)
	}
}

func TestSeedSensitivity(t *testing.T) {
	seen := make(map[int32]struct{})
	const n = 10000
	for seed := int64(0); seed < n; seed++ {
		seen[New(seed).NextInt()] = struct{}{}
	}
	assert.Greater(t, len(seen), n-10)
}

func TestNextIntnRespectsBound(t *testing.T) {
	bounds := []int32{1, 2, 3, 7, 9, 10, 11, 16, 19, 20, 1000, 1 << 30, 1<<30 + 1, 2147483647}
	for _, bound := range bounds {
		for seed := int64(0); seed < 200; seed++ {
			g := New(seed<<32 + seed)
			v, err := g.NextIntn(bound)
			require.NoError(t, err)
			require.GreaterOrEqual(t, v, int32(0))
			require.Less(t, v, bound)
		}
	}
}

func TestNextIntnInvalidBound(t *testing.T) {
	for _, bound := range []int32{0, -1, -2147483648} {
		_, err := New(1).NextIntn(bound)
		assert.ErrorIs(t, err, ErrInvalidBound)
	}
}

func TestNewScramblesInto48Bits(t *testing.T) {
	g := New(-1)
	assert.Equal(t, int64(0xFFFFFFFFFFFF)^0x5DEECE66D, g.seed)
	assert.GreaterOrEqual(t, g.seed, int64(0))
}

func BenchmarkNextIntn(b *testing.B) {
	g := New(8997 << 32)
	for i := 0; i < b.N; i++ {
		_, _ = g.NextIntn(19)
	}
}
