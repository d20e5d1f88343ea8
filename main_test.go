package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayFlag(t *testing.T) {
	now := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)

	day, err := dayFlag("", now)
	require.NoError(t, err)
	assert.Equal(t, int64(7978), day)

	day, err = dayFlag("2026-10-16", now)
	require.NoError(t, err)
	assert.Equal(t, int64(8997), day)

	_, err = dayFlag("16/10/2026", now)
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}

func TestMerchantCmd(t *testing.T) {
	var buf bytes.Buffer
	g := &Globals{Out: &buf}

	require.NoError(t, (&MerchantCmd{Date: "2024-01-01", Days: 2}).Run(g))
	out := buf.String()

	assert.Contains(t, out, "rune-date 7978")
	assert.Contains(t, out, "rune-date 7979")
	assert.Contains(t, out, "Horn of honour")
	assert.Equal(t, 2, strings.Count(out, "Travelling Merchant"))
}

func mockGlobals(t *testing.T, out *bytes.Buffer, now time.Time) *Globals {
	t.Helper()
	clock := quartz.NewMock(t)
	clock.Set(now)
	return &Globals{Out: out, Clock: clock}
}

func TestCommandsDefaultToTheClocksDay(t *testing.T) {
	now := time.Date(2024, 1, 1, 18, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, (&MerchantCmd{Days: 1}).Run(mockGlobals(t, &buf, now)))
	assert.Contains(t, buf.String(), "2024-01-01 (rune-date 7978)")
	assert.Contains(t, buf.String(), "Message in a bottle")

	buf.Reset()
	require.NoError(t, (&SearchCmd{Item: "taijitu", Count: 1}).Run(mockGlobals(t, &buf, now)))
	assert.Contains(t, buf.String(), "2024-01-04")
	assert.Contains(t, buf.String(), "in 3 days")
}

func TestMerchantCmdDaysRange(t *testing.T) {
	g := &Globals{Out: &bytes.Buffer{}}
	assert.Error(t, (&MerchantCmd{Days: 0}).Run(g))
	assert.Error(t, (&MerchantCmd{Days: 32}).Run(g))
}

func TestVisWaxCmd(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&VisWaxCmd{Date: "2024-01-01", Days: 1}).Run(&Globals{Out: &buf}))

	out := buf.String()
	assert.Contains(t, out, "Rune Goldberg Machine")
	assert.Contains(t, out, "Water rune")
}

func TestSearchCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := &SearchCmd{Item: "taijitu", Count: 3, From: "2024-01-01"}
	require.NoError(t, cmd.Run(&Globals{Out: &buf}))

	out := buf.String()
	assert.Contains(t, out, "2024-01-04")
	assert.Contains(t, out, "7996")
	assert.NotContains(t, out, "only")
}

func TestSearchCmdExhausted(t *testing.T) {
	var buf bytes.Buffer
	cmd := &SearchCmd{Item: "crystal-triskelion", Count: 500, From: "2024-01-01"}
	require.NoError(t, cmd.Run(&Globals{Out: &buf}))
	assert.Contains(t, buf.String(), "only 72 of 500 found within 1000 days")
}

func TestSearchCmdErrors(t *testing.T) {
	g := &Globals{Out: &bytes.Buffer{}}
	assert.Error(t, (&SearchCmd{Item: "taijitu", Count: 0}).Run(g))
	assert.Error(t, (&SearchCmd{Item: "dragon claws", Count: 1}).Run(g))
	assert.Error(t, (&SearchCmd{Item: "law", Count: 1, From: "later"}).Run(g))
}
