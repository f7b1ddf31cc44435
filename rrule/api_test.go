package rrule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllRespectsTenYearWindow(t *testing.T) {
	r, err := Parse("FREQ=YEARLY")
	require.NoError(t, err)
	dtstart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	occs, err := All(r, dtstart, time.UTC)
	require.NoError(t, err)
	// dtstart plus ten more anniversaries land within [dtstart, dtstart+10y].
	assert.LessOrEqual(t, len(occs), 11)
	assert.GreaterOrEqual(t, len(occs), 9)
}

func TestBetweenMatchesAllTruncatedToWindow(t *testing.T) {
	r, err := Parse("FREQ=DAILY;COUNT=30")
	require.NoError(t, err)
	dtstart := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	all, err := All(r, dtstart, time.UTC)
	require.NoError(t, err)

	start := dtstart.AddDate(0, 0, 5)
	end := dtstart.AddDate(0, 0, 15)
	between, err := Between(r, dtstart, start, end, time.UTC)
	require.NoError(t, err)

	var want []time.Time
	for _, c := range all {
		if !c.Before(start) && !c.After(end) {
			want = append(want, c)
		}
	}
	requireEqualTimes(t, want, between)
}

func TestAfterReturnsFirstNStrictlyGreaterThanPivot(t *testing.T) {
	r, err := Parse("FREQ=DAILY;COUNT=10")
	require.NoError(t, err)
	dtstart := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	pivot := dtstart.AddDate(0, 0, 3)
	got, err := After(r, dtstart, pivot, 2, time.UTC)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(dtstart.AddDate(0, 0, 4)))
	assert.True(t, got[1].Equal(dtstart.AddDate(0, 0, 5)))
}

func TestBeforeReturnsLastNUpToPivot(t *testing.T) {
	r, err := Parse("FREQ=DAILY;COUNT=10")
	require.NoError(t, err)
	dtstart := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	pivot := dtstart.AddDate(0, 0, 5)
	got, err := Before(r, dtstart, pivot, 2, time.UTC)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(dtstart.AddDate(0, 0, 3)))
	assert.True(t, got[1].Equal(dtstart.AddDate(0, 0, 4)))
}

func TestCountMatchesLenOfAll(t *testing.T) {
	r, err := Parse("FREQ=DAILY;COUNT=7")
	require.NoError(t, err)
	dtstart := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	n, err := Count(r, dtstart, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestNextAndMostRecent(t *testing.T) {
	r, err := Parse("FREQ=DAILY;COUNT=10")
	require.NoError(t, err)
	dtstart := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	now := dtstart.AddDate(0, 0, 3).Add(time.Hour)

	next, ok, err := Next(r, dtstart, now, time.UTC)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, next.Equal(dtstart.AddDate(0, 0, 4)))

	recent, ok, err := MostRecent(r, dtstart, now, time.UTC)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, recent.Equal(dtstart.AddDate(0, 0, 3)))
}

func TestOverlapsNilRuleIsSingleEvent(t *testing.T) {
	dtstart := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	dtend := dtstart.Add(time.Hour)

	ok, err := Overlaps(dtstart, dtend, nil, dtstart.Add(30*time.Minute), dtstart.Add(2*time.Hour), time.UTC)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Overlaps(dtstart, dtend, nil, dtstart.Add(2*time.Hour), dtstart.Add(3*time.Hour), time.UTC)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOverlapsWithRecurringRule(t *testing.T) {
	r, err := Parse("FREQ=DAILY;COUNT=5")
	require.NoError(t, err)
	dtstart := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	dtend := dtstart.Add(30 * time.Minute)

	ok, err := Overlaps(dtstart, dtend, r, dtstart.AddDate(0, 0, 2), dtstart.AddDate(0, 0, 2).Add(time.Hour), time.UTC)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Overlaps(dtstart, dtend, r, dtstart.AddDate(0, 0, 100), dtstart.AddDate(0, 0, 101), time.UTC)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolveZonePriority(t *testing.T) {
	r := &Rule{Freq: Daily, Interval: 1, Wkst: MO, Skip: SkipOmit, TZID: "America/New_York"}

	explicit, err := resolveZone(r, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, explicit)

	fromRule, err := resolveZone(r, nil)
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", fromRule.String())

	r2 := &Rule{Freq: Daily, Interval: 1, Wkst: MO, Skip: SkipOmit}
	fallback, err := resolveZone(r2, nil)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, fallback)
}
