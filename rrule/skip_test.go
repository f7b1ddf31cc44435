package rrule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthDayDatesInRangeValuesPassThrough(t *testing.T) {
	got := monthDayDates(2025, time.January, []int{1, 15, -1}, SkipOmit)
	assert.Equal(t, []civilDate{{2025, time.January, 1}, {2025, time.January, 15}, {2025, time.January, 31}}, got)
}

func TestMonthDayDatesSkipOmit(t *testing.T) {
	got := monthDayDates(2025, time.February, []int{31}, SkipOmit)
	assert.Empty(t, got)
}

func TestMonthDayDatesSkipBackwardDeduplicates(t *testing.T) {
	got := monthDayDates(2025, time.February, []int{30, 31}, SkipBackward)
	assert.Equal(t, []civilDate{{2025, time.February, 28}}, got)
}

func TestMonthDayDatesSkipForwardRollsIntoNextMonth(t *testing.T) {
	got := monthDayDates(2025, time.April, []int{31}, SkipForward)
	assert.Equal(t, []civilDate{{2025, time.May, 1}}, got)
}

func TestMonthDayDatesSkipForwardAcrossYearBoundary(t *testing.T) {
	got := monthDayDates(2025, time.December, []int{32}, SkipForward)
	// 32 has no corresponding day in any month length and is positive,
	// so SKIP substitution still applies: the following month of
	// December is January of the next year.
	assert.Equal(t, []civilDate{{2026, time.January, 1}}, got)
}

func TestMonthDayDatesNegativeOutOfRangeNeverSubstitutes(t *testing.T) {
	got := monthDayDates(2025, time.April, []int{-31}, SkipBackward)
	assert.Empty(t, got)
}
