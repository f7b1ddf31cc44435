// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"sort"
	"time"

	"github.com/kestrel-dt/rrule-go/calendar"
)

// containsInt reports whether v is present in list.
func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// timeOfDay is an (hour, minute, second) triple used when exploding a
// day's candidates across BYHOUR/BYMINUTE/BYSECOND.
type timeOfDay struct {
	hour, minute, second int
}

func (a timeOfDay) less(b timeOfDay) bool {
	if a.hour != b.hour {
		return a.hour < b.hour
	}
	if a.minute != b.minute {
		return a.minute < b.minute
	}
	return a.second < b.second
}

// expandTimeOfDay builds the sorted cross-product of BYHOUR x BYMINUTE x
// BYSECOND, falling back to the anchor's own clock fields for any axis
// that has no BYxxx rule part (RFC 5545 §3.3.10's "the BYHOUR, BYMINUTE
// and BYSECOND rule parts MUST default to the DTSTART time" requirement,
// applied here per-anchor instead of per-DTSTART so it also covers
// generators that carry a different clock than the original DTSTART).
func expandTimeOfDay(r *Rule, anchorHour, anchorMinute, anchorSecond int) []timeOfDay {
	hours := r.ByHour
	if len(hours) == 0 {
		hours = []int{anchorHour}
	}
	minutes := r.ByMinute
	if len(minutes) == 0 {
		minutes = []int{anchorMinute}
	}
	seconds := r.BySecond
	if len(seconds) == 0 {
		seconds = []int{anchorSecond}
	}

	out := make([]timeOfDay, 0, len(hours)*len(minutes)*len(seconds))
	for _, h := range hours {
		for _, mi := range minutes {
			for _, s := range seconds {
				out = append(out, timeOfDay{h, mi, s})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })
	return out
}

// matchesWeekdayOnly reports whether wd satisfies the rule's BYDAY list
// when ordinals are not applicable (DAILY, WEEKLY without month/year
// context, and the sub-day frequencies): a bare weekday match is enough
// regardless of any ordinal that may be present.
func matchesWeekdayOnly(r *Rule, wd time.Weekday) bool {
	for _, d := range r.ByDay {
		if d.Weekday == wd {
			return true
		}
	}
	return false
}

// matchesMonthDay reports whether day (1-based, in month/year) satisfies
// any of the rule's signed BYMONTHDAY values, without SKIP substitution
// — used by generators that only need a yes/no test against a day that
// already exists (the DAILY and sub-day filters).
func matchesMonthDay(year int, month time.Month, day int, byMonthDay []int) bool {
	last := calendar.DaysInMonth(year, month)
	for _, n := range byMonthDay {
		if n > 0 && n == day {
			return true
		}
		if n < 0 && last+n+1 == day {
			return true
		}
	}
	return false
}

// dedupTimes removes duplicate instants from a sorted slice in place,
// preserving order.
func dedupTimes(times []time.Time) []time.Time {
	if len(times) < 2 {
		return times
	}
	out := times[:1]
	for _, t := range times[1:] {
		if !t.Equal(out[len(out)-1]) {
			out = append(out, t)
		}
	}
	return out
}

// sortTimes sorts a slice of instants ascending, returning a new slice.
func sortTimes(times []time.Time) []time.Time {
	out := append([]time.Time(nil), times...)
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
