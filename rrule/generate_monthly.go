// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"time"

	"github.com/kestrel-dt/rrule-go/calendar"
)

// monthByDayDates resolves a rule's BYDAY list against a single
// (year, month): a bare weekday (no ordinal) matches every occurrence of
// that weekday in the month; an ordinal n selects the n-th occurrence
// counting from the start of the month (n > 0) or from the end
// (n < 0, -1 being the last).
func monthByDayDates(year int, month time.Month, byDay []ByDay) []civilDate {
	last := calendar.DaysInMonth(year, month)

	var out []civilDate
	for _, spec := range byDay {
		var matches []int
		for day := 1; day <= last; day++ {
			if time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday() == spec.Weekday {
				matches = append(matches, day)
			}
		}
		if spec.Ordinal == 0 {
			for _, d := range matches {
				out = append(out, civilDate{year, month, d})
			}
			continue
		}
		idx := spec.Ordinal - 1
		if spec.Ordinal < 0 {
			idx = len(matches) + spec.Ordinal
		}
		if idx >= 0 && idx < len(matches) {
			out = append(out, civilDate{year, month, matches[idx]})
		}
	}
	return out
}

// intersectCivilDates returns the entries of a that also appear in b.
func intersectCivilDates(a, b []civilDate) []civilDate {
	present := make(map[civilDate]bool, len(b))
	for _, d := range b {
		present[d] = true
	}
	var out []civilDate
	for _, d := range a {
		if present[d] {
			out = append(out, d)
		}
	}
	return out
}

// monthlyDateSet resolves the MONTHLY period's candidate calendar dates
// for (year, month), before any time-of-day expansion or BYSETPOS
// filtering: BYMONTHDAY (with SKIP substitution) and weekday/ordinal
// BYDAY combine by intersection when both are present; either alone
// determines the set on its own; with neither, the anchor's own
// day-of-month is the sole candidate.
func monthlyDateSet(r *Rule, year int, month time.Month, anchorDay int) []civilDate {
	haveMonthDay := len(r.ByMonthDay) > 0
	haveByDay := len(r.ByDay) > 0

	switch {
	case haveMonthDay && haveByDay:
		return intersectCivilDates(monthDayDates(year, month, r.ByMonthDay, r.Skip), monthByDayDates(year, month, r.ByDay))
	case haveMonthDay:
		return monthDayDates(year, month, r.ByMonthDay, r.Skip)
	case haveByDay:
		return monthByDayDates(year, month, r.ByDay)
	default:
		return []civilDate{{year, month, anchorDay}}
	}
}

// generateMonthly builds the MONTHLY period set for the month containing
// anchor (component 5, MONTHLY case). suppressBySetPos is set by the
// YEARLY generator's BYMONTH delegation (case 1 of the YEARLY priority
// order), which applies BYSETPOS itself across the combined year-wide
// set instead of per month.
func generateMonthly(r *Rule, anchor time.Time, suppressBySetPos bool) []time.Time {
	y, mo, d := anchor.Date()

	if len(r.ByMonth) > 0 && !containsInt(r.ByMonth, int(mo)) {
		return nil
	}

	dates := monthlyDateSet(r, y, mo, d)
	if len(dates) == 0 {
		return nil
	}

	h, mi, s := anchor.Clock()
	out := make([]time.Time, 0, len(dates))
	for _, cd := range dates {
		for _, tod := range expandTimeOfDay(r, h, mi, s) {
			out = append(out, time.Date(cd.year, cd.month, cd.day, tod.hour, tod.minute, tod.second, anchor.Nanosecond(), anchor.Location()))
		}
	}

	if suppressBySetPos {
		return sortTimes(out)
	}
	return applyBySetPos(out, r.BySetPos)
}
