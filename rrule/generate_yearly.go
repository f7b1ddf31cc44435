// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"time"

	"github.com/kestrel-dt/rrule-go/calendar"
)

// filterByWeekNo drops every candidate whose week number (per the rule's
// WKST) is not among r.ByWeekNo. Used as the YEARLY set's post-filter in
// the BYMONTH and BYYEARDAY primary-generator cases.
func filterByWeekNo(r *Rule, candidates []time.Time) []time.Time {
	if len(r.ByWeekNo) == 0 {
		return candidates
	}
	out := candidates[:0:0]
	for _, c := range candidates {
		wn := calendar.WeekNumber(c, r.Wkst)
		total := calendar.WeeksInYear(c.Year(), r.Wkst)
		for _, n := range r.ByWeekNo {
			want := n
			if want < 0 {
				want = total + want + 1
			}
			if want == wn {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// generateYearly builds the YEARLY period set for the year containing
// anchor (component 5, YEARLY case), choosing among five mutually
// exclusive primary generators in priority order.
func generateYearly(r *Rule, anchor time.Time) []time.Time {
	year := anchor.Year()

	switch {
	case len(r.ByMonth) > 0:
		// Case 1: BYMONTH is the primary generator. Each listed month is
		// expanded through the MONTHLY generator with its own BYSETPOS
		// suppressed; the union is then narrowed by the YEARLY-level
		// BYSETPOS, and BYWEEKNO (if set) filters what remains.
		var union []time.Time
		for _, m := range r.ByMonth {
			day := anchor.Day()
			if last := calendar.DaysInMonth(year, time.Month(m)); day > last {
				if len(r.ByDay) == 0 && len(r.ByMonthDay) == 0 {
					// The anchor's own day-of-month is the only candidate
					// and month m does not have it.
					continue
				}
				// The day is not used as a candidate; keep the anchor in m.
				day = last
			}
			monthAnchor := time.Date(year, time.Month(m), day, anchor.Hour(), anchor.Minute(), anchor.Second(), anchor.Nanosecond(), anchor.Location())
			union = append(union, generateMonthly(r, monthAnchor, true)...)
		}
		union = filterByWeekNo(r, dedupTimes(sortTimes(union)))
		return applyBySetPos(union, r.BySetPos)

	case len(r.ByYearDay) > 0:
		// Case 2: enumerate the named year-days directly.
		var out []time.Time
		h, mi, s := anchor.Clock()
		for _, n := range r.ByYearDay {
			d := calendar.DateFromYearDay(year, n)
			if d.IsZero() {
				continue
			}
			out = append(out, time.Date(d.Year(), d.Month(), d.Day(), h, mi, s, anchor.Nanosecond(), anchor.Location()))
		}
		out = filterByWeekNo(r, dedupTimes(sortTimes(out)))
		return applyBySetPos(out, r.BySetPos)

	case len(r.ByWeekNo) > 0:
		// Case 3: for each listed week, the first wkst-day of that week;
		// if BYDAY is set, emit the matching weekday(s) within the week
		// instead of just its first day. Weeks that drift into a
		// neighbouring year are dropped.
		h, mi, s := anchor.Clock()
		jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, anchor.Location())
		w1 := calendar.WeekStart(jan1, r.Wkst)
		if w1.Before(jan1) {
			w1 = w1.AddDate(0, 0, 7)
		}

		var out []time.Time
		total := calendar.WeeksInYear(year, r.Wkst)
		for _, n := range r.ByWeekNo {
			want := n
			if want < 0 {
				want = total + want + 1
			}
			weekStart := w1.AddDate(0, 0, (want-1)*7)
			if len(r.ByDay) == 0 {
				if weekStart.Year() == year {
					out = append(out, time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), h, mi, s, anchor.Nanosecond(), anchor.Location()))
				}
				continue
			}
			for offset := 0; offset < 7; offset++ {
				day := weekStart.AddDate(0, 0, offset)
				if day.Year() != year {
					continue
				}
				if matchesWeekdayOnly(r, day.Weekday()) {
					out = append(out, time.Date(day.Year(), day.Month(), day.Day(), h, mi, s, anchor.Nanosecond(), anchor.Location()))
				}
			}
		}
		return applyBySetPos(dedupTimes(sortTimes(out)), r.BySetPos)

	case len(r.ByDay) > 0:
		// Case 4: BYDAY alone, with no year-level generator: the anchor
		// itself, kept iff its weekday matches.
		if matchesWeekdayOnly(r, anchor.Weekday()) {
			return []time.Time{anchor}
		}
		return nil

	default:
		// Case 5: a plain anniversary of dtstart.
		return []time.Time{anchor}
	}
}
