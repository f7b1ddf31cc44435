// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"sort"
	"time"

	"github.com/kestrel-dt/rrule-go/calendar"
)

// civilDate is a bare calendar date with no time-of-day or location,
// used while resolving BYMONTHDAY/SKIP candidates that may land in a
// month other than the one being generated (RFC 7529 SKIP=FORWARD).
type civilDate struct {
	year  int
	month time.Month
	day   int
}

func (c civilDate) less(o civilDate) bool {
	if c.year != o.year {
		return c.year < o.year
	}
	if c.month != o.month {
		return c.month < o.month
	}
	return c.day < o.day
}

// monthDayDates resolves every signed BYMONTHDAY value against
// (year, month) applying RFC 7529 SKIP semantics (component 10) to
// values with no corresponding day: SkipOmit drops them, SkipBackward
// substitutes the month's last day, SkipForward substitutes the first
// day of the following month. A negative value with no corresponding
// day (e.g. -31 in a 30-day month) has no RFC 7529 substitution and is
// always omitted, regardless of skip.
//
// The result is deduplicated and sorted: BACKWARD substituting both 30
// and 31 in a 28-day February must collapse to one entry.
func monthDayDates(year int, month time.Month, values []int, skip Skip) []civilDate {
	type key struct {
		y int
		m time.Month
		d int
	}
	seen := make(map[key]bool)
	var out []civilDate
	add := func(y int, mo time.Month, d int) {
		k := key{y, mo, d}
		if !seen[k] {
			seen[k] = true
			out = append(out, civilDate{y, mo, d})
		}
	}

	for _, n := range values {
		if day, ok := calendar.MonthDayFromOrdinal(year, month, n); ok {
			add(year, month, day)
			continue
		}
		if n <= 0 {
			continue
		}
		switch skip {
		case SkipBackward:
			add(year, month, calendar.DaysInMonth(year, month))
		case SkipForward:
			ny, nmo := year, month+1
			if nmo > time.December {
				nmo = time.January
				ny++
			}
			add(ny, nmo, 1)
		case SkipOmit:
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })
	return out
}
