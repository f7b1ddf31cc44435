// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"time"

	"github.com/kestrel-dt/rrule-go/calendar"
)

// generateWeekly builds the WEEKLY period set for the WKST-anchored week
// containing anchor (component 5, WEEKLY case): every day of that week
// matching BYMONTH and weekday-only BYDAY (BYMONTHDAY is rejected for
// WEEKLY at validation time), defaulting to the anchor's own weekday
// when BYDAY is absent, then exploded across BYHOUR/BYMINUTE/BYSECOND
// and narrowed with BYSETPOS over the whole week's candidate set.
func generateWeekly(r *Rule, anchor time.Time) []time.Time {
	weekStart := calendar.WeekStart(anchor, r.Wkst)
	h, mi, s := anchor.Clock()

	var days []time.Time
	for offset := 0; offset < 7; offset++ {
		day := weekStart.AddDate(0, 0, offset)
		y, mo, d := day.Date()

		if len(r.ByMonth) > 0 && !containsInt(r.ByMonth, int(mo)) {
			continue
		}
		if len(r.ByDay) > 0 {
			if !matchesWeekdayOnly(r, day.Weekday()) {
				continue
			}
		} else if day.Weekday() != anchor.Weekday() {
			continue
		}

		days = append(days, time.Date(y, mo, d, h, mi, s, anchor.Nanosecond(), anchor.Location()))
	}

	if len(days) == 0 {
		return nil
	}

	if len(r.ByHour) == 0 && len(r.ByMinute) == 0 && len(r.BySecond) == 0 {
		return applyBySetPos(days, r.BySetPos)
	}

	out := make([]time.Time, 0, len(days)*len(r.ByHour)+len(days))
	for _, day := range days {
		y, mo, d := day.Date()
		dh, dmi, ds := day.Clock()
		for _, tod := range expandTimeOfDay(r, dh, dmi, ds) {
			out = append(out, time.Date(y, mo, d, tod.hour, tod.minute, tod.second, day.Nanosecond(), day.Location()))
		}
	}
	return applyBySetPos(out, r.BySetPos)
}
