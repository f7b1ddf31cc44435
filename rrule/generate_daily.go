// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import "time"

// generateDaily builds the DAILY period set for a single anchor date
// (component 5, DAILY case): the anchor's own date, filtered against
// BYMONTH, BYMONTHDAY and weekday-only BYDAY, then exploded across any
// BYHOUR/BYMINUTE/BYSECOND axis and narrowed with BYSETPOS.
func generateDaily(r *Rule, anchor time.Time) []time.Time {
	y, mo, d := anchor.Date()

	if len(r.ByMonth) > 0 && !containsInt(r.ByMonth, int(mo)) {
		return nil
	}
	if len(r.ByMonthDay) > 0 && !matchesMonthDay(y, mo, d, r.ByMonthDay) {
		return nil
	}
	if len(r.ByDay) > 0 && !matchesWeekdayOnly(r, anchor.Weekday()) {
		return nil
	}

	if len(r.ByHour) == 0 && len(r.ByMinute) == 0 && len(r.BySecond) == 0 && len(r.BySetPos) == 0 {
		return []time.Time{anchor}
	}

	h, mi, s := anchor.Clock()
	tods := expandTimeOfDay(r, h, mi, s)
	out := make([]time.Time, 0, len(tods))
	for _, tod := range tods {
		out = append(out, time.Date(y, mo, d, tod.hour, tod.minute, tod.second, anchor.Nanosecond(), anchor.Location()))
	}
	return applyBySetPos(out, r.BySetPos)
}
