// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import "time"

// generateSubDay builds the HOURLY/MINUTELY/SECONDLY period set
// (component 5, sub-day case): the anchor instant is itself the sole
// candidate, kept only if every BYxxx rule part that is set includes
// the anchor's corresponding field.
func generateSubDay(r *Rule, anchor time.Time) []time.Time {
	y, mo, d := anchor.Date()
	h, mi, s := anchor.Clock()

	if len(r.ByMonth) > 0 && !containsInt(r.ByMonth, int(mo)) {
		return nil
	}
	if len(r.ByMonthDay) > 0 && !matchesMonthDay(y, mo, d, r.ByMonthDay) {
		return nil
	}
	if len(r.ByDay) > 0 && !matchesWeekdayOnly(r, anchor.Weekday()) {
		return nil
	}
	if len(r.ByHour) > 0 && !containsInt(r.ByHour, h) {
		return nil
	}
	if len(r.ByMinute) > 0 && !containsInt(r.ByMinute, mi) {
		return nil
	}
	if len(r.BySecond) > 0 && !containsInt(r.BySecond, s) {
		return nil
	}

	return []time.Time{anchor}
}
