// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"strconv"
	"strings"
)

// String renders r back into RRULE value syntax. Parsing the result
// reproduces an equivalent Rule: Parse is a left inverse of String for
// every field Parse recognises, which makes round-tripping a rule
// through Parse and String idempotent after the first pass (defaults
// Parse fills in, such as INTERVAL=1 or WKST=MO, are omitted here since
// they are reconstructed identically on the next parse).
func (r *Rule) String() string {
	var parts []string
	add := func(key, value string) {
		parts = append(parts, key+"="+value)
	}

	add("FREQ", string(r.Freq))
	if r.Interval != 1 {
		add("INTERVAL", strconv.Itoa(r.Interval))
	}
	if r.Count != 0 {
		add("COUNT", strconv.Itoa(r.Count))
	}
	if !r.Until.IsZero() {
		add("UNTIL", r.Until.UTC().Format(untilDateTimeFormat))
	}
	if r.Wkst != MO {
		add("WKST", weekdayAbbrev[r.Wkst])
	}
	if r.TZID != "" {
		add("TZID", r.TZID)
	}
	if r.RScale != "" {
		add("RSCALE", string(r.RScale))
	}
	if r.Skip != SkipOmit {
		add("SKIP", string(r.Skip))
	}
	if len(r.BySecond) > 0 {
		add("BYSECOND", joinInts(r.BySecond))
	}
	if len(r.ByMinute) > 0 {
		add("BYMINUTE", joinInts(r.ByMinute))
	}
	if len(r.ByHour) > 0 {
		add("BYHOUR", joinInts(r.ByHour))
	}
	if len(r.ByDay) > 0 {
		add("BYDAY", joinByDay(r.ByDay))
	}
	if len(r.ByMonthDay) > 0 {
		add("BYMONTHDAY", joinInts(r.ByMonthDay))
	}
	if len(r.ByYearDay) > 0 {
		add("BYYEARDAY", joinInts(r.ByYearDay))
	}
	if len(r.ByWeekNo) > 0 {
		add("BYWEEKNO", joinInts(r.ByWeekNo))
	}
	if len(r.ByMonth) > 0 {
		add("BYMONTH", joinInts(r.ByMonth))
	}
	if len(r.BySetPos) > 0 {
		add("BYSETPOS", joinInts(r.BySetPos))
	}

	return strings.Join(parts, ";")
}

func joinInts(values []int) string {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = strconv.Itoa(v)
	}
	return strings.Join(strs, ",")
}

func joinByDay(days []ByDay) string {
	strs := make([]string, len(days))
	for i, d := range days {
		if d.Ordinal == 0 {
			strs[i] = weekdayAbbrev[d.Weekday]
		} else {
			strs[i] = strconv.Itoa(d.Ordinal) + weekdayAbbrev[d.Weekday]
		}
	}
	return strings.Join(strs, ",")
}
