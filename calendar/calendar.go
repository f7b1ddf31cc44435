// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package calendar

import "time"

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

var daysInMonthCommon = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the last day number of month in year (28-31).
func DaysInMonth(year int, month time.Month) int {
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return daysInMonthCommon[month-1]
}

// DayOfYear returns the 1-based ordinal day of year for the given date.
func DayOfYear(year int, month time.Month, day int) int {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).YearDay()
}

// DateFromYearDay returns the calendar date for the n-th day of year.
// n may be negative, counting back from the last day of the year (-1 is
// Dec 31). n == 0 is invalid and returns the zero time.Time.
func DateFromYearDay(year, n int) time.Time {
	if n == 0 {
		return time.Time{}
	}
	if n < 0 {
		n = DaysInYear(year) + n + 1
	}
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n-1)
}

// MonthDayFromOrdinal resolves a signed BYMONTHDAY value (1..31 or
// -31..-1) against a month's length. ok is false if the value has no
// corresponding day in the month (e.g. 31 in April).
func MonthDayFromOrdinal(year int, month time.Month, n int) (day int, ok bool) {
	last := DaysInMonth(year, month)
	if n > 0 {
		if n > last {
			return 0, false
		}
		return n, true
	}
	day = last + n + 1
	if day < 1 {
		return 0, false
	}
	return day, true
}

// WeekStart returns the most recent date on or before d whose weekday is
// wkst, truncated to midnight in d's own location.
func WeekStart(d time.Time, wkst time.Weekday) time.Time {
	delta := int(d.Weekday()) - int(wkst)
	if delta < 0 {
		delta += 7
	}
	y, mo, day := d.Date()
	return time.Date(y, mo, day, 0, 0, 0, 0, d.Location()).AddDate(0, 0, -delta)
}

// firstWkstOnOrAfter returns the first date >= the given date whose
// weekday equals wkst.
func firstWkstOnOrAfter(d time.Time, wkst time.Weekday) time.Time {
	delta := int(wkst) - int(d.Weekday())
	if delta < 0 {
		delta += 7
	}
	return d.AddDate(0, 0, delta)
}

// dayNumber returns a proleptic day count for (year, month, day), anchored
// at UTC noon so it is independent of any zone's DST rules: the count is
// purely a function of the calendar fields, never of elapsed wall-clock
// duration.
func dayNumber(year int, month time.Month, day int) int {
	return int(time.Date(year, month, day, 12, 0, 0, 0, time.UTC).Unix() / 86400)
}

// WeekNumber computes the 1-based ordinal of the 7-day span containing d,
// counting spans of 7 days from the first wkst-weekday on or after
// January 1st of d's year. This is deliberately NOT ISO-8601 week
// numbering (which additionally requires "week 1 contains January 4th");
// dates before the first wkst-day of the year belong to the last
// wkst-anchored week of the previous year.
func WeekNumber(d time.Time, wkst time.Weekday) int {
	y, mo, day := d.Date()

	jan1 := time.Date(y, time.January, 1, 0, 0, 0, 0, d.Location())
	w1 := firstWkstOnOrAfter(jan1, wkst)
	if time.Date(y, mo, day, 0, 0, 0, 0, d.Location()).Before(w1) {
		prevJan1 := time.Date(y-1, time.January, 1, 0, 0, 0, 0, d.Location())
		w1 = firstWkstOnOrAfter(prevJan1, wkst)
	}
	w1y, w1mo, w1day := w1.Date()

	days := dayNumber(y, mo, day) - dayNumber(w1y, w1mo, w1day)
	return days/7 + 1
}

// WeeksInYear returns the number of WKST-anchored weeks that year has,
// i.e. the highest value WeekNumber can return for a date in year given
// wkst (used to resolve negative BYWEEKNO values).
func WeeksInYear(year int, wkst time.Weekday) int {
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	n := WeekNumber(dec31, wkst)
	if n == 1 {
		// Dec 31 already belongs to next year's first wkst-week; the
		// last full week of this year ended 7 days earlier.
		n = WeekNumber(dec31.AddDate(0, 0, -7), wkst)
	}
	return n
}
