// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"time"

	"github.com/kestrel-dt/rrule-go/tzconv"
)

// defaultMaxEmissions is the requested_max fed to the safety limiter
// (component 7) by All, Between, and Count, absent a smaller COUNT.
const defaultMaxEmissions = 1000

// farHorizonYears bounds After's search window: far enough that no
// realistic rule runs out of real occurrences first, while still giving
// the safety limiter a concrete maxdate to terminate against.
const farHorizonYears = 200

// resolveZone implements the timezone selection priority of component 9:
// an explicit argument wins, then the rule's own TZID, then UTC.
func resolveZone(r *Rule, tz *time.Location) (*time.Location, error) {
	if tz != nil {
		return tz, nil
	}
	if r.TZID != "" {
		loc, err := tzconv.Load(r.TZID)
		if err != nil {
			return nil, &InvalidTimezoneError{Name: r.TZID, Err: err}
		}
		return loc, nil
	}
	return time.UTC, nil
}

func materialize(exp *Expansion) []time.Time {
	var out []time.Time
	for {
		c, ok := exp.Next()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}

// All returns every occurrence in [dtstart, dtstart+10 years]. Without a
// COUNT the number returned is bounded by the safety limiter for a
// requested maximum of 1000: 1000 for MONTHLY and YEARLY, 20000 for
// DAILY, 10000 for WEEKLY, 2000 for HOURLY, 1000 for MINUTELY and
// SECONDLY. With a COUNT, COUNT is the bound.
func All(r *Rule, dtstart time.Time, tz *time.Location) ([]time.Time, error) {
	loc, err := resolveZone(r, tz)
	if err != nil {
		return nil, err
	}
	start := dtstart.In(loc)
	end := start.AddDate(10, 0, 0)
	return materialize(newExpansion(r, start, start, end, defaultMaxEmissions)), nil
}

// Between returns every occurrence within [start, end], with dtstart
// still anchoring the recurrence pattern itself.
func Between(r *Rule, dtstart, start, end time.Time, tz *time.Location) ([]time.Time, error) {
	loc, err := resolveZone(r, tz)
	if err != nil {
		return nil, err
	}
	return materialize(newExpansion(r, dtstart.In(loc), start.In(loc), end.In(loc), defaultMaxEmissions)), nil
}

// After returns up to n occurrences strictly greater than pivot.
func After(r *Rule, dtstart, pivot time.Time, n int, tz *time.Location) ([]time.Time, error) {
	loc, err := resolveZone(r, tz)
	if err != nil {
		return nil, err
	}
	start := dtstart.In(loc)
	p := pivot.In(loc)
	maxdate := p.AddDate(farHorizonYears, 0, 0)
	exp := newExpansion(r, start, p.Add(time.Nanosecond), maxdate, defaultMaxEmissions)

	out := make([]time.Time, 0, n)
	for len(out) < n {
		c, ok := exp.Next()
		if !ok {
			break
		}
		out = append(out, c)
	}
	return out, nil
}

// Before returns up to n occurrences strictly less than pivot, by
// materialising every occurrence <= pivot and keeping the last n.
func Before(r *Rule, dtstart, pivot time.Time, n int, tz *time.Location) ([]time.Time, error) {
	loc, err := resolveZone(r, tz)
	if err != nil {
		return nil, err
	}
	start := dtstart.In(loc)
	p := pivot.In(loc)
	exp := newExpansion(r, start, start, p, defaultMaxEmissions)

	var all []time.Time
	for {
		c, ok := exp.Next()
		if !ok {
			break
		}
		if !c.Before(p) {
			break
		}
		all = append(all, c)
	}
	if len(all) > n {
		all = all[len(all)-n:]
	}
	return all, nil
}

// Count returns the total number of occurrences across the same window
// All uses.
func Count(r *Rule, dtstart time.Time, tz *time.Location) (int, error) {
	occs, err := All(r, dtstart, tz)
	if err != nil {
		return 0, err
	}
	return len(occs), nil
}

// Next returns the first occurrence strictly after now, and false if
// there is none within After's search horizon.
func Next(r *Rule, dtstart, now time.Time, tz *time.Location) (time.Time, bool, error) {
	occs, err := After(r, dtstart, now, 1, tz)
	if err != nil || len(occs) == 0 {
		return time.Time{}, false, err
	}
	return occs[0], true, nil
}

// MostRecent returns the last occurrence strictly before now, and false
// if there is none: the mirror image of Next, which is strictly after.
func MostRecent(r *Rule, dtstart, now time.Time, tz *time.Location) (time.Time, bool, error) {
	occs, err := Before(r, dtstart, now, 1, tz)
	if err != nil || len(occs) == 0 {
		return time.Time{}, false, err
	}
	return occs[0], true, nil
}

// intervalsOverlap reports whether [aStart, aEnd] and [bStart, bEnd]
// intersect.
func intervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aEnd.Before(bStart) && !aStart.After(bEnd)
}

// Overlaps reports whether at least one occurrence interval
// [occ, occ+(dtend-dtstart)] intersects [mindate, maxdate]. A nil rule
// is treated as a single non-recurring event spanning [dtstart, dtend].
func Overlaps(dtstart, dtend time.Time, r *Rule, mindate, maxdate time.Time, tz *time.Location) (bool, error) {
	duration := dtend.Sub(dtstart)
	if r == nil {
		return intervalsOverlap(dtstart, dtend, mindate, maxdate), nil
	}

	loc, err := resolveZone(r, tz)
	if err != nil {
		return false, err
	}
	start := dtstart.In(loc)
	md := mindate.In(loc)
	mx := maxdate.In(loc)

	exp := newExpansion(r, start, md.Add(-duration), mx, defaultMaxEmissions)
	for {
		c, ok := exp.Next()
		if !ok {
			return false, nil
		}
		if c.After(mx) {
			return false, nil
		}
		if intervalsOverlap(c, c.Add(duration), md, mx) {
			return true, nil
		}
	}
}
