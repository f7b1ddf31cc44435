// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package tzconv

import (
	"fmt"
	"time"
)

// Load resolves an IANA zone name, wrapping the stdlib error so callers
// can match it with errors.Is(err, ErrInvalidTimezone).
func Load(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, name, err)
	}
	return loc, nil
}

// ToLocal converts an absolute instant to its wall-clock representation
// in loc. Unlike ToInstant this direction is never ambiguous.
func ToLocal(instant time.Time, loc *time.Location) time.Time {
	return instant.In(loc)
}

// ToInstant reinterprets wall's date/time fields as a wall-clock moment
// in loc and resolves it to the absolute instant it denotes.
//
// A wall-clock time that does not exist (the spring-forward gap) is
// rolled forward, as if the missing hour had elapsed; a wall-clock time
// that exists twice (the fall-back overlap) resolves to the earlier of
// its two possible instants.
func ToInstant(wall time.Time, loc *time.Location) time.Time {
	y, mo, d := wall.Date()
	h, mi, s := wall.Clock()
	return resolveWallClock(y, mo, d, h, mi, s, wall.Nanosecond(), loc)
}

func resolveWallClock(y int, mo time.Month, d, h, mi, s, ns int, loc *time.Location) time.Time {
	primary := time.Date(y, mo, d, h, mi, s, ns, loc)

	// Gap and overlap wall-clock times both lie within an hour of a
	// transition, and time.Date picks one side of it arbitrarily.
	// Sampling the offset an hour to either side of primary in absolute
	// time (so the sampling is itself unambiguous) finds both offsets of
	// a nearby transition; with no transition nearby primary is exact.
	_, beforeOffset := primary.Add(-1 * time.Hour).Zone()
	_, afterOffset := primary.Add(1 * time.Hour).Zone()
	if beforeOffset == afterOffset {
		return primary
	}

	// Read the wall-clock fields with each offset. A reading that loc
	// itself shows with that offset is a real instant for those fields:
	// an ordinary time has one, an overlap time two (the earlier wins).
	// A gap time has none; reading it with the pre-transition offset
	// gives the later instant, i.e. the time rolled forward.
	var earliest, latest time.Time
	for _, off := range []int{beforeOffset, afterOffset} {
		c := time.Date(y, mo, d, h, mi, s, ns, time.FixedZone(loc.String(), off)).In(loc)
		if latest.IsZero() || c.After(latest) {
			latest = c
		}
		if _, o := c.Zone(); o == off && (earliest.IsZero() || c.Before(earliest)) {
			earliest = c
		}
	}
	if !earliest.IsZero() {
		return earliest
	}
	return latest
}

// AddCalendar adds a calendar delta (years, months, days) to t in
// wall-clock space, re-resolving the result through the same
// gap/overlap rules as ToInstant. Used for DAILY..YEARLY advancement.
func AddCalendar(t time.Time, years, months, days int) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return resolveWallClock(y+years, mo+time.Month(months), d+days, h, mi, s, t.Nanosecond(), t.Location())
}

// AddElapsed adds an absolute-time delta to t. Used for HOURLY..SECONDLY
// advancement, so a "every N hours" schedule never drifts across a DST
// transition.
func AddElapsed(t time.Time, d time.Duration) time.Time {
	return t.Add(d)
}
