// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"time"

	"github.com/kestrel-dt/rrule-go/tzconv"
)

// Expansion is a lazy, single-use iterator over a Rule's occurrences
// (component 8). Create one with newExpansion; call Next repeatedly
// until it reports ok == false. An Expansion holds no locks and no
// state beyond its own anchor, counters, and the current period's
// candidate buffer (bounded by 366 entries, the YEARLY worst case);
// dropping it without exhausting it is always safe.
type Expansion struct {
	rule    *Rule
	dtstart time.Time
	mindate time.Time
	maxdate time.Time

	anchor  time.Time
	queue   []time.Time
	emitted int
	cap     int
	done    bool
}

// newExpansion constructs an Expansion over [mindate, maxdate], counting
// at most iterationCap(r.Freq, r.Count, requestedMax) occurrences from
// dtstart on: the rule's own COUNT when set, otherwise requestedMax
// scaled per frequency.
func newExpansion(r *Rule, dtstart, mindate, maxdate time.Time, requestedMax int) *Expansion {
	return &Expansion{
		rule:    r,
		dtstart: dtstart,
		mindate: mindate,
		maxdate: maxdate,
		anchor:  dtstart,
		cap:     iterationCap(r.Freq, r.Count, requestedMax),
	}
}

// generatePeriod dispatches to the generator matching the rule's FREQ
// (component 5).
func generatePeriod(r *Rule, anchor time.Time) []time.Time {
	switch r.Freq {
	case Yearly:
		return generateYearly(r, anchor)
	case Monthly:
		return generateMonthly(r, anchor, false)
	case Weekly:
		return generateWeekly(r, anchor)
	case Daily:
		return generateDaily(r, anchor)
	default: // Hourly, Minutely, Secondly
		return generateSubDay(r, anchor)
	}
}

// advance moves anchor to the start of the rule's next period: wall-
// clock (calendar) arithmetic for DAILY..YEARLY, absolute (elapsed-time)
// arithmetic for HOURLY..SECONDLY, per component 2.
func advance(r *Rule, anchor time.Time) time.Time {
	switch r.Freq {
	case Yearly:
		return tzconv.AddCalendar(anchor, r.Interval, 0, 0)
	case Monthly:
		return tzconv.AddCalendar(anchor, 0, r.Interval, 0)
	case Weekly:
		return tzconv.AddCalendar(anchor, 0, 0, 7*r.Interval)
	case Daily:
		return tzconv.AddCalendar(anchor, 0, 0, r.Interval)
	case Hourly:
		return tzconv.AddElapsed(anchor, time.Duration(r.Interval)*time.Hour)
	case Minutely:
		return tzconv.AddElapsed(anchor, time.Duration(r.Interval)*time.Minute)
	default: // Secondly
		return tzconv.AddElapsed(anchor, time.Duration(r.Interval)*time.Second)
	}
}

// Next returns the next occurrence in ascending order, or ok == false
// once the expansion has terminated (COUNT/UNTIL reached, the safety
// cap tripped, or maxdate passed).
func (e *Expansion) Next() (occ time.Time, ok bool) {
	for {
		if e.done {
			return time.Time{}, false
		}

		if len(e.queue) == 0 {
			if e.anchor.After(e.maxdate) {
				e.done = true
				return time.Time{}, false
			}
			for _, c := range generatePeriod(e.rule, e.anchor) {
				if !c.Before(e.dtstart) {
					e.queue = append(e.queue, c)
				}
			}
			e.anchor = advance(e.rule, e.anchor)
			if len(e.queue) == 0 {
				continue
			}
		}

		c := e.queue[0]
		e.queue = e.queue[1:]

		if !e.rule.Until.IsZero() && c.After(e.rule.Until) {
			e.done = true
			return time.Time{}, false
		}
		if c.After(e.maxdate) {
			e.done = true
			return time.Time{}, false
		}

		yield := !c.Before(e.mindate)
		e.emitted++
		if e.emitted >= e.cap {
			e.done = true
		}
		if yield {
			return c, true
		}
		if e.done {
			return time.Time{}, false
		}
	}
}
