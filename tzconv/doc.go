// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package tzconv converts between absolute instants and the wall-clock
// fields an RRULE expansion operates on, using the IANA timezone
// database that Go's standard library embeds/loads via time.LoadLocation.
//
// Calendar deltas (days, months, years) must be added in wall-clock
// space so a "10:00 daily" rule stays at 10:00 across a DST transition;
// elapsed-time deltas (hours, minutes, seconds) must be added in
// absolute time so "every 3 hours" does not drift at a DST boundary.
// AddCalendar and AddElapsed below provide exactly those two operations.
package tzconv
