// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

// iterationCap computes the hard upper bound on the number of instants
// an expansion may emit (component 7), per the per-frequency multipliers
// that compensate for sparse BYxxx filters (e.g. FREQ=DAILY;BYDAY=MO;
// BYSETPOS=-1 finds roughly one match every four weeks of daily
// candidates). When count is set it always wins, since it is the
// caller's explicit, already-bounded intent.
func iterationCap(freq Frequency, count, requestedMax int) int {
	if count > 0 {
		return count
	}
	switch freq {
	case Daily:
		return requestedMax * 20
	case Weekly:
		return requestedMax * 10
	case Hourly:
		return requestedMax * 2
	case Minutely:
		return min(requestedMax, 1440)
	case Secondly:
		return min(requestedMax, 3600)
	default: // Monthly, Yearly
		return requestedMax
	}
}
