// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import "time"

// applyBySetPos implements component 6: given the ordered candidate set
// of a single period, select the positions named in setpos. A positive
// n selects sorted[n-1] (1-based, from the start); a negative n selects
// sorted[len+n] (from the end); an out-of-range index is silently
// dropped. When setpos is empty, every candidate passes through,
// sorted ascending.
func applyBySetPos(candidates []time.Time, setpos []int) []time.Time {
	sorted := sortTimes(candidates)
	if len(setpos) == 0 {
		return sorted
	}

	selected := make([]time.Time, 0, len(setpos))
	for _, pos := range setpos {
		var idx int
		if pos < 0 {
			idx = len(sorted) + pos
		} else {
			idx = pos - 1
		}
		if idx < 0 || idx >= len(sorted) {
			continue
		}
		selected = append(selected, sorted[idx])
	}
	return dedupTimes(sortTimes(selected))
}
