// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package rrule implements the recurrence rules defined in RFC 5545
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.10, plus the
// RSCALE/SKIP extensions from RFC 7529
// https://datatracker.ietf.org/doc/html/rfc7529.
//
// Parse turns an RRULE value string into a *Rule. A Rule is immutable
// once parsed; All, Between, After, Before, Count, Next, MostRecent and
// Overlaps expand it through a lazy Expansion iterator, which produces
// occurrences in strictly ascending wall-clock order,
// stopping at COUNT, UNTIL, or an internal safety cap — whichever comes
// first. The safety cap is never surfaced as an error: a rule that would
// otherwise run away is silently truncated to its bounded prefix.
//
// Sub-day frequencies (HOURLY, MINUTELY, SECONDLY) are fully implemented
// but rejected unless AllowSubDay is set, since a single such rule with
// no COUNT/UNTIL can otherwise yield tens of millions of occurrences.
package rrule

// AllowSubDay gates HOURLY, MINUTELY, and SECONDLY frequencies. They are
// parsed and validated like any other frequency but Parse rejects them
// with UnsupportedFrequencyError until this is set to true. There is no
// equivalent gate for their expansion cost beyond the hard caps in
// iterationCap: AllowSubDay only controls whether Parse accepts the
// frequency at all.
var AllowSubDay = false
