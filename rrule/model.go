// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import "time"

// Frequency is the FREQ rule part: the base period the rule recurs on.
type Frequency string

// Valid Frequency values, ordered coarsest to finest.
const (
	Yearly   Frequency = "YEARLY"
	Monthly  Frequency = "MONTHLY"
	Weekly   Frequency = "WEEKLY"
	Daily    Frequency = "DAILY"
	Hourly   Frequency = "HOURLY"
	Minutely Frequency = "MINUTELY"
	Secondly Frequency = "SECONDLY"
)

// subDay reports whether freq is gated behind AllowSubDay.
func (f Frequency) subDay() bool {
	return f == Hourly || f == Minutely || f == Secondly
}

// RScale is the RSCALE rule part (RFC 7529). Only Gregorian is accepted.
type RScale string

// Gregorian is the only RScale this engine supports.
const Gregorian RScale = "GREGORIAN"

// Skip is the SKIP rule part (RFC 7529): how to handle a BYMONTHDAY
// value with no corresponding day in a given month.
type Skip string

// Valid Skip values.
const (
	SkipOmit     Skip = "OMIT"
	SkipBackward Skip = "BACKWARD"
	SkipForward  Skip = "FORWARD"
)

// Weekday is re-exported from the standard library: time.Weekday already
// numbers Sunday=0 through Saturday=6, matching RFC 5545's own
// "0 = SU ... 6 = SA" convention, so there is no need for a parallel type.
type Weekday = time.Weekday

// Weekday constants, named to match RFC 5545's two-letter abbreviations.
const (
	SU = time.Sunday
	MO = time.Monday
	TU = time.Tuesday
	WE = time.Wednesday
	TH = time.Thursday
	FR = time.Friday
	SA = time.Saturday
)

// ByDay is one element of a BYDAY rule part: a weekday, optionally
// qualified by a signed ordinal (e.g. "2MO" is the second Monday, "-1FR"
// the last Friday). Ordinal == 0 means no ordinal was given — every
// matching weekday in the period counts.
type ByDay struct {
	Ordinal int
	Weekday Weekday
}

// Rule is the parsed, validated, immutable form of an RRULE string.
// Construct one with Parse; the zero Rule is not valid (Freq is unset).
type Rule struct {
	Freq     Frequency
	Interval int
	Count    int       // 0 means unset
	Until    time.Time // zero Time means unset
	Wkst     Weekday
	TZID     string
	RScale   RScale // "" means unset
	Skip     Skip

	// Per-field range checks below (invariant #16) are enforced by
	// go-playground/validator; the cross-field RFC invariants (#1-#15)
	// that its tag language cannot express are hand-written in
	// validate.go's validateInvariants.
	ByMonth    []int   `validate:"dive,min=1,max=12"`
	ByWeekNo   []int   `validate:"dive,byrange=1 53"`
	ByYearDay  []int   `validate:"dive,byrange=1 366"`
	ByMonthDay []int   `validate:"dive,byrange=1 31"`
	ByDay      []ByDay `validate:"-"`
	ByHour     []int   `validate:"dive,min=0,max=23"`
	ByMinute   []int   `validate:"dive,min=0,max=59"`
	BySecond   []int   `validate:"dive,min=0,max=60"`
	BySetPos   []int   `validate:"dive,byrange=1 366"`
}

// hasAnyByRule reports whether the rule carries at least one BYxxx
// filter, the test invariant #8 (BYSETPOS requires a companion BYxxx)
// needs.
func (r *Rule) hasAnyByRule() bool {
	return len(r.ByMonth) > 0 || len(r.ByWeekNo) > 0 || len(r.ByYearDay) > 0 ||
		len(r.ByMonthDay) > 0 || len(r.ByDay) > 0 || len(r.ByHour) > 0 ||
		len(r.ByMinute) > 0 || len(r.BySecond) > 0
}
