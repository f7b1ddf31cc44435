// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"strconv"
	"strings"
	"time"
)

const untilDateFormat = "20060102"
const untilDateTimeFormat = "20060102T150405Z"

var weekdayNames = map[string]Weekday{
	"SU": SU, "MO": MO, "TU": TU, "WE": WE, "TH": TH, "FR": FR, "SA": SA,
}

var weekdayAbbrev = map[Weekday]string{
	SU: "SU", MO: "MO", TU: "TU", WE: "WE", TH: "TH", FR: "FR", SA: "SA",
}

// Parse parses an RRULE value string (the part after "RRULE:", with no
// leading property name) into a validated *Rule.
//
// Unknown KEY=VALUE parts are ignored, per RFC 5545's general parameter
// extensibility rule. An empty string is a parse error: no default FREQ
// is synthesized.
func Parse(s string) (*Rule, error) {
	if strings.TrimSpace(s) == "" {
		return nil, invalidRule("FREQ", "", errEmptyRuleString)
	}

	r := &Rule{Interval: 1, Wkst: MO, Skip: SkipOmit}
	var haveFreq bool
	var rscaleSet bool

	for _, part := range strings.Split(s, ";") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, invalidRule("", part, errMalformedPart)
		}

		switch key {
		case "FREQ":
			freq := Frequency(value)
			switch freq {
			case Yearly, Monthly, Weekly, Daily, Hourly, Minutely, Secondly:
				r.Freq = freq
				haveFreq = true
			default:
				return nil, invalidRule("FREQ", value, errInvalidFrequency)
			}
		case "INTERVAL":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return nil, invalidRule("INTERVAL", value, errInvalidInterval)
			}
			r.Interval = n
		case "COUNT":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return nil, invalidRule("COUNT", value, errInvalidCount)
			}
			r.Count = n
		case "UNTIL":
			until, err := parseUntil(value)
			if err != nil {
				return nil, invalidRule("UNTIL", value, errInvalidUntil)
			}
			r.Until = until
		case "WKST":
			wd, ok := weekdayNames[value]
			if !ok {
				return nil, invalidRule("WKST", value, errInvalidWkst)
			}
			r.Wkst = wd
		case "TZID":
			r.TZID = value
		case "RSCALE":
			if !strings.EqualFold(value, string(Gregorian)) {
				return nil, invalidRule("RSCALE", value, errInvalidRScale)
			}
			r.RScale = Gregorian
			rscaleSet = true
		case "SKIP":
			switch strings.ToUpper(value) {
			case string(SkipOmit):
				r.Skip = SkipOmit
			case string(SkipBackward):
				r.Skip = SkipBackward
			case string(SkipForward):
				r.Skip = SkipForward
			default:
				return nil, invalidRule("SKIP", value, errInvalidSkip)
			}
		case "BYMONTH":
			ints, err := parseIntList(value)
			if err != nil {
				return nil, invalidRule("BYMONTH", value, err)
			}
			r.ByMonth = ints
		case "BYWEEKNO":
			ints, err := parseIntList(value)
			if err != nil {
				return nil, invalidRule("BYWEEKNO", value, err)
			}
			r.ByWeekNo = ints
		case "BYYEARDAY":
			ints, err := parseIntList(value)
			if err != nil {
				return nil, invalidRule("BYYEARDAY", value, err)
			}
			r.ByYearDay = ints
		case "BYMONTHDAY":
			ints, err := parseIntList(value)
			if err != nil {
				return nil, invalidRule("BYMONTHDAY", value, err)
			}
			r.ByMonthDay = ints
		case "BYDAY":
			days, err := parseByDayList(value)
			if err != nil {
				return nil, invalidRule("BYDAY", value, err)
			}
			r.ByDay = days
		case "BYHOUR":
			ints, err := parseIntList(value)
			if err != nil {
				return nil, invalidRule("BYHOUR", value, err)
			}
			r.ByHour = ints
		case "BYMINUTE":
			ints, err := parseIntList(value)
			if err != nil {
				return nil, invalidRule("BYMINUTE", value, err)
			}
			r.ByMinute = ints
		case "BYSECOND":
			ints, err := parseIntList(value)
			if err != nil {
				return nil, invalidRule("BYSECOND", value, err)
			}
			r.BySecond = ints
		case "BYSETPOS":
			ints, err := parseIntList(value)
			if err != nil {
				return nil, invalidRule("BYSETPOS", value, err)
			}
			r.BySetPos = ints
		default:
			// Unknown keys are ignored (RFC 5545 general extensibility).
		}
	}

	if !haveFreq {
		return nil, invalidRule("FREQ", "", errFrequencyRequired)
	}
	if r.Skip != SkipOmit && !rscaleSet {
		r.RScale = Gregorian
	}

	if err := validate(r); err != nil {
		return nil, err
	}
	if r.Freq.subDay() && !AllowSubDay {
		return nil, &UnsupportedFrequencyError{Freq: r.Freq}
	}
	return r, nil
}

// parseIntList parses a comma-separated list of signed integers, as used
// by every numeric BYxxx rule part.
func parseIntList(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errFieldNotInteger
		}
		out = append(out, n)
	}
	return out, nil
}

// parseByDayList parses a comma-separated BYDAY value: each element is
// an optional signed ordinal followed by a two-letter weekday, e.g.
// "MO,2TU,-1FR".
func parseByDayList(value string) ([]ByDay, error) {
	parts := strings.Split(value, ",")
	out := make([]ByDay, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		ordinal, weekdayStr, err := splitOrdinalAndWeekday(p)
		if err != nil {
			return nil, err
		}
		wd, ok := weekdayNames[weekdayStr]
		if !ok {
			return nil, errInvalidByDay
		}
		if ordinal != 0 {
			abs := ordinal
			if abs < 0 {
				abs = -abs
			}
			if abs > 53 {
				return nil, errOrdinalRange
			}
		}
		out = append(out, ByDay{Ordinal: ordinal, Weekday: wd})
	}
	return out, nil
}

// splitOrdinalAndWeekday splits "2TU" into (2, "TU"), "-1FR" into
// (-1, "FR"), and "MO" into (0, "MO").
func splitOrdinalAndWeekday(s string) (int, string, error) {
	if len(s) < 2 {
		return 0, "", errInvalidByDay
	}
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i = 1
	}
	digitsEnd := i
	for digitsEnd < len(s) && s[digitsEnd] >= '0' && s[digitsEnd] <= '9' {
		digitsEnd++
	}
	weekdayStr := s[digitsEnd:]
	if digitsEnd == 0 {
		return 0, weekdayStr, nil
	}
	if digitsEnd == i {
		// A bare sign with no digits ("-MO") is not a valid ordinal.
		return 0, "", errInvalidByDay
	}
	n, err := strconv.Atoi(s[:digitsEnd])
	if err != nil {
		return 0, "", errInvalidByDay
	}
	if n == 0 {
		return 0, "", errZeroOrdinal
	}
	return n, weekdayStr, nil
}

// parseUntil accepts either a bare date (YYYYMMDD, interpreted as
// midnight UTC) or a full UTC date-time (YYYYMMDDTHHMMSSZ), per RFC
// 5545 §3.3.10.
func parseUntil(value string) (time.Time, error) {
	if t, err := time.Parse(untilDateTimeFormat, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(untilDateFormat, value); err == nil {
		return t, nil
	}
	return time.Time{}, errInvalidUntil
}
