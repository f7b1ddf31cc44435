// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	fieldRanges   *validator.Validate
)

// byRangeValidation backs the "byrange=lo hi" tag used on BYWEEKNO,
// BYYEARDAY, BYMONTHDAY, and BYSETPOS: a signed field whose absolute
// value must fall in [lo, hi], with zero always rejected.
func byRangeValidation(fl validator.FieldLevel) bool {
	params := strings.Fields(fl.Param())
	if len(params) != 2 {
		return false
	}
	lo, err1 := strconv.Atoi(params[0])
	hi, err2 := strconv.Atoi(params[1])
	if err1 != nil || err2 != nil {
		return false
	}
	v := fl.Field().Int()
	abs := v
	if abs < 0 {
		abs = -abs
	}
	return abs >= int64(lo) && abs <= int64(hi)
}

func fieldRangeValidator() *validator.Validate {
	validatorOnce.Do(func() {
		fieldRanges = validator.New()
		if err := fieldRanges.RegisterValidation("byrange", byRangeValidation); err != nil {
			panic(err)
		}
	})
	return fieldRanges
}

// validate applies all sixteen RFC 5545 §3.3.10 (plus RFC 7529)
// constraints and returns the first violation found, wrapped as an
// *InvalidRuleError.
func validate(r *Rule) error {
	if err := validateInvariants(r); err != nil {
		return err
	}
	return validateFieldRanges(r)
}

// validateFieldRanges is invariant #16: every BYxxx integer must fall in
// its RFC-mandated range, with zero rejected where the RFC forbids it.
func validateFieldRanges(r *Rule) error {
	if err := fieldRangeValidator().Struct(r); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok || len(verrs) == 0 {
			return invalidRule("", "", errFieldOutOfRange)
		}
		fe := verrs[0]
		field := fe.StructField()
		return invalidRule(field, fmt.Sprintf("%v", fe.Value()), errFieldOutOfRange)
	}
	return nil
}

// validateInvariants applies invariants #1-#15: the cross-field RFC
// constraints that a struct-tag validator cannot express because they
// depend on which other rule parts are present.
func validateInvariants(r *Rule) error {
	// #1: FREQ is present (Parse already guarantees this before calling
	// validate, but re-check so validate is safe to call standalone).
	switch r.Freq {
	case Yearly, Monthly, Weekly, Daily, Hourly, Minutely, Secondly:
	case "":
		return invalidRule("FREQ", "", errFrequencyRequired)
	default:
		return invalidRule("FREQ", string(r.Freq), errInvalidFrequency)
	}

	// #2: COUNT and UNTIL are mutually exclusive.
	if r.Count != 0 && !r.Until.IsZero() {
		return invalidRule("COUNT/UNTIL", "", errCountAndUntilBothSet)
	}

	// #3: BYWEEKNO only with YEARLY.
	if len(r.ByWeekNo) > 0 && r.Freq != Yearly {
		return invalidRule("BYWEEKNO", "", errByWeekNoRequiresYearly)
	}

	// #4: BYYEARDAY forbidden with DAILY, WEEKLY, MONTHLY.
	if len(r.ByYearDay) > 0 && (r.Freq == Daily || r.Freq == Weekly || r.Freq == Monthly) {
		return invalidRule("BYYEARDAY", string(r.Freq), errByYearDayForbidden)
	}

	// #5: BYMONTHDAY forbidden with WEEKLY.
	if len(r.ByMonthDay) > 0 && r.Freq == Weekly {
		return invalidRule("BYMONTHDAY", "", errByMonthDayForbidWeekly)
	}

	// #6: a BYDAY ordinal is only permitted with MONTHLY or YEARLY.
	if r.Freq != Monthly && r.Freq != Yearly {
		for _, d := range r.ByDay {
			if d.Ordinal != 0 {
				return invalidRule("BYDAY", string(r.Freq), errOrdinalNeedsMonthYear)
			}
		}
	}

	// #7: YEARLY + BYWEEKNO forbids any BYDAY ordinal.
	if r.Freq == Yearly && len(r.ByWeekNo) > 0 {
		for _, d := range r.ByDay {
			if d.Ordinal != 0 {
				return invalidRule("BYDAY", "", errOrdinalForbidsWeekNo)
			}
		}
	}

	// #8: BYSETPOS requires at least one other BYxxx rule part.
	if len(r.BySetPos) > 0 && !r.hasAnyByRule() {
		return invalidRule("BYSETPOS", "", errBySetPosNeedsOtherBy)
	}

	// #9: INTERVAL >= 1 (Parse already enforces this on the string path;
	// re-checked here so a caller-constructed Rule can't skip it).
	if r.Interval < 1 {
		return invalidRule("INTERVAL", "", errInvalidInterval)
	}

	// #10: COUNT, if set, is positive.
	if r.Count < 0 {
		return invalidRule("COUNT", "", errInvalidCount)
	}

	// #11: WKST must be a valid weekday (always true when parsed via
	// Parse; guards hand-constructed Rules).
	if r.Wkst < SU || r.Wkst > SA {
		return invalidRule("WKST", "", errInvalidWkst)
	}

	// #12: RSCALE only accepts GREGORIAN.
	if r.RScale != "" && r.RScale != Gregorian {
		return invalidRule("RSCALE", string(r.RScale), errInvalidRScale)
	}

	// #13: SKIP must be one of OMIT/BACKWARD/FORWARD.
	switch r.Skip {
	case SkipOmit, SkipBackward, SkipForward:
	default:
		return invalidRule("SKIP", string(r.Skip), errInvalidSkip)
	}

	// #14: BYDAY ordinals (when present) satisfy 1 <= |n| <= 53.
	for _, d := range r.ByDay {
		if d.Ordinal == 0 {
			continue
		}
		abs := d.Ordinal
		if abs < 0 {
			abs = -abs
		}
		if abs > 53 {
			return invalidRule("BYDAY", "", errOrdinalRange)
		}
	}

	// #15: YEARLY cannot combine BYMONTH with BYYEARDAY (the two are
	// alternative primary generators for the yearly period set).
	if r.Freq == Yearly && len(r.ByMonth) > 0 && len(r.ByYearDay) > 0 {
		return invalidRule("BYYEARDAY", "", errYearlyContradictoryBy)
	}

	return nil
}
