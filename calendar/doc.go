// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package calendar implements Gregorian calendar arithmetic: leap years,
// day-of-year numbering, month lengths, and the WKST-relative week
// numbering used by RFC 5545's BYWEEKNO rule part.
//
// Every function here is pure date math; none of it is timezone-aware.
// Wall-clock/instant conversion lives in package tzconv.
package calendar
