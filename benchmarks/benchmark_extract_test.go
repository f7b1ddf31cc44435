// Package benchmarks provides comparative benchmarks and differential
// equivalence checks against other Go RRULE and iCalendar implementations.
package benchmarks

import (
	"bytes"
	"testing"

	"github.com/apognu/gocal"
	golangical "github.com/arran4/golang-ical"
)

// fixtureICS is a minimal VEVENT carrying an RRULE line, used to
// benchmark extracting the rule string out of a real iCalendar document
// with two independent third-party parsers. This module has no VEVENT
// model of its own (that scope was dropped along with the teacher's
// model/parse packages — see DESIGN.md), so the three-way comparison
// the teacher ran over full-document parsing narrows here to just the
// two external parsers.
const fixtureICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//kestrel-dt//rrule-go//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:bench-1@kestrel-dt\r\n" +
	"DTSTART:20250106T100000Z\r\n" +
	"RRULE:FREQ=WEEKLY;BYDAY=MO,WE,FR;COUNT=10\r\n" +
	"SUMMARY:Standup\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func BenchmarkExtractRRule(b *testing.B) {
	content := []byte(fixtureICS)
	var reader bytes.Reader

	b.Run("Gocal", func(b *testing.B) {
		for b.Loop() {
			reader.Reset(content)
			c := gocal.NewParser(&reader)
			if err := c.Parse(); err != nil {
				b.Fatal(err)
			}
			if len(c.Events) == 0 {
				b.Fatal("no events parsed")
			}
		}
	})

	b.Run("GolangIcal", func(b *testing.B) {
		for b.Loop() {
			reader.Reset(content)
			cal, err := golangical.ParseCalendar(&reader)
			if err != nil {
				b.Fatal(err)
			}
			prop := cal.Events()[0].GetProperty(golangical.ComponentPropertyRrule)
			if prop == nil {
				b.Fatal("no RRULE property found")
			}
		}
	})
}
