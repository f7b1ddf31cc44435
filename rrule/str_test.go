package rrule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringOmitsDefaults(t *testing.T) {
	r, err := Parse("FREQ=DAILY")
	require.NoError(t, err)
	assert.Equal(t, "FREQ=DAILY", r.String())
}

func TestStringRoundTrip(t *testing.T) {
	tests := []string{
		"FREQ=WEEKLY;INTERVAL=2;COUNT=5;WKST=SU;BYDAY=MO,WE,FR",
		"FREQ=MONTHLY;BYMONTHDAY=31;SKIP=BACKWARD",
		"FREQ=YEARLY;BYMONTH=3,6;BYDAY=2MO;BYSETPOS=1",
		"FREQ=MONTHLY;UNTIL=20251231T000000Z;BYDAY=-1FR",
	}
	for _, rule := range tests {
		t.Run(rule, func(t *testing.T) {
			r1, err := Parse(rule)
			require.NoError(t, err)
			serialized := r1.String()
			r2, err := Parse(serialized)
			require.NoError(t, err)
			assert.Equal(t, r1, r2)
		})
	}
}
