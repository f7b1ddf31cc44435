package rrule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyBySetPos(t *testing.T) {
	candidates := []time.Time{
		time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}

	t.Run("positive index", func(t *testing.T) {
		got := applyBySetPos(candidates, []int{1})
		assert.Equal(t, []time.Time{candidates[0]}, got)
	})

	t.Run("negative index", func(t *testing.T) {
		got := applyBySetPos(candidates, []int{-1})
		assert.Equal(t, []time.Time{candidates[2]}, got)
	})

	t.Run("out of range is dropped", func(t *testing.T) {
		got := applyBySetPos(candidates, []int{5, -5})
		assert.Empty(t, got)
	})

	t.Run("empty setpos passes everything through sorted", func(t *testing.T) {
		got := applyBySetPos(candidates, nil)
		assert.Equal(t, candidates, got)
	})

	t.Run("multiple positions deduplicated and sorted", func(t *testing.T) {
		got := applyBySetPos(candidates, []int{-1, 1, 3})
		assert.Equal(t, []time.Time{candidates[0], candidates[2]}, got)
	})
}
