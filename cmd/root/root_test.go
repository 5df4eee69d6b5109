package root

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRootCommandMetadata(t *testing.T) {
	assert.Equal(t, "subscan", Cmd.Use)
	assert.Contains(t, Cmd.Short, "subscription receipts")
	assert.Contains(t, Cmd.Long, "billing schedules")
	assert.NotNil(t, Cmd.Run)
	assert.NotNil(t, Cmd.PersistentPreRun)
}

func TestRootCommandFlags(t *testing.T) {
	Init()

	fileFlag := Cmd.PersistentFlags().Lookup("file")
	if assert.NotNil(t, fileFlag) {
		assert.Equal(t, "f", fileFlag.Shorthand)
	}

	localeFlag := Cmd.PersistentFlags().Lookup("locale")
	if assert.NotNil(t, localeFlag) {
		assert.Equal(t, "l", localeFlag.Shorthand)
	}

	assert.NotNil(t, Cmd.PersistentFlags().Lookup("today"))
}

func TestToday(t *testing.T) {
	original := SharedFlags.Today
	defer func() { SharedFlags.Today = original }()

	t.Run("Override parses an ISO date", func(t *testing.T) {
		SharedFlags.Today = "2025-01-15"
		today, err := Today()
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), today)
	})

	t.Run("Invalid override is rejected", func(t *testing.T) {
		SharedFlags.Today = "15/01/2025"
		_, err := Today()
		assert.Error(t, err)
	})

	t.Run("Empty override uses the wall clock", func(t *testing.T) {
		SharedFlags.Today = ""
		today, err := Today()
		assert.NoError(t, err)
		assert.Equal(t, 0, today.Hour())
		assert.False(t, today.IsZero())
	})
}
