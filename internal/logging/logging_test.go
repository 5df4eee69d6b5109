package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"Debug text", "debug", "text"},
		{"Info json", "info", "json"},
		{"Invalid level falls back to info", "chatty", "text"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tc.level, tc.format)
			assert.NotNil(t, logger)
			assert.NotPanics(t, func() {
				logger.Info("test message", Field{Key: "key", Value: "value"})
			})
		})
	}
}

func TestNewLogrusAdapterFromLogger(t *testing.T) {
	assert.NotNil(t, NewLogrusAdapterFromLogger(nil))
}

func TestMockLoggerCapturesEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Debug("debug msg")
	mock.Info("info msg", Field{Key: "count", Value: 3})
	mock.Warn("warn msg")
	mock.Error("error msg")

	assert.Len(t, mock.Entries, 4)
	assert.True(t, mock.HasEntry("DEBUG", "debug msg"))
	assert.True(t, mock.HasEntry("INFO", "info msg"))
	assert.True(t, mock.HasEntry("WARN", "warn msg"))
	assert.True(t, mock.HasEntry("ERROR", "error msg"))
	assert.False(t, mock.HasEntry("INFO", "never logged"))

	assert.Equal(t, []Field{{Key: "count", Value: 3}}, mock.Entries[1].Fields)
}

func TestMockLoggerWithError(t *testing.T) {
	mock := &MockLogger{}
	err := errors.New("boom")

	derived := mock.WithError(err)
	derived.Error("failed")

	entries := derived.(*MockLogger).Entries
	assert.Len(t, entries, 1)
	assert.Equal(t, err, entries[0].Error)
}

func TestMockLoggerWithFields(t *testing.T) {
	mock := &MockLogger{}

	derived := mock.WithField("a", 1).WithFields(Field{Key: "b", Value: 2})
	derived.Info("with context")

	entries := derived.(*MockLogger).Entries
	assert.Len(t, entries, 1)
	assert.Equal(t, []Field{{Key: "a", Value: 1}, {Key: "b", Value: 2}}, entries[0].Fields)
}
