package logger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := New(true, true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = New(false, false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  cache_key  ", Value: "  matches:mentors:1  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	require.Len(t, fields, 1)
	assert.Equal(t, "cache_key", fields[0].Key)
	assert.Equal(t, "matches:mentors:1", fields[0].String)
	assert.Empty(t, StringFields())
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	id := uuid.New()

	WithFields(zap.New(core), StudentID(id)).Info("ranked")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, id.String(), entries[0].ContextMap()[FieldStudentID])

	fallback := WithFields(nil, zap.String("a", "b"))
	require.NotNil(t, fallback)
	fallback.Info("no panic")
}

func TestComponent(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	Component(zap.New(core), "cache").Info("hit")
	require.Len(t, observed.All(), 1)
	assert.Equal(t, "cache", observed.All()[0].LoggerName)

	assert.NotNil(t, Component(nil, "x"))
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "abc", TruncateForLog("  abc ", 5))
	assert.Equal(t, "ab...", TruncateForLog("abcdef", 2))
	assert.Equal(t, "", TruncateForLog("abc", 0))
}
