package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetupLoggerLevel(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	l := SetupLogger("prod", "warn")
	assert.False(t, l.Core().Enabled(zap.InfoLevel))
	assert.True(t, l.Core().Enabled(zap.WarnLevel))

	l = SetupLogger("local", "not-a-level")
	assert.True(t, l.Core().Enabled(zap.InfoLevel))
	assert.Same(t, l, Logger())
}

func TestPackageHelpersUseGlobalLogger(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))

	Debug("debug message")
	Info("info message", zap.String("email", "a@x.com"))
	Warn("warn message")
	Error("error message")

	entries := logs.All()
	if assert.Len(t, entries, 4) {
		assert.Equal(t, "info message", entries[1].Message)
		assert.Equal(t, "a@x.com", entries[1].ContextMap()["email"])
		assert.Equal(t, zap.ErrorLevel, entries[3].Level)
	}
}
