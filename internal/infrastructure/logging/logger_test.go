package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("info", &buf)

	logger.Debug("hidden")
	logger.Info("resolved destination", "path", "/tmp/A.desktop")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "deskgen: resolved destination")
	assert.Contains(t, out, "path=/tmp/A.desktop")
}

func TestNewLogger_OffDiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("off", &buf)

	logger.Error("should not appear")

	assert.Empty(t, buf.String())
}

func TestNewLogger_UnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("chatty", &buf)

	logger.Info("quiet")
	logger.Warn("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}
