package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.WarnLevel},
		{"loud", zerolog.WarnLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestSetup_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup("warn", &buf)

	Get().Info().Msg("quiet")
	Get().Warn().Msg("loud")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "loud")
}

func TestWithComponentAndRun(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", &buf)

	l := WithRun(WithComponent("inline"), "abc-123")
	l.Debug().Msg("frame")

	out := buf.String()
	assert.Contains(t, out, "component=inline")
	assert.Contains(t, out, "run_id=abc-123")
	assert.Contains(t, out, "frame")
}

func TestGet_DefaultsWithoutSetup(t *testing.T) {
	mu.Lock()
	logger = nil
	mu.Unlock()

	require.NotNil(t, Get())
	assert.Equal(t, zerolog.WarnLevel, Get().GetLevel())
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tempus.log")
	f, err := OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	Setup("info", f)
	Get().Info().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
