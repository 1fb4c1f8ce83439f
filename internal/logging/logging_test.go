package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestSetup(t *testing.T) {
	var buf bytes.Buffer
	logger, err := Setup(&buf, "warn", true)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "basin", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"basin":3`)

	buf.Reset()
	logger, err = Setup(&buf, "debug", false)
	require.NoError(t, err)
	logger.Debug("text", "k", "v")
	assert.Contains(t, buf.String(), "msg=text k=v")
}
