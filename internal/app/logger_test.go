package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{level: "debug", wantDebug: true, wantInfo: true},
		{level: "DEBUG", wantDebug: true, wantInfo: true},
		{level: "info", wantInfo: true},
		{level: "", wantInfo: true},
		{level: "nonsense", wantInfo: true},
		{level: "warn"},
		{level: "error"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run("level="+tc.level, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logger := newLogger(tc.level, "text", &buf)

			logger.Debug("debug-line")
			logger.Info("info-line")

			assert.Equal(t, tc.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug-line")))
			assert.Equal(t, tc.wantInfo, bytes.Contains(buf.Bytes(), []byte("info-line")))
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	newLogger("info", "json", &buf).Info("Executing command: drush st", "task", "st")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Executing command: drush st", entry["msg"])
	assert.Equal(t, "st", entry["task"])
}
