package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json handler", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := New("info", "json", &buf)
		require.NoError(t, err)

		log.Info("pushed", "text", "Acme")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "pushed", line["msg"])
		assert.Equal(t, "Acme", line["text"])
	})

	t.Run("level filters", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := New("warn", "text", &buf)
		require.NoError(t, err)

		log.Info("dropped")
		assert.Empty(t, buf.String())
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := New("loud", "text", nil)
		assert.ErrorContains(t, err, "invalid log level")
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := New("info", "xml", nil)
		assert.ErrorContains(t, err, "invalid log format")
	})
}
