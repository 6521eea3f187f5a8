package colors

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogRequiresDebug(t *testing.T) {
	SetDebug(false)
	out := capture(t, &os.Stderr, func() {
		StructuredInfo("startup", "main", "started", nil, nil)
	})
	assert.Empty(t, out)
}

func TestStructuredLogWritesJSON(t *testing.T) {
	SetDebug(true)
	defer SetDebug(false)

	out := capture(t, &os.Stderr, func() {
		StructuredError("startup", "main", "failed", errors.New("boom"), map[string]interface{}{"page": "home"})
	})

	var entry StructuredLogEntry
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &entry))
	assert.Equal(t, LevelError, entry.Level)
	assert.Equal(t, "startup", entry.Component)
	assert.Equal(t, "boom", entry.Error)
	assert.Equal(t, "home", entry.Fields["page"])
}

func TestStructuredLogCanBeDisabled(t *testing.T) {
	SetDebug(true)
	defer SetDebug(false)
	DisableStructuredLogging()
	defer EnableStructuredLogging()

	out := capture(t, &os.Stderr, func() {
		StructuredInfo("tui", "start", "ok", nil, nil)
	})
	assert.Empty(t, out)
}
