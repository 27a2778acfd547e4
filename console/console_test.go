package console

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_WritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Configure("debug", &buf))
	t.Cleanup(func() { _ = Configure("", nil) })

	Warn("renderer not mounted", "component", "counter", "renders", 3)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "renderer not mounted", line["message"])
	assert.Equal(t, "counter", line["component"])
	assert.EqualValues(t, 3, line["renders"])
}

func TestConfigure_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Configure("warn", &buf))
	t.Cleanup(func() { _ = Configure("", nil) })

	Debug("hidden")
	Log("hidden")
	assert.Zero(t, buf.Len())

	Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestConfigure_RejectsUnknownLevel(t *testing.T) {
	err := Configure("loud", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `log level "loud"`)
}
