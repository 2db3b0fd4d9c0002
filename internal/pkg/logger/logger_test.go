package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := Component(New("production", &buf), "matching")

	l.Debug("hidden")
	l.Info("ranked", "jobs", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ranked", rec["msg"])
	assert.Equal(t, "matching", rec["component"])
	assert.EqualValues(t, 3, rec["jobs"])
}

func TestNew_DevelopmentIsVerboseText(t *testing.T) {
	var buf bytes.Buffer
	l := New("development", &buf)

	l.Debug("cache miss", "key", "jobs:list:abc")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "key=jobs:list:abc")
}
