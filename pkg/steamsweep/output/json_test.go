package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/yaml.v3"
)

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONFormatter{}).Format(&buf, sampleReport()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "/home/user", decoded["search_root"])

	meta, ok := decoded["meta"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 2, meta["total_orphans"])

	groups, ok := decoded["groups"].([]any)
	require.True(t, ok)
	require.Len(t, groups, 1)
}

func TestJSONFormatter_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONFormatter{}).Format(&buf, &Report{SearchRoot: "/x"}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	meta := decoded["meta"].(map[string]any)
	assert.EqualValues(t, 0, meta["total_orphans"])
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&YAMLFormatter{}).Format(&buf, sampleReport()))

	var decoded struct {
		SearchRoot   string `yaml:"search_root"`
		TotalOrphans int    `yaml:"total_orphans"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "/home/user", decoded.SearchRoot)
	assert.Equal(t, 2, decoded.TotalOrphans)
}
