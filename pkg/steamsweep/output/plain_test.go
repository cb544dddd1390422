package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&PlainFormatter{}).Format(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "SIZE")
	assert.Contains(t, out, "PATH")
	assert.Contains(t, out, "common/OldGame")
	assert.Contains(t, out, "trashed 1, failed 1")
}

func TestPlainFormatter_DryRun(t *testing.T) {
	r := sampleReport()
	r.Trash = TrashOutcome{DryRun: true}

	var buf bytes.Buffer
	require.NoError(t, (&PlainFormatter{}).Format(&buf, r))
	assert.Contains(t, buf.String(), "dry run")
}

func TestPlainFormatter_Declined(t *testing.T) {
	r := sampleReport()
	r.Trash = TrashOutcome{Declined: true}

	var buf bytes.Buffer
	require.NoError(t, (&PlainFormatter{}).Format(&buf, r))
	assert.Contains(t, buf.String(), "cancelled")
}

func TestPlainFormatter_TrashUnavailable(t *testing.T) {
	r := sampleReport()
	r.Trash = TrashOutcome{Skipped: true}

	var buf bytes.Buffer
	require.NoError(t, (&PlainFormatter{}).Format(&buf, r))
	assert.Contains(t, buf.String(), "trash unavailable")
}

func TestPrettyFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&PrettyFormatter{}).Format(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "OldGame")
	assert.Contains(t, out, "steamapps")
}

func TestPrettyFormatter_NoOrphans(t *testing.T) {
	r := &Report{SearchRoot: "/x", Libraries: []string{"/x/steamapps"}}

	var buf bytes.Buffer
	require.NoError(t, (&PrettyFormatter{}).Format(&buf, r))
	assert.True(t, strings.Contains(buf.String(), "No orphaned game directories"))
}
