package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *Report {
	return &Report{
		SearchRoot: "/home/user",
		Libraries:  []string{"/home/user/SteamLibrary/steamapps"},
		Groups: []LibraryGroup{
			{
				Library: "/home/user/SteamLibrary/steamapps",
				Orphans: []Orphan{
					{
						Path:      "/home/user/SteamLibrary/steamapps/common/OldGame",
						Name:      "OldGame",
						Size:      5 << 30,
						SizeHuman: FormatSize(5 << 30),
					},
					{
						Path:      "/home/user/SteamLibrary/steamapps/common/Relic",
						Name:      "Relic",
						Size:      1 << 20,
						SizeHuman: FormatSize(1 << 20),
					},
				},
			},
		},
		Trash: TrashOutcome{
			Trashed: []string{"/home/user/SteamLibrary/steamapps/common/OldGame"},
			Failed: []TrashFailure{
				{Path: "/home/user/SteamLibrary/steamapps/common/Relic", Reason: "permission denied"},
			},
		},
		Elapsed: 120 * time.Millisecond,
	}
}

func TestReport_Totals(t *testing.T) {
	r := sampleReport()
	assert.Equal(t, 2, r.TotalOrphans())
	assert.Equal(t, int64(5<<30)+int64(1<<20), r.TotalSize())
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0 B", FormatSize(0))
	assert.Equal(t, "1.0 KiB", FormatSize(1024))
	assert.Equal(t, "5.0 GiB", FormatSize(5<<30))
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Register("test", func() Formatter { return &PlainFormatter{} })

	f, err := reg.Get("test")
	require.NoError(t, err)
	assert.NotNil(t, f)

	_, err = reg.Get("nonexistent")
	assert.Error(t, err)
}

func TestDefaultRegistry_BuiltinFormatters(t *testing.T) {
	assert.Equal(t, []string{"json", "plain", "pretty", "yaml"}, Available())

	for _, name := range Available() {
		f, err := Get(name)
		require.NoError(t, err, name)

		var buf bytes.Buffer
		require.NoError(t, f.Format(&buf, sampleReport()), name)
		assert.NotEmpty(t, buf.String(), name)
	}
}
