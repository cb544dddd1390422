package output

import (
	"bytes"
	"encoding/json"
)

// jsonReport mirrors Report with JSON-friendly field types.
type jsonReport struct {
	SearchRoot string         `json:"search_root"`
	Libraries  []string       `json:"libraries"`
	Groups     []LibraryGroup `json:"groups"`
	Trash      TrashOutcome   `json:"trash"`
	Meta       jsonMeta       `json:"meta"`
}

type jsonMeta struct {
	TotalOrphans int    `json:"total_orphans"`
	TotalSize    int64  `json:"total_size"`
	Elapsed      string `json:"elapsed"`
}

// JSONFormatter formats the report as a single indented JSON object.
type JSONFormatter struct{}

// Format writes the formatted report to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Report) error {
	out := jsonReport{
		SearchRoot: r.SearchRoot,
		Libraries:  r.Libraries,
		Groups:     r.Groups,
		Trash:      r.Trash,
		Meta: jsonMeta{
			TotalOrphans: r.TotalOrphans(),
			TotalSize:    r.TotalSize(),
			Elapsed:      r.Elapsed.String(),
		},
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
