package output

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// yamlReport mirrors Report with YAML-friendly field types.
type yamlReport struct {
	SearchRoot   string         `yaml:"search_root"`
	Libraries    []string       `yaml:"libraries"`
	Groups       []LibraryGroup `yaml:"groups"`
	Trash        TrashOutcome   `yaml:"trash"`
	TotalOrphans int            `yaml:"total_orphans"`
	TotalSize    int64          `yaml:"total_size"`
	Elapsed      string         `yaml:"elapsed"`
}

// YAMLFormatter formats the report as a YAML document.
type YAMLFormatter struct{}

// Format writes the formatted report to the buffer.
func (f *YAMLFormatter) Format(w *bytes.Buffer, r *Report) error {
	out := yamlReport{
		SearchRoot:   r.SearchRoot,
		Libraries:    r.Libraries,
		Groups:       r.Groups,
		Trash:        r.Trash,
		TotalOrphans: r.TotalOrphans(),
		TotalSize:    r.TotalSize(),
		Elapsed:      r.Elapsed.String(),
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(out); err != nil {
		return err
	}
	return encoder.Close()
}

func init() {
	Register("yaml", func() Formatter {
		return &YAMLFormatter{}
	})
}

// Ensure YAMLFormatter implements Formatter.
var _ Formatter = (*YAMLFormatter)(nil)
