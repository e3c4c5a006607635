package output

import (
	"fmt"
	"strings"

	"logmon/tracker"
)

// Writer exports the finalized job record listing to a file.
type Writer interface {
	Write(path string, records []tracker.JobRecord) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
