package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"logmon/joblog"
)

// LineError records one malformed line skipped during a run.
type LineError struct {
	Line   int
	Raw    string
	Reason string
}

// Result is the outcome of a single ingestion pass.
type Result struct {
	LinesRead int
	Entries   []joblog.Entry
	Malformed []LineError
}

// Parse reads raw lines from r in a single pass. Blank lines are skipped
// silently; malformed lines are recorded as diagnostics and never abort the
// run. Only a failure of the source itself is returned as an error.
func Parse(r io.Reader) (*Result, error) {
	result := &Result{
		Entries:   make([]joblog.Entry, 0, 128),
		Malformed: make([]LineError, 0),
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		result.LinesRead++

		raw := scanner.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}

		entry, err := ParseLine(raw, line)
		if err != nil {
			result.Malformed = append(result.Malformed, LineError{
				Line:   line,
				Raw:    raw,
				Reason: err.Error(),
			})
			continue
		}
		result.Entries = append(result.Entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log input: %w", err)
	}

	return result, nil
}

// ParseFile opens path and parses its contents.
func ParseFile(path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	defer file.Close()

	return Parse(file)
}
