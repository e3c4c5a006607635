// Package parser converts raw CSV log lines into structured joblog entries.
//
// Expected line layout: HH:MM:SS,description,action,pid. Descriptions must not
// contain commas; there is no quoting support, so a line that does not split
// into exactly four fields is malformed.
package parser

import (
	"fmt"
	"strings"

	"logmon/internal/timeutil"
	"logmon/joblog"
)

// ParseLine parses a single raw log line into an entry. The action field is
// matched case-insensitively and normalized to the Action enum.
func ParseLine(raw string, line int) (joblog.Entry, error) {
	fields := strings.Split(raw, ",")
	if len(fields) != 4 {
		return joblog.Entry{}, fmt.Errorf("expected 4 comma-separated fields, got %d", len(fields))
	}

	timeOfDay, err := timeutil.ParseClock(fields[0])
	if err != nil {
		return joblog.Entry{}, fmt.Errorf("invalid timestamp: %w", err)
	}

	action, err := parseAction(fields[2])
	if err != nil {
		return joblog.Entry{}, err
	}

	pid := strings.TrimSpace(fields[3])
	if pid == "" {
		return joblog.Entry{}, fmt.Errorf("pid must not be empty")
	}

	return joblog.Entry{
		TimeOfDay:   timeOfDay,
		Description: strings.TrimSpace(fields[1]),
		Action:      action,
		PID:         joblog.PID(pid),
		Raw:         raw,
		Line:        line,
	}, nil
}

func parseAction(value string) (joblog.Action, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case string(joblog.ActionStart):
		return joblog.ActionStart, nil
	case string(joblog.ActionEnd):
		return joblog.ActionEnd, nil
	default:
		return "", fmt.Errorf("invalid action %q, expected START or END", strings.TrimSpace(value))
	}
}
