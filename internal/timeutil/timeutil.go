package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// SecondsPerDay is the wraparound span applied when a job crosses midnight.
const SecondsPerDay = 24 * 60 * 60

// ParseClock converts a strict HH:MM:SS value into seconds since midnight.
// Out-of-range components are rejected, never clamped.
func ParseClock(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("time must be in HH:MM:SS format, got %q", value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("parse hours %q: %w", parts[0], err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("parse minutes %q: %w", parts[1], err)
	}
	seconds, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, fmt.Errorf("parse seconds %q: %w", parts[2], err)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("time components out of range in %q", value)
	}

	return hours*3600 + minutes*60 + seconds, nil
}

// FormatClock renders seconds since midnight as HH:MM:SS.
func FormatClock(total int) string {
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
