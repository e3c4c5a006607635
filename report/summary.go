// Package report aggregates finished job records into summary statistics and
// renders them as a plain-text report.
package report

import (
	"fmt"

	"logmon/tracker"
)

// Summary is recomputed fresh from the full record collection on every build;
// it is never mutated incrementally.
type Summary struct {
	TotalJobs      int
	CompletedJobs  int
	IncompleteJobs int
	WarningJobs    int
	ErrorJobs      int
	OrphanEnds     int

	// Duration statistics cover completed jobs only. When HasDurations is
	// false there were no completed jobs and the values are undefined.
	HasDurations       bool
	AvgDurationMinutes float64
	MinDurationMinutes float64
	MaxDurationMinutes float64
}

// Build computes a summary over the finalized record collection. The input is
// treated as read-only.
func Build(records []tracker.JobRecord, orphanEnds int) Summary {
	summary := Summary{
		TotalJobs:  len(records),
		OrphanEnds: orphanEnds,
	}

	total := 0.0
	for _, record := range records {
		if !record.Complete() {
			summary.IncompleteJobs++
			continue
		}
		summary.CompletedJobs++

		switch record.Alert {
		case tracker.AlertWarning:
			summary.WarningJobs++
		case tracker.AlertError:
			summary.ErrorJobs++
		}

		minutes := record.DurationMinutes
		total += minutes
		if !summary.HasDurations || minutes < summary.MinDurationMinutes {
			summary.MinDurationMinutes = minutes
		}
		if !summary.HasDurations || minutes > summary.MaxDurationMinutes {
			summary.MaxDurationMinutes = minutes
		}
		summary.HasDurations = true
	}

	if summary.CompletedJobs > 0 {
		summary.AvgDurationMinutes = total / float64(summary.CompletedJobs)
	}

	return summary
}

// FormatMinutes renders a fractional duration for display: sub-minute values
// in seconds, sub-hour values in minutes, longer values as hours and minutes.
func FormatMinutes(minutes float64) string {
	switch {
	case minutes < 1:
		return fmt.Sprintf("%ds", int(minutes*60))
	case minutes < 60:
		return fmt.Sprintf("%.1fm", minutes)
	default:
		hours := int(minutes) / 60
		remainder := int(minutes) % 60
		return fmt.Sprintf("%dh %dm", hours, remainder)
	}
}
