package web

import (
	"strings"

	"logmon/internal/timeutil"
	"logmon/report"
	"logmon/tracker"
)

// JobRow is one rendered detail row for the dashboard table and JSON API.
type JobRow struct {
	PID         string `json:"pid"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Duration    string `json:"duration"`
	Status      string `json:"status"`
	Alert       string `json:"alert"`
}

// FilterJobs is a pure, non-mutating view over the finalized record
// collection. Empty or "all" filter values match everything; the alert filter
// only ever matches completed records.
func FilterJobs(records []tracker.JobRecord, status, alert string) []tracker.JobRecord {
	status = normalizeFilter(status)
	alert = normalizeFilter(alert)

	out := make([]tracker.JobRecord, 0, len(records))
	for _, record := range records {
		if status != "" && !strings.EqualFold(string(record.Status), status) {
			continue
		}
		if alert != "" {
			if !record.Complete() || !strings.EqualFold(string(record.Alert), alert) {
				continue
			}
		}
		out = append(out, record)
	}
	return out
}

func normalizeFilter(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "all" {
		return ""
	}
	return value
}

// BuildJobRows renders records into display rows, preserving order.
func BuildJobRows(records []tracker.JobRecord) []JobRow {
	rows := make([]JobRow, 0, len(records))
	for _, record := range records {
		row := JobRow{
			PID:         string(record.PID),
			Description: record.Description,
			Start:       timeutil.FormatClock(record.StartTime),
			Duration:    report.DurationCell(record),
			Status:      string(record.Status),
			Alert:       report.AlertCell(record),
		}
		if record.Complete() {
			row.End = timeutil.FormatClock(record.EndTime)
		}
		rows = append(rows, row)
	}
	return rows
}
