package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"logmon/tracker"
)

const lineWidth = 60

// Render writes the full text report: a banner, the summary statistics, and
// the per-job detail table in finalized order.
func Render(w io.Writer, summary Summary, records []tracker.JobRecord) error {
	writeHeader(w, " JOB MONITORING REPORT ")
	writeSeparator(w)
	writeStatistics(w, summary)
	writeSeparator(w)
	return writeDetail(w, records)
}

func writeHeader(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", lineWidth))
	padding := (lineWidth - len(title)) / 2
	if padding < 0 {
		padding = 0
	}
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", padding), title)
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", lineWidth))
}

func writeSeparator(w io.Writer) {
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", lineWidth))
}

func writeStatistics(w io.Writer, summary Summary) {
	fmt.Fprintln(w, "SUMMARY STATISTICS")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total jobs:      %d\n", summary.TotalJobs)
	fmt.Fprintf(w, "Completed jobs:  %d\n", summary.CompletedJobs)
	fmt.Fprintf(w, "Incomplete jobs: %d\n", summary.IncompleteJobs)
	fmt.Fprintf(w, "Warnings:        %d\n", summary.WarningJobs)
	fmt.Fprintf(w, "Errors:          %d\n", summary.ErrorJobs)
	if summary.OrphanEnds > 0 {
		fmt.Fprintf(w, "Orphan END entries: %d\n", summary.OrphanEnds)
	}

	fmt.Fprintf(w, "Duration (average): %s\n", durationOrNA(summary, summary.AvgDurationMinutes))
	fmt.Fprintf(w, "Duration (minimum): %s\n", durationOrNA(summary, summary.MinDurationMinutes))
	fmt.Fprintf(w, "Duration (maximum): %s\n", durationOrNA(summary, summary.MaxDurationMinutes))
}

func writeDetail(w io.Writer, records []tracker.JobRecord) error {
	fmt.Fprintln(w, "JOB DETAILS")
	fmt.Fprintln(w)
	if len(records) == 0 {
		fmt.Fprintln(w, "No jobs found.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("PID", "Description", "Duration", "Status", "Alert")
	for _, record := range records {
		table.Append(
			string(record.PID),
			record.Description,
			DurationCell(record),
			string(record.Status),
			AlertCell(record),
		)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render detail table: %w", err)
	}
	return nil
}

// DurationCell renders a record's duration, or "n/a" for incomplete jobs.
func DurationCell(record tracker.JobRecord) string {
	if !record.Complete() {
		return "n/a"
	}
	return FormatMinutes(record.DurationMinutes)
}

// AlertCell renders a record's alert level, blank for incomplete jobs.
func AlertCell(record tracker.JobRecord) string {
	if !record.Complete() {
		return ""
	}
	return string(record.Alert)
}

func durationOrNA(summary Summary, minutes float64) string {
	if !summary.HasDurations {
		return "n/a"
	}
	return FormatMinutes(minutes)
}
