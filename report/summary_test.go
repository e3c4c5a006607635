package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"logmon/tracker"
)

func TestBuild_CountsAndDurations(t *testing.T) {
	t.Parallel()

	records := []tracker.JobRecord{
		{PID: "1", Status: tracker.StatusComplete, DurationMinutes: 2.5, Alert: tracker.AlertOK},
		{PID: "2", Status: tracker.StatusComplete, DurationMinutes: 7.0, Alert: tracker.AlertWarning},
		{PID: "3", Status: tracker.StatusComplete, DurationMinutes: 12.0, Alert: tracker.AlertError},
		{PID: "4", Status: tracker.StatusIncomplete},
	}

	summary := Build(records, 1)

	if summary.TotalJobs != 4 {
		t.Fatalf("expected 4 total jobs, got %d", summary.TotalJobs)
	}
	if summary.CompletedJobs != 3 || summary.IncompleteJobs != 1 {
		t.Fatalf("unexpected completed/incomplete: %d/%d", summary.CompletedJobs, summary.IncompleteJobs)
	}
	if summary.CompletedJobs+summary.IncompleteJobs != summary.TotalJobs {
		t.Fatalf("completed + incomplete must equal total")
	}
	if summary.WarningJobs != 1 || summary.ErrorJobs != 1 {
		t.Fatalf("unexpected warning/error counts: %d/%d", summary.WarningJobs, summary.ErrorJobs)
	}
	if summary.OrphanEnds != 1 {
		t.Fatalf("expected 1 orphan end, got %d", summary.OrphanEnds)
	}
	if !summary.HasDurations {
		t.Fatalf("expected duration statistics to be defined")
	}
	if math.Abs(summary.AvgDurationMinutes-7.1666666667) > 1e-6 {
		t.Fatalf("unexpected average %v", summary.AvgDurationMinutes)
	}
	if summary.MinDurationMinutes != 2.5 || summary.MaxDurationMinutes != 12.0 {
		t.Fatalf("unexpected min/max: %v/%v", summary.MinDurationMinutes, summary.MaxDurationMinutes)
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	t.Parallel()

	summary := Build(nil, 0)
	if summary.TotalJobs != 0 || summary.CompletedJobs != 0 || summary.IncompleteJobs != 0 {
		t.Fatalf("expected zero counts, got %+v", summary)
	}
	if summary.HasDurations {
		t.Fatalf("expected undefined durations for empty input")
	}
}

func TestBuild_IncompleteOnlyLeavesDurationsUndefined(t *testing.T) {
	t.Parallel()

	records := []tracker.JobRecord{
		{PID: "555", Status: tracker.StatusIncomplete},
	}
	summary := Build(records, 0)
	if summary.TotalJobs != 1 || summary.IncompleteJobs != 1 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
	if summary.HasDurations {
		t.Fatalf("expected undefined durations with no completed jobs")
	}
}

func TestBuild_Idempotent(t *testing.T) {
	t.Parallel()

	records := []tracker.JobRecord{
		{PID: "1", Status: tracker.StatusComplete, DurationMinutes: 3, Alert: tracker.AlertOK},
		{PID: "2", Status: tracker.StatusIncomplete},
	}

	first := Build(records, 2)
	second := Build(records, 2)
	if first != second {
		t.Fatalf("expected identical summaries, got %+v vs %+v", first, second)
	}
}

func TestFormatMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		minutes float64
		want    string
	}{
		{minutes: 0.5, want: "30s"},
		{minutes: 2.5, want: "2.5m"},
		{minutes: 7.0, want: "7.0m"},
		{minutes: 59.9, want: "59.9m"},
		{minutes: 60, want: "1h 0m"},
		{minutes: 125, want: "2h 5m"},
	}

	for _, tc := range tests {
		if got := FormatMinutes(tc.minutes); got != tc.want {
			t.Fatalf("unexpected format for %v: want %q, got %q", tc.minutes, tc.want, got)
		}
	}
}

func TestRender_EmptyInputStillRenders(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Render(&buf, Build(nil, 0), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Total jobs:      0") {
		t.Fatalf("expected zero total in report, got:\n%s", out)
	}
	if !strings.Contains(out, "Duration (average): n/a") {
		t.Fatalf("expected n/a average in report, got:\n%s", out)
	}
	if !strings.Contains(out, "No jobs found.") {
		t.Fatalf("expected empty detail notice, got:\n%s", out)
	}
}

func TestRender_DetailRows(t *testing.T) {
	t.Parallel()

	records := []tracker.JobRecord{
		{PID: "12345", Description: "Data processing job", Status: tracker.StatusComplete, DurationMinutes: 2.5, Alert: tracker.AlertOK},
		{PID: "555", Description: "never ends", Status: tracker.StatusIncomplete},
	}

	var buf bytes.Buffer
	if err := Render(&buf, Build(records, 0), records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"12345", "Data processing job", "2.5m", "Complete", "never ends", "Incomplete", "n/a"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected report to contain %q, got:\n%s", want, out)
		}
	}
}

func TestDurationAndAlertCells(t *testing.T) {
	t.Parallel()

	complete := tracker.JobRecord{Status: tracker.StatusComplete, DurationMinutes: 7, Alert: tracker.AlertWarning}
	incomplete := tracker.JobRecord{Status: tracker.StatusIncomplete}

	if got := DurationCell(complete); got != "7.0m" {
		t.Fatalf("unexpected duration cell %q", got)
	}
	if got := DurationCell(incomplete); got != "n/a" {
		t.Fatalf("unexpected incomplete duration cell %q", got)
	}
	if got := AlertCell(complete); got != "WARNING" {
		t.Fatalf("unexpected alert cell %q", got)
	}
	if got := AlertCell(incomplete); got != "" {
		t.Fatalf("expected blank alert cell, got %q", got)
	}
}
