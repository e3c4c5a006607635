package web

import (
	"testing"

	"logmon/tracker"
)

func sampleRecords() []tracker.JobRecord {
	return []tracker.JobRecord{
		{PID: "1", Description: "quick", StartTime: 100, EndTime: 220, DurationMinutes: 2, Status: tracker.StatusComplete, Alert: tracker.AlertOK},
		{PID: "2", Description: "slow", StartTime: 200, EndTime: 800, DurationMinutes: 10, Status: tracker.StatusComplete, Alert: tracker.AlertWarning},
		{PID: "3", Description: "stuck", StartTime: 300, Status: tracker.StatusIncomplete},
	}
}

func TestFilterJobs(t *testing.T) {
	t.Parallel()

	records := sampleRecords()

	tests := []struct {
		name     string
		status   string
		alert    string
		wantPIDs []string
	}{
		{name: "no filters", wantPIDs: []string{"1", "2", "3"}},
		{name: "all keyword", status: "all", alert: "All", wantPIDs: []string{"1", "2", "3"}},
		{name: "complete only", status: "complete", wantPIDs: []string{"1", "2"}},
		{name: "incomplete only", status: "Incomplete", wantPIDs: []string{"3"}},
		{name: "warning alert", alert: "warning", wantPIDs: []string{"2"}},
		{name: "alert never matches incomplete", status: "incomplete", alert: "ok", wantPIDs: []string{}},
		{name: "combined", status: "complete", alert: "OK", wantPIDs: []string{"1"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := FilterJobs(records, tc.status, tc.alert)
			if len(got) != len(tc.wantPIDs) {
				t.Fatalf("expected %d records, got %d", len(tc.wantPIDs), len(got))
			}
			for i, pid := range tc.wantPIDs {
				if string(got[i].PID) != pid {
					t.Fatalf("expected pid %q at index %d, got %q", pid, i, got[i].PID)
				}
			}
		})
	}
}

func TestFilterJobs_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	FilterJobs(records, "complete", "ok")

	if len(records) != 3 || records[2].Status != tracker.StatusIncomplete {
		t.Fatalf("input collection was mutated: %+v", records)
	}
}

func TestBuildJobRows(t *testing.T) {
	t.Parallel()

	rows := BuildJobRows(sampleRecords())
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Start != "00:01:40" || rows[0].End != "00:03:40" {
		t.Fatalf("unexpected clock rendering: %+v", rows[0])
	}
	if rows[2].End != "" || rows[2].Duration != "n/a" || rows[2].Alert != "" {
		t.Fatalf("expected blank end/alert and n/a duration for incomplete row: %+v", rows[2])
	}
}
