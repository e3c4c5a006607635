// Package tracker correlates START/END log entries per pid, computes
// durations with midnight-rollover correction, and classifies completed jobs
// into alert tiers.
package tracker

import (
	"logmon/internal/timeutil"
	"logmon/joblog"
)

// Tracker matches START/END entries in input order. It is owned by a single
// caller for its whole lifetime (New -> Observe* -> Finalize -> read-only) and
// is not safe for concurrent use; parallel ingestion of independent logs needs
// one Tracker per input.
type Tracker struct {
	thresholds Thresholds

	// open holds unmatched records per pid in FIFO order: the earliest open
	// START for a pid is closed by the next END for that pid.
	open      map[joblog.PID][]*JobRecord
	openOrder []*JobRecord

	finished  []JobRecord
	orphans   []OrphanEnd
	finalized bool
}

// New returns an empty tracker using the given alert thresholds.
func New(thresholds Thresholds) *Tracker {
	return &Tracker{
		thresholds: thresholds,
		open:       make(map[joblog.PID][]*JobRecord),
		openOrder:  make([]*JobRecord, 0, 64),
		finished:   make([]JobRecord, 0, 64),
		orphans:    make([]OrphanEnd, 0),
	}
}

// Observe applies one entry. It never fails: anomalies become diagnostics.
func (t *Tracker) Observe(entry joblog.Entry) {
	switch entry.Action {
	case joblog.ActionStart:
		record := &JobRecord{
			PID:         entry.PID,
			Description: entry.Description,
			StartTime:   entry.TimeOfDay,
			Status:      StatusIncomplete,
		}
		t.open[entry.PID] = append(t.open[entry.PID], record)
		t.openOrder = append(t.openOrder, record)
	case joblog.ActionEnd:
		queue := t.open[entry.PID]
		if len(queue) == 0 {
			t.orphans = append(t.orphans, OrphanEnd{
				PID:         entry.PID,
				Description: entry.Description,
				TimeOfDay:   entry.TimeOfDay,
				Line:        entry.Line,
			})
			return
		}

		record := queue[0]
		t.open[entry.PID] = queue[1:]

		record.EndTime = entry.TimeOfDay
		record.DurationMinutes = durationMinutes(record.StartTime, record.EndTime)
		record.Status = StatusComplete
		record.Alert = t.thresholds.Classify(record.DurationMinutes)
		t.finished = append(t.finished, *record)
	}
}

// Finalize emits every still-open record as Incomplete, in the order the
// STARTs were observed, after all completed records. Calling it again is a
// no-op.
func (t *Tracker) Finalize() {
	if t.finalized {
		return
	}
	t.finalized = true

	for _, record := range t.openOrder {
		if record.Status == StatusComplete {
			continue
		}
		t.finished = append(t.finished, *record)
	}
	t.open = make(map[joblog.PID][]*JobRecord)
	t.openOrder = nil
}

// Records returns the finished collection: completed jobs in completion
// order, then incomplete jobs in the order they were opened.
func (t *Tracker) Records() []JobRecord {
	out := make([]JobRecord, len(t.finished))
	copy(out, t.finished)
	return out
}

// Orphans returns the END entries that never had a matching open START.
func (t *Tracker) Orphans() []OrphanEnd {
	out := make([]OrphanEnd, len(t.orphans))
	copy(out, t.orphans)
	return out
}

// durationMinutes assumes a job crossing midnight does so exactly once; spans
// longer than 24 hours are mis-measured as next-day wraparound.
func durationMinutes(start, end int) float64 {
	raw := end - start
	if raw < 0 {
		raw += timeutil.SecondsPerDay
	}
	return float64(raw) / 60.0
}
