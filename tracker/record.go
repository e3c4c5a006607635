package tracker

import "logmon/joblog"

// Status tags whether a job's END was ever observed.
type Status string

const (
	StatusComplete   Status = "Complete"
	StatusIncomplete Status = "Incomplete"
)

// AlertLevel is the severity tier derived from a completed job's duration.
type AlertLevel string

const (
	AlertOK      AlertLevel = "OK"
	AlertWarning AlertLevel = "WARNING"
	AlertError   AlertLevel = "ERROR"
)

// JobRecord is one matched (or abandoned) job. EndTime, DurationMinutes and
// Alert are meaningful only when Status is StatusComplete; consumers must
// check the status tag before reading them.
type JobRecord struct {
	PID             joblog.PID
	Description     string
	StartTime       int // seconds since midnight
	EndTime         int
	DurationMinutes float64
	Status          Status
	Alert           AlertLevel
}

// Complete reports whether the record carries an end time and duration.
func (r JobRecord) Complete() bool {
	return r.Status == StatusComplete
}

// OrphanEnd records an END entry that had no open START for its pid.
type OrphanEnd struct {
	PID         joblog.PID
	Description string
	TimeOfDay   int
	Line        int
}

// Thresholds hold the alert tier boundaries in minutes. Boundary values are
// inclusive to the lower tier.
type Thresholds struct {
	WarningMinutes float64
	ErrorMinutes   float64
}

// DefaultThresholds returns the standard 5/10 minute tiers.
func DefaultThresholds() Thresholds {
	return Thresholds{WarningMinutes: 5, ErrorMinutes: 10}
}

// Classify maps an unrounded duration onto an alert level.
func (t Thresholds) Classify(durationMinutes float64) AlertLevel {
	switch {
	case durationMinutes <= t.WarningMinutes:
		return AlertOK
	case durationMinutes <= t.ErrorMinutes:
		return AlertWarning
	default:
		return AlertError
	}
}
