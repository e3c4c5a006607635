package joblog

// Action is the lifecycle marker carried by a log line.
type Action string

const (
	ActionStart Action = "START"
	ActionEnd   Action = "END"
)

// PID correlates a START entry with its closing END. It is opaque and only
// required to be unique among currently-open jobs, not across a whole file.
type PID string

// Entry is one parsed log line, immutable once produced by the parser.
type Entry struct {
	TimeOfDay   int // seconds since midnight, [0, 86399]
	Description string
	Action      Action
	PID         PID
	Raw         string
	Line        int
}
