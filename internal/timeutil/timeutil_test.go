package timeutil

import "testing"

func TestParseClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "midnight", input: "00:00:00", want: 0},
		{name: "last second of day", input: "23:59:59", want: 86399},
		{name: "mid morning", input: "10:30:15", want: 37815},
		{name: "trimmed whitespace", input: " 08:00:00 ", want: 28800},
		{name: "hour out of range", input: "24:00:00", wantErr: true},
		{name: "minute out of range", input: "10:60:00", wantErr: true},
		{name: "second out of range", input: "10:00:60", wantErr: true},
		{name: "negative hour", input: "-1:00:00", wantErr: true},
		{name: "missing component", input: "10:30", wantErr: true},
		{name: "not a time", input: "abc", wantErr: true},
		{name: "non-numeric component", input: "10:3x:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseClock(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("unexpected seconds for %q: want %d, got %d", tc.input, tc.want, got)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input int
		want  string
	}{
		{input: 0, want: "00:00:00"},
		{input: 37815, want: "10:30:15"},
		{input: 86399, want: "23:59:59"},
		{input: -5, want: "00:00:00"},
	}

	for _, tc := range tests {
		if got := FormatClock(tc.input); got != tc.want {
			t.Fatalf("unexpected clock for %d: want %q, got %q", tc.input, tc.want, got)
		}
	}
}
