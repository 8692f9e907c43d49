package ui

import (
	"math"
	"strings"
	"testing"

	"yaplc/internal/driver"
)

func TestProgressModelTracksFiles(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("checking 2 files", []string{"a.json", "b.json"}, events).(*progressModel)

	m.Update(eventMsg{File: "a.json", Stage: driver.StageSema, Status: driver.StatusWorking})
	m.Update(eventMsg{File: "b.json", Status: driver.StatusError})
	m.Update(eventMsg{File: "unknown.json", Status: driver.StatusDone})

	if m.items[0].status != "checking" || m.items[1].status != "error" {
		t.Fatalf("unexpected statuses: %+v", m.items)
	}
	if got := m.percent(); math.Abs(got-0.8) > 1e-9 {
		t.Fatalf("percent = %v, want 0.8", got)
	}

	m.Update(doneMsg{})
	view := m.View()
	for _, want := range []string{"done: checking 2 files", "a.json", "b.json", "error"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view lacks %q:\n%s", want, view)
		}
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"short.json", 20, "short.json"},
		{"very/long/path/program.json", 10, "very/lo..."},
		{"abcdef", 2, "ab"},
		{"abc", 0, "abc"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}
