package cmdutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLevelForMonitor(t *testing.T) {
	cases := map[int]log.Level{0: log.WarnLevel, 1: log.InfoLevel, 2: log.DebugLevel, 5: log.DebugLevel}
	for m, want := range cases {
		if got := LevelForMonitor(m); got != want {
			t.Fatalf("monitor %d: got %v, want %v", m, got, want)
		}
	}
}

func TestNewLoggerGatesByMonitor(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, 0)
	l.Info("hidden")
	l.Warn("shown", "accession", "abc")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info leaked at monitor 0: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "abc") {
		t.Fatalf("warn missing: %q", out)
	}
}
