package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantErr   bool
	}{
		{"", false, false},
		{"info", false, false},
		{"DEBUG", true, false},
		{"warn", false, false},
		{"verbose", false, true},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, "test", tc.level)
			if (err != nil) != tc.wantErr {
				t.Fatalf("New(%q) error = %v, wantErr %v", tc.level, err, tc.wantErr)
			}
			if err != nil {
				return
			}
			logger.Debug("probe")
			if got := strings.Contains(buf.String(), "probe"); got != tc.wantDebug {
				t.Errorf("debug output = %v, expected %v", got, tc.wantDebug)
			}
		})
	}
}

func TestNewPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "tetris", "info")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("game started", "seed", 42)

	out := buf.String()
	for _, want := range []string{"tetris", "game started", "seed=42"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tetris.log")
	logger, closeFn, err := Open(path, "tetris", "info")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	logger.Info("hello")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, expected it to contain %q", data, "hello")
	}
}

func TestOpenEmptyPathDiscards(t *testing.T) {
	logger, closeFn, err := Open("", "tetris", "debug")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	logger.Info("dropped")
	if err := closeFn(); err != nil {
		t.Errorf("close: %v", err)
	}
}
