package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{name: "default", input: "", want: slog.LevelInfo},
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "warn alias", input: "warning", want: slog.LevelWarn},
		{name: "error", input: " ERROR ", want: slog.LevelError},
		{name: "invalid", input: "nope", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Fatalf("parseLevel(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOpenOutput(t *testing.T) {
	if got := openOutput(""); got != os.Stderr {
		t.Fatalf("expected stderr for empty path, got %T", got)
	}
	if got := openOutput(filepath.Join(t.TempDir(), "missing", "dir", "log.txt")); got != os.Stderr {
		t.Fatalf("expected stderr for unusable path, got %T", got)
	}

	path := filepath.Join(t.TempDir(), "mathmark.log")
	w := openOutput(path)
	f, ok := w.(*os.File)
	if !ok {
		t.Fatalf("expected a file writer, got %T", w)
	}
	defer f.Close()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected log file to be created: %v", err)
	}
}
