package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
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
		{name: "padded upper", input: "  ERROR ", want: slog.LevelError},
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

func TestOutputFallsBackToStderr(t *testing.T) {
	if got := output(""); got != os.Stderr {
		t.Fatalf("expected stderr for empty path, got %T", got)
	}
	missingDir := filepath.Join(t.TempDir(), "missing", "log.txt")
	if got := output(missingDir); got != os.Stderr {
		t.Fatalf("expected stderr for unopenable path, got %T", got)
	}
}

func TestOutputOpensFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assistant.log")
	w := output(path)
	f, ok := w.(*os.File)
	if !ok || f == os.Stderr {
		t.Fatalf("expected a log file, got %T", w)
	}
	defer f.Close()

	logger := slog.New(slog.NewTextHandler(f, nil))
	logger.Info("hello", "k", "v")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected log entry to be written")
	}
}

func TestNewScopesComponent(t *testing.T) {
	if New("") == nil || New("test") == nil {
		t.Fatal("expected non-nil loggers")
	}
}

func TestInitAppliesToExistingLoggers(t *testing.T) {
	logger := New("early")
	path := filepath.Join(t.TempDir(), "assistant.log")
	t.Setenv("CLI_ASSISTANT_LOG_FILE", path)
	t.Setenv("CLI_ASSISTANT_LOG_LEVEL", "debug")
	Init()
	t.Cleanup(func() {
		mu.Lock()
		if fh, ok := current.(fileHandler); ok {
			_ = fh.f.Close()
		}
		current = nil
		mu.Unlock()
	})

	logger.Debug("after init", "k", "v")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "after init") || !strings.Contains(got, "component=early") || !strings.Contains(got, "k=v") {
		t.Fatalf("expected debug entry with component in log file, got %q", got)
	}
}
