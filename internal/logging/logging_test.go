package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		" DEBUG ": slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for input, want := range cases {
		got, err := ParseLevel(input)
		if err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		if got != want {
			t.Fatalf("%q: want %v, got %v", input, want, got)
		}
	}

	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestLogrSharesSlogHandler(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	if err := ConfigureWriter(&buf, LevelDebug); err != nil {
		t.Fatalf("configure: %v", err)
	}

	Logr().Info("wizard completed", "steps", 4)
	Logr().V(1).Info("moved next", "index", 1)

	out := buf.String()
	if !strings.Contains(out, "wizard completed") || !strings.Contains(out, "steps=4") {
		t.Fatalf("missing info record:\n%s", out)
	}
	if !strings.Contains(out, "moved next") {
		t.Fatalf("V(1) should map to debug and be emitted:\n%s", out)
	}
}

func TestConfigureWriterFiltersBelowLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	if err := ConfigureWriter(&buf, LevelWarn); err != nil {
		t.Fatalf("configure: %v", err)
	}
	slog.Info("hidden")
	slog.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
