package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		DebugLevel: zapcore.DebugLevel,
		InfoLevel:  zapcore.InfoLevel,
		WarnLevel:  zapcore.WarnLevel,
		ErrorLevel: zapcore.ErrorLevel,
		"verbose":  zapcore.InfoLevel,
		"":         zapcore.InfoLevel,
	}
	for input, want := range cases {
		if got := ParseLevel(input); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(WarnLevel, &buf)

	log.Infow("hidden", "phase", "work")
	log.Warnw("shown", "phase", "short_break")
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "shown") || !strings.Contains(out, "short_break") {
		t.Fatalf("expected warn line with fields, got %q", out)
	}
}

func TestGetIsSingleton(t *testing.T) {
	if Get(DebugLevel) != Get(ErrorLevel) {
		t.Fatalf("expected the same logger instance")
	}
}
