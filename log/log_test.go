package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestZeroLoggerDiscards(t *testing.T) {
	var l Logger
	l.Trace("a")
	l.Debug("b")
	l.Info("c")
	l.Warn("d")
	l.Error("e", slog.String("k", "v"))
	l.With(slog.String("k", "v")).Info("f")
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := Make(&buf, WithLevel(LevelWarn))

	l.Info("quiet")
	if buf.Len() != 0 {
		t.Fatalf("info leaked through warn level: %q", buf.String())
	}

	l.Warn("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Fatalf("warn message missing: %q", buf.String())
	}
}

func TestLoggerTraceLabel(t *testing.T) {
	var buf bytes.Buffer
	l := Make(&buf, WithLevel(LevelTrace))

	l.Trace("deep")
	out := buf.String()
	if !strings.Contains(out, "TRACE") {
		t.Fatalf("trace level not labeled TRACE: %q", out)
	}
	if strings.Contains(out, "DEBUG-4") {
		t.Fatalf("raw slog level leaked: %q", out)
	}
}

func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := Make(&buf, WithFormat(FormatJSON))

	l.Info("hello", slog.Int("n", 3))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v: %q", err, buf.String())
	}
	if rec["msg"] != "hello" || rec["n"] != float64(3) {
		t.Fatalf("record = %v", rec)
	}
}

func TestLoggerWrapOverrides(t *testing.T) {
	var buf bytes.Buffer
	l := Make(&buf, WithLevel(LevelError))

	l.Wrap(WithLevel(LevelDebug)).Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Fatalf("wrapped logger kept old level: %q", buf.String())
	}
	if l.Level() != LevelError {
		t.Fatalf("Wrap mutated the receiver: %v", l.Level())
	}
}

func TestLoggerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := Make(&buf, WithFormat(FormatJSON)).With(slog.String("app", "iskierka"))

	l.Info("tagged")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatal(err)
	}
	if rec["app"] != "iskierka" {
		t.Fatalf("attribute missing: %v", rec)
	}
}

func TestPrettyHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Make(&buf, WithPretty(true), WithTimeLayout("none"))

	l.Info("colored", slog.String("k", "v"))
	out := buf.String()
	if !strings.Contains(out, "colored") || !strings.Contains(out, "\x1b[") {
		t.Fatalf("pretty output = %q", out)
	}
}
