package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug": DebugLevel,
		"INFO":  InfoLevel,
		"Warn":  WarnLevel,
		"error": ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoggerLevelGate(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithLevel(WarnLevel), WithOutput(NewWriterOutput(&buf)))
	l.Info("dropped")
	l.Warn("kept", Str("k", "v"))
	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info leaked through: %q", out)
	}
	if !strings.Contains(out, "kept") || !strings.Contains(out, "k=v") {
		t.Fatalf("warn missing: %q", out)
	}
}

func TestWithFieldsPersist(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(NewWriterOutput(&buf))).WithComponent("extract")
	l.Info("one")
	if !strings.Contains(buf.String(), "component=extract") {
		t.Fatalf("component field missing: %q", buf.String())
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithFormatter(&JSONFormatter{}), WithOutput(NewWriterOutput(&buf)))
	l.Info("hello", Uint64("files", 3))
	var obj map[string]any
	if err := json.Unmarshal(buf.Bytes(), &obj); err != nil {
		t.Fatalf("not json: %v (%q)", err, buf.String())
	}
	if obj["msg"] != "hello" || obj["level"] != "INFO" {
		t.Fatalf("fields: %v", obj)
	}
	if obj["files"] != float64(3) {
		t.Fatalf("files: %v", obj["files"])
	}
}
