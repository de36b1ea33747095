package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"

	mdwlog "github.com/msto63/smpl/foundation/core/log"
	"github.com/msto63/smpl/pkg/core/config"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("smpl")

	if cfg.Name != "smpl" {
		t.Errorf("Name = %v, want smpl", cfg.Name)
	}
	if cfg.Level != "error" {
		t.Errorf("Level = %v, want error", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warning", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"invalid", mdwlog.LevelInfo}, // defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if parseFormat("json") != mdwlog.FormatJSON {
		t.Error("parseFormat(json) should be FormatJSON")
	}
	if parseFormat("logfmt") != mdwlog.FormatLogfmt {
		t.Error("parseFormat(logfmt) should be FormatLogfmt")
	}
	if parseFormat("bogus") != mdwlog.FormatText {
		t.Error("parseFormat() should fall back to FormatText")
	}
}

func TestNewLogger(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:              "test",
		Level:             "info",
		Format:            "text",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Debug("hidden")
	logger.Info("compiled", KV("definition", "add"))

	for name, buf := range map[string]*bytes.Buffer{"primary": &primary, "additional": &extra} {
		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("%s output contains a debug entry below the info level", name)
		}
		if !strings.Contains(out, "[INF] {test} compiled [definition=add]") {
			t.Errorf("%s output = %q", name, out)
		}
	}
}

func TestFromConfig(t *testing.T) {
	general := config.Default().General

	var buf bytes.Buffer
	logger := FromConfig(general, false, &buf)
	if !logger.IsLevelEnabled(mdwlog.LevelError) || logger.IsLevelEnabled(mdwlog.LevelWarn) {
		t.Error("default level should be error")
	}

	logger = FromConfig(general, true, &buf)
	if !logger.IsLevelEnabled(mdwlog.LevelDebug) || logger.IsLevelEnabled(mdwlog.LevelTrace) {
		t.Error("verbose level should be debug")
	}
	logger.Debug("scan completed")
	if !strings.Contains(buf.String(), "{smpl} scan completed") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestFromConfig_VerboseKeepsTrace(t *testing.T) {
	general := config.Default().General
	general.LogLevel = "trace"
	general.LogFormat = ""

	var buf bytes.Buffer
	logger := FromConfig(general, true, &buf)
	if !logger.IsLevelEnabled(mdwlog.LevelTrace) {
		t.Error("verbose must not raise a trace level")
	}
	logger.Trace("token")
	if !strings.Contains(buf.String(), "token") {
		t.Errorf("text format fallback lost output: %q", buf.String())
	}
}

func TestKV(t *testing.T) {
	// Empty input
	if fields := KV(); fields != nil {
		t.Error("KV() with no args should return nil")
	}

	// Valid key-value pairs
	fields := KV("key1", "value1", "key2", 42)
	if fields["key1"] != "value1" {
		t.Errorf("fields[key1] = %v, want value1", fields["key1"])
	}
	if fields["key2"] != 42 {
		t.Errorf("fields[key2] = %v, want 42", fields["key2"])
	}

	// Non-string key and orphan key are skipped
	fields = KV(123, "value", "orphan")
	if len(fields) != 0 {
		t.Errorf("expected no fields, got %v", fields)
	}
}

func BenchmarkLogger_Info(b *testing.B) {
	logger := NewLogger(LoggerConfig{Name: "benchmark", Level: "info", Output: io.Discard})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", KV("iteration", i))
	}
}
