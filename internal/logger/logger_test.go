package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		"DEBUG":  zapcore.DebugLevel,
		"warn":   zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
		"info":   zapcore.InfoLevel,
		"":       zapcore.InfoLevel,
		"bogus":  zapcore.InfoLevel,
		"dpanic": zapcore.DPanicLevel,
		"Panic":  zapcore.PanicLevel,
		"fatal":  zapcore.FatalLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNoOutputIsNop(t *testing.T) {
	l := NewWithFileConfig("debug", FileConfig{}, false)
	if l.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger without outputs should be disabled")
	}
}

func TestFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "flip.log")
	cfg := DefaultFileConfig(logFile)
	cfg.Compress = false

	l := NewWithFileConfig("debug", cfg, false)
	l.Named("pageflip").Debug("progress driver activated", zap.Float64("radius", 50))
	_ = l.Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "progress driver activated") {
		t.Errorf("log file missing message: %q", out)
	}
	if !strings.Contains(out, `"logger":"pageflip"`) {
		t.Errorf("log file missing logger name: %q", out)
	}
}

func TestLevelFiltersFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "flip.log")
	cfg := DefaultFileConfig(logFile)
	cfg.Compress = false

	l := NewWithFileConfig("warn", cfg, false)
	l.Info("hidden")
	l.Warn("shown")
	_ = l.Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Error("info entry should be filtered at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("warn entry missing")
	}
}
