package logging

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, o Options) *observer.ObservedLogs {
	t.Helper()
	core, recorded := observer.New(zapcore.DebugLevel)
	Use(zap.New(core), o)
	t.Cleanup(func() { Use(zap.NewNop(), Options{}) })
	return recorded
}

// TestAllCategoriesLog tests that every category logs under its own name when debug_mode is true
func TestAllCategoriesLog(t *testing.T) {
	recorded := observe(t, Options{DebugMode: true, Level: "debug"})

	categories := []Category{
		CategoryBoot,
		CategoryEngine,
		CategoryEval,
		CategoryCheck,
		CategoryTrace,
		CategoryUI,
	}
	for _, cat := range categories {
		if !IsCategoryEnabled(cat) {
			t.Errorf("Category %s should be enabled", cat)
		}
		Get(cat).Info("Test info message for %s", cat)
	}

	entries := recorded.All()
	if len(entries) != len(categories) {
		t.Fatalf("expected %d entries, got %d", len(categories), len(entries))
	}
	for i, e := range entries {
		if e.LoggerName != string(categories[i]) {
			t.Errorf("entry %d: logger name %q, want %q", i, e.LoggerName, categories[i])
		}
		if !strings.Contains(e.Message, string(categories[i])) {
			t.Errorf("entry %d: message %q does not mention category", i, e.Message)
		}
	}
}

func TestDebugModeOffIsSilent(t *testing.T) {
	recorded := observe(t, Options{DebugMode: false})

	if IsDebugMode() {
		t.Fatal("debug mode should be off")
	}
	Boot("should not appear")
	Check("should not appear")
	Get(CategoryEval).Error("should not appear")

	if n := recorded.Len(); n != 0 {
		t.Errorf("expected no entries, got %d", n)
	}
}

func TestCategoryToggle(t *testing.T) {
	recorded := observe(t, Options{
		DebugMode:  true,
		Categories: map[string]bool{"eval": false, "check": true},
	})

	EvalDebug("hidden")
	CheckWarn("visible")
	EngineDebug("unlisted categories default to enabled")

	entries := recorded.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].LoggerName != "check" || entries[0].Level != zapcore.WarnLevel {
		t.Errorf("unexpected first entry: %+v", entries[0].Entry)
	}
	if entries[1].LoggerName != "engine" {
		t.Errorf("unexpected second entry: %+v", entries[1].Entry)
	}
}

func TestRequestLogger(t *testing.T) {
	recorded := observe(t, Options{DebugMode: true})

	WithRequestID(CategoryCheck, "run-42").With("max", 8).Info("checking")

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["req"] != "run-42" {
		t.Errorf("expected req=run-42, got %v", ctx["req"])
	}
	if ctx["max"] != int64(8) {
		t.Errorf("expected max=8, got %v (%T)", ctx["max"], ctx["max"])
	}
}

func TestTimer(t *testing.T) {
	recorded := observe(t, Options{DebugMode: true})

	timer := StartTimer(CategoryEngine, "evaluate")
	if d := timer.StopWithThreshold(time.Hour); d < 0 {
		t.Errorf("negative duration %v", d)
	}
	timer = StartTimer(CategoryEngine, "slow")
	time.Sleep(2 * time.Millisecond)
	timer.StopWithThreshold(time.Nanosecond)

	entries := recorded.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Errorf("expected warn for slow op, got %v", entries[1].Level)
	}
}

func TestInitializeToFile(t *testing.T) {
	t.Cleanup(func() { Use(zap.NewNop(), Options{}) })

	path := filepath.Join(t.TempDir(), "typers.log")
	if err := Initialize(Options{DebugMode: true, Level: "info", JSONFormat: true, File: path}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	Check("written to file")
	_ = Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file missing entry: %s", data)
	}
	if !strings.Contains(string(data), `"logger":"check"`) {
		t.Errorf("expected JSON entry with logger name: %s", data)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestConcurrentGet(t *testing.T) {
	observe(t, Options{DebugMode: true})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Get(CategoryCheck).Debug("concurrent")
		}()
	}
	wg.Wait()
}
