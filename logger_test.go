package nexuslog

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"
)

// readTodayLog reads the dated log file for the current local day.
func readTodayLog(t *testing.T, prefix string) []byte {
	t.Helper()
	path := prefix + "_" + time.Now().In(logZone).Format(dateFormat) + ".log"
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return data
}

// TestNewValidation tests constructor argument validation
func TestNewValidation(t *testing.T) {
	if _, err := New("", "/tmp/app", LevelInfo); err != ErrEmptyName {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
	if _, err := New("app", "", LevelInfo); err != ErrEmptySinkPrefix {
		t.Errorf("Expected ErrEmptySinkPrefix, got %v", err)
	}
	if _, err := New("app", filepath.Join(t.TempDir(), "app"), LevelInfo, WithChannelSize(0)); err == nil {
		t.Errorf("Expected error for zero channel size")
	}
	if _, err := New("app", filepath.Join(t.TempDir(), "app"), LevelInfo, WithFlushInterval(0)); err == nil {
		t.Errorf("Expected error for zero flush interval")
	}
	if _, err := New("app", filepath.Join(t.TempDir(), "app"), LevelInfo, WithErrorHandler(nil)); err == nil {
		t.Errorf("Expected error for nil error handler")
	}
}

// TestBasicEmit tests the full record format of a single emitted line
func TestBasicEmit(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "app")
	logger, err := New("app", prefix, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	logger.Info("hello")
	logger.Close()

	data := readTodayLog(t, prefix)
	pattern := `^time=\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}[+-]\d{2}:\d{2} level=INFO name=app msg="hello"\n$`
	if !regexp.MustCompile(pattern).Match(data) {
		t.Errorf("Record does not match the expected format: %q", data)
	}
}

// TestLevelGateDrop tests that below-level calls leave no trace in the sink
func TestLevelGateDrop(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "app")
	logger, err := New("app", prefix, LevelWarn)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	logger.Info("x")
	logger.Error("y")
	logger.Close()

	data := string(readTodayLog(t, prefix))
	lines := strings.Split(strings.TrimRight(data, "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected exactly one line, got %d: %q", len(lines), data)
	}
	if !strings.HasSuffix(lines[0], `msg="y"`) {
		t.Errorf("Expected the error record, got %q", lines[0])
	}
}

// TestLargeMessage tests that an oversized message survives the heap fallback
func TestLargeMessage(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "app")
	logger, err := New("app", prefix, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	text := strings.Repeat("A", 5000)
	logger.Info(text)
	logger.Close()

	data := string(readTodayLog(t, prefix))
	lines := strings.Split(strings.TrimRight(data, "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected a single line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], `msg="`+text+`"`) {
		t.Errorf("Large message truncated or corrupted")
	}
}

// TestSharedBackend tests that handles with the same prefix share one backend
func TestSharedBackend(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "shared")
	h1, err := New("db", prefix, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create first handle: %v", err)
	}
	h2, err := New("api", prefix, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create second handle: %v", err)
	}
	if h1.backend != h2.backend {
		t.Fatalf("Expected both handles to share one backend")
	}

	h1.Info("a")
	h2.Info("b")
	h1.Close()
	h2.Close()

	data := string(readTodayLog(t, prefix))
	lines := strings.Split(strings.TrimRight(data, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected two lines, got %d: %q", len(lines), data)
	}
	if !strings.Contains(lines[0], `name=db msg="a"`) {
		t.Errorf("First line wrong: %q", lines[0])
	}
	if !strings.Contains(lines[1], `name=api msg="b"`) {
		t.Errorf("Second line wrong: %q", lines[1])
	}
}

// TestFlushOnShutdown tests that every accepted record is written by Close
func TestFlushOnShutdown(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "app")
	logger, err := New("app", prefix, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	const n = 1000
	for i := 0; i < n; i++ {
		logger.Infof("record %d", i)
	}
	logger.Close()

	data := string(readTodayLog(t, prefix))
	got := strings.Count(data, "\n")
	if got != n {
		t.Errorf("Expected %d lines after shutdown, got %d", n, got)
	}
	if !strings.Contains(data, `msg="record 999"`) {
		t.Errorf("Last record missing after shutdown")
	}
}

// TestFlushBestEffort tests that Flush pushes bytes without closing
func TestFlushBestEffort(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "app")
	logger, err := New("app", prefix, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	logger.Info("visible before close")
	logger.Flush()

	path := prefix + "_" + time.Now().In(logZone).Format(dateFormat) + ".log"
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if data, err := os.ReadFile(path); err == nil && strings.Contains(string(data), "visible before close") {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Errorf("Record did not reach the file after Flush")
}

// TestCloseIdempotent tests that closing twice is safe
func TestCloseIdempotent(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "app")
	logger, err := New("app", prefix, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	if logger.IsClosed() {
		t.Errorf("Logger should not be closed initially")
	}
	logger.Close()
	logger.Close()
	if !logger.IsClosed() {
		t.Errorf("Logger should be closed after Close()")
	}
	// Emits after close are silently ignored.
	logger.Info("ignored")
}

// TestWithName tests derived handles sharing a backend under a new name
func TestWithName(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "app")
	logger, err := New("app", prefix, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	worker := logger.WithName("worker")
	if worker.backend != logger.backend {
		t.Fatalf("Expected the derived handle to share the backend")
	}

	logger.Info("from app")
	worker.Info("from worker")
	logger.Close()
	worker.Close()

	data := string(readTodayLog(t, prefix))
	if !strings.Contains(data, `name=app msg="from app"`) {
		t.Errorf("Base handle record missing")
	}
	if !strings.Contains(data, `name=worker msg="from worker"`) {
		t.Errorf("Derived handle record missing")
	}
}

// TestSetLevel tests runtime level adjustment on a handle
func TestSetLevel(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "app")
	logger, err := New("app", prefix, LevelError)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	if logger.GetLevel() != LevelError {
		t.Errorf("Expected initial level error, got %v", logger.GetLevel())
	}
	logger.Info("dropped")
	logger.SetLevel(LevelDebug)
	logger.Info("kept")
	logger.Close()

	data := string(readTodayLog(t, prefix))
	if strings.Contains(data, `msg="dropped"`) {
		t.Errorf("Below-level record reached the sink")
	}
	if !strings.Contains(data, `msg="kept"`) {
		t.Errorf("Record after SetLevel missing")
	}
}

// TestStdoutLogger tests the stdout handle lifecycle
func TestStdoutLogger(t *testing.T) {
	logger, err := NewStdout("console", LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create stdout logger: %v", err)
	}
	logger.Info("to stdout")
	logger.Flush()
	logger.Close()

	if _, err := NewStdout("", LevelInfo); err != ErrEmptyName {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
}

// TestLoggerMetrics tests the metrics surface through a handle
func TestLoggerMetrics(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "app")
	logger, err := New("app", prefix, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	logger.Info("one")
	logger.Info("two")
	logger.Close()

	// The backend has been joined; counters are final.
	m := logger.backend.Metrics()
	if m.MessagesWritten != 2 {
		t.Errorf("Expected 2 messages written, got %d", m.MessagesWritten)
	}
}
