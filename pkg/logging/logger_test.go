package logging

import (
	"os"
	"strings"
	"sync"
	"testing"
)

// resetGlobals points the package at a temp directory and restores the
// previous state when the test finishes.
func resetGlobals(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()

	origLogDir, origLogDirSet := logDir, logDirSet
	origInitOnce, origInitErr := initOnce, initErr
	origSessionID, origSessionIDOnce := sessionID, sessionIDOnce

	logDir = tempDir
	logDirSet = true
	initOnce = sync.Once{}
	initErr = nil
	sessionID = ""
	sessionIDOnce = sync.Once{}

	t.Cleanup(func() {
		logDir, logDirSet = origLogDir, origLogDirSet
		initOnce, initErr = origInitOnce, origInitErr
		sessionID, sessionIDOnce = origSessionID, origSessionIDOnce
	})

	return tempDir
}

func TestNewLoggerWritesToSessionFile(t *testing.T) {
	resetGlobals(t)

	logger, err := NewLogger("dispatch")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer logger.Close()

	logger.Infof("page %q created", "work")
	logger.Errorf("navigate failed: %v", "timeout")

	data, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "[dispatch] [INFO]") {
		t.Errorf("missing info entry, got:\n%s", content)
	}
	if !strings.Contains(content, `page "work" created`) {
		t.Errorf("missing formatted message, got:\n%s", content)
	}
	if !strings.Contains(content, "[dispatch] [ERROR]") {
		t.Errorf("missing error entry, got:\n%s", content)
	}
}

func TestLoggersShareSessionFile(t *testing.T) {
	resetGlobals(t)

	serverLog, err := NewLogger("server")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer serverLog.Close()

	dispatchLog, err := NewLogger("dispatch")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer dispatchLog.Close()

	if serverLog.LogPath() != dispatchLog.LogPath() {
		t.Errorf("components should share one session file: %q vs %q",
			serverLog.LogPath(), dispatchLog.LogPath())
	}
	if serverLog.SessionID() != dispatchLog.SessionID() {
		t.Errorf("session ids differ: %q vs %q",
			serverLog.SessionID(), dispatchLog.SessionID())
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	resetGlobals(t)

	logger, err := NewLogger("test")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Errorf("first close: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}
