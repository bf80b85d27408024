package core

import (
	"bytes"
	"strings"
	"testing"
)

func TestReportCrashRunsCleanup(t *testing.T) {
	cleaned := false
	SetCrashCleanup(func() { cleaned = true })
	defer SetCrashCleanup(nil)

	var buf bytes.Buffer
	reportCrash(&buf, "boom")

	if !cleaned {
		t.Error("Expected cleanup hook to run")
	}
	if !strings.Contains(buf.String(), "CRASH DETECTED: boom") {
		t.Errorf("Expected crash header, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Stack Trace:") {
		t.Error("Expected stack trace")
	}
}

func TestHandleCrashNil(t *testing.T) {
	// Nil recovery value is not a crash and must return
	HandleCrash(nil)
}

func TestGoRuns(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })
	<-done
}
