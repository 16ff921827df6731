package notify

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

// =============================================================================
// Severity / Color Tests
// =============================================================================

func TestColorForSeverity(t *testing.T) {
	tests := []struct {
		severity string
		want     string
	}{
		{SeverityInfo, "0078D4"},
		{SeverityWarning, "FFA500"},
		{SeverityCritical, "DC3545"},
		{SeveritySuccess, "28A745"},
		{"debug", "0078D4"}, // unknown falls back to info
		{"", "0078D4"},
	}

	for _, tt := range tests {
		t.Run(tt.severity, func(t *testing.T) {
			if got := ColorForSeverity(tt.severity); got != tt.want {
				t.Errorf("ColorForSeverity(%q) = %q, want %q", tt.severity, got, tt.want)
			}
		})
	}
}

// =============================================================================
// LogNotifier Tests
// =============================================================================

func TestLogNotifier_SendCard(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	n := NewLogNotifier(logger)
	resp, err := n.SendCard(context.Background(), "Build #42 failed", "exit code 1", ColorCritical, nil)
	if err != nil {
		t.Fatalf("SendCard() error = %v", err)
	}
	if resp == nil {
		t.Error("SendCard() response = nil, want non-nil")
	}

	output := buf.String()
	if !strings.Contains(output, "Build #42 failed") {
		t.Errorf("log output missing title: %s", output)
	}
	if !strings.Contains(output, "exit code 1") {
		t.Errorf("log output missing content: %s", output)
	}
}

func TestLogNotifier_SendText(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	n := NewLogNotifier(logger)
	if _, err := n.SendText(context.Background(), "hello"); err != nil {
		t.Fatalf("SendText() error = %v", err)
	}
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("log output missing text: %s", buf.String())
	}
}

func TestLogNotifier_NilLogger(t *testing.T) {
	n := NewLogNotifier(nil)
	if n.Logger == nil {
		t.Error("NewLogNotifier(nil) should use the default logger")
	}
}
