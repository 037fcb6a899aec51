package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestInfoProducesLogfmtWithTimestamp(t *testing.T) {
	buf := new(bytes.Buffer)
	original := Logger()
	ReplaceLogger(slog.New(newHandler(buf)))
	t.Cleanup(func() {
		ReplaceLogger(original)
	})

	Info(context.Background(), "hello", "user", "test")

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatalf("expected log output, got empty string")
	}
	if !strings.Contains(line, "ts=") {
		t.Fatalf("expected timestamp field in log line, got %q", line)
	}
	if !strings.Contains(line, "level=info") {
		t.Fatalf("expected level field in log line, got %q", line)
	}
	if !strings.Contains(line, "msg=hello") {
		t.Fatalf("expected message field in log line, got %q", line)
	}
	if !strings.Contains(line, "user=test") {
		t.Fatalf("expected structured field in log line, got %q", line)
	}
}

func TestWithAttrsAddsContextFields(t *testing.T) {
	buf := new(bytes.Buffer)
	original := Logger()
	ReplaceLogger(slog.New(newHandler(buf)))
	t.Cleanup(func() {
		ReplaceLogger(original)
	})

	ctx := WithAttrs(context.Background(), "path", "/signin")
	ctx = WithAttrs(ctx, "theme", "dark")
	Info(ctx, "rendered")

	line := buf.String()
	if !strings.Contains(line, "path=/signin") || !strings.Contains(line, "theme=dark") {
		t.Fatalf("expected context attributes in log line, got %q", line)
	}
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() {
		_ = SetLevel("info")
	})

	for _, level := range []string{"debug", "INFO", "warn", "error", ""} {
		if err := SetLevel(level); err != nil {
			t.Fatalf("SetLevel(%q) returned error: %v", level, err)
		}
	}
	if err := SetLevel("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}

	buf := new(bytes.Buffer)
	original := Logger()
	ReplaceLogger(slog.New(newHandler(buf)))
	t.Cleanup(func() {
		ReplaceLogger(original)
	})
	if err := SetLevel("warn"); err != nil {
		t.Fatalf("SetLevel(warn): %v", err)
	}
	Info(context.Background(), "hidden")
	Warn(context.Background(), "shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "level=warn") {
		t.Fatalf("unexpected output for warn level: %q", buf.String())
	}
}
