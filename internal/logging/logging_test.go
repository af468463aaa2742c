package logging

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("test message", "key", "value")

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}
	if parsed["msg"] != "test message" {
		t.Errorf("msg = %v, want %q", parsed["msg"], "test message")
	}
	if parsed["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", parsed["level"])
	}
	if parsed["key"] != "value" {
		t.Errorf("key = %v, want 'value'", parsed["key"])
	}
}

func TestNew_JSONTraceLevelName(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelTrace, Format: FormatJSON, Output: &buf})

	logger.Log(t.Context(), LevelTrace, "trace message")

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed["level"] != "TRACE" {
		t.Errorf("level = %v, want TRACE", parsed["level"])
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("test message", "key", "value")

	output := buf.String()
	var parsed map[string]any
	if err := json.Unmarshal([]byte(output), &parsed); err == nil {
		t.Error("text format should not be valid JSON")
	}
	for _, want := range []string{"test message", "key=value", "INFO"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q: %s", want, output)
		}
	}
}

func TestNew_UnknownFormatDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: Format("unknown"),
		Output: &buf,
	})

	logger.Info("test message")

	if !strings.Contains(buf.String(), "INFO") {
		t.Errorf("expected text output, got %q", buf.String())
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Error("discard logger should not enable any level")
	}
	logger.Error("nowhere")
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		configLevel  slog.Level
		logLevel     slog.Level
		shouldAppear bool
	}{
		{"info logged at info level", slog.LevelInfo, slog.LevelInfo, true},
		{"debug not logged at info level", slog.LevelInfo, slog.LevelDebug, false},
		{"error logged at info level", slog.LevelInfo, slog.LevelError, true},
		{"info not logged at warn level", slog.LevelWarn, slog.LevelInfo, false},
		{"trace logged at trace level", LevelTrace, LevelTrace, true},
		{"trace not logged at debug level", slog.LevelDebug, LevelTrace, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{
				Level:  tt.configLevel,
				Format: FormatText,
				Output: &buf,
			})

			logger.Log(t.Context(), tt.logLevel, "test message")

			hasOutput := buf.Len() > 0
			if hasOutput != tt.shouldAppear {
				t.Errorf("got output=%v, want output=%v (config %v, log %v): %q",
					hasOutput, tt.shouldAppear, tt.configLevel, tt.logLevel, buf.String())
			}
		})
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{4, LevelTrace},
	}

	for _, tt := range tests {
		got := LevelFromVerbosity(tt.verbosity)
		if got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestLevelTrace(t *testing.T) {
	if LevelTrace >= slog.LevelDebug {
		t.Error("LevelTrace should be lower than LevelDebug")
	}
	if got := LevelName(LevelTrace); got != "TRACE" {
		t.Errorf("LevelName(LevelTrace) = %q, want TRACE", got)
	}
	if got := LevelName(slog.LevelWarn); got != "WARN" {
		t.Errorf("LevelName(LevelWarn) = %q, want WARN", got)
	}
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Output: &buf})

	ctx := NewContext(context.Background(), logger)
	FromContext(ctx).Info("from context")

	if !strings.Contains(buf.String(), "from context") {
		t.Errorf("expected message from context logger, got %q", buf.String())
	}

	if FromContext(context.Background()) != slog.Default() {
		t.Error("FromContext without logger should return slog.Default()")
	}
}

func TestMultiHandler(t *testing.T) {
	var text, js bytes.Buffer
	h := NewMultiHandler(
		NewHandler(&text, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&js, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	logger := slog.New(h).With("file", "post.md")

	logger.Debug("only json")
	logger.Warn("both")

	if strings.Contains(text.String(), "only json") {
		t.Errorf("text handler should filter debug, got %q", text.String())
	}
	if !strings.Contains(text.String(), "file=post.md") {
		t.Errorf("text handler missing attrs, got %q", text.String())
	}
	if got := strings.Count(js.String(), "\n"); got != 2 {
		t.Errorf("json handler lines = %d, want 2: %q", got, js.String())
	}
	if !h.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("multi handler should be enabled when any handler is")
	}
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error {
	return errFailingHandler
}

var errFailingHandler = stderrors.New("handler failed")

func TestMultiHandler_JoinsErrors(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(
		failingHandler{slog.NewJSONHandler(&buf, nil)},
		slog.NewJSONHandler(&buf, nil),
	)

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "msg", 0)
	err := h.Handle(t.Context(), r)
	if !stderrors.Is(err, errFailingHandler) {
		t.Errorf("Handle() error = %v, want %v", err, errFailingHandler)
	}
	if !strings.Contains(buf.String(), `"msg":"msg"`) {
		t.Errorf("second handler should still run, got %q", buf.String())
	}
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	if !logger.Enabled(t.Context(), LevelTrace) {
		t.Error("test logger should enable trace")
	}
	logger.Info("info from test logger", "test", t.Name())
}

func TestTestWriter_TrimsNewline(t *testing.T) {
	tw := &testWriter{t: t}

	n, err := tw.Write([]byte("test message\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len("test message\n") {
		t.Errorf("Write returned %d, want %d", n, len("test message\n"))
	}
}
