package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

func TestNew_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"msg":"todo created"`},
		{format: "JSON", want: `"msg":"todo created"`},
		{format: "text", want: `msg="todo created"`},
		{format: "TEXT", want: `msg="todo created"`},
		{format: "yaml", want: `"msg":"todo created"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("todo created")

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level      string
		emitted    []slog.Level
		suppressed []slog.Level
	}{
		{level: "debug", emitted: []slog.Level{slog.LevelDebug, slog.LevelInfo}},
		{level: "info", emitted: []slog.Level{slog.LevelInfo}, suppressed: []slog.Level{slog.LevelDebug}},
		{level: "WARN", emitted: []slog.Level{slog.LevelWarn}, suppressed: []slog.Level{slog.LevelInfo}},
		{level: "error", emitted: []slog.Level{slog.LevelError}, suppressed: []slog.Level{slog.LevelWarn}},
		{level: "verbose", emitted: []slog.Level{slog.LevelInfo}, suppressed: []slog.Level{slog.LevelDebug}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(tt.level, "json", new(bytes.Buffer))
			ctx := context.Background()

			for _, lvl := range tt.emitted {
				if !logger.Enabled(ctx, lvl) {
					t.Errorf("level %v disabled, want enabled", lvl)
				}
			}
			for _, lvl := range tt.suppressed {
				if logger.Enabled(ctx, lvl) {
					t.Errorf("level %v enabled, want disabled", lvl)
				}
			}
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debugBuf, infoBuf bytes.Buffer
	logging.New("debug", "json", &debugBuf).Info("x")
	logging.New("info", "json", &infoBuf).Info("x")

	if !strings.Contains(debugBuf.String(), `"source"`) {
		t.Error("debug logger omitted source location")
	}
	if strings.Contains(infoBuf.String(), `"source"`) {
		t.Error("info logger included source location")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "Info", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "ERROR", want: slog.LevelError},
		{in: "", want: slog.LevelInfo, wantErr: true},
		{in: "trace", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		got, err := logging.ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestContextPropagation(t *testing.T) {
	t.Parallel()

	fallback := logging.New("info", "json", new(bytes.Buffer))
	scoped := logging.New("info", "json", new(bytes.Buffer))
	bare := context.Background()

	if logging.FromContext(bare) != slog.Default() {
		t.Error("FromContext on bare context did not return slog.Default()")
	}
	if logging.FromContextOr(bare, fallback) != fallback {
		t.Error("FromContextOr on bare context did not return fallback")
	}

	ctx := logging.WithLogger(bare, fallback)
	ctx = logging.WithLogger(ctx, scoped)
	if logging.FromContext(ctx) != scoped {
		t.Error("FromContext did not return the most recently stored logger")
	}
	if logging.FromContextOr(ctx, fallback) != scoped {
		t.Error("FromContextOr preferred fallback over stored logger")
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{name: "authorization field", attr: slog.String("authorization", "Bearer supersecret-token"), secret: "supersecret-token"},
		{name: "cookie field", attr: slog.String("cookie", "session=abc123"), secret: "abc123"},
		{name: "password field", attr: slog.String("password", "hunter2"), secret: "hunter2"},
		{name: "dsn field", attr: slog.String("dsn", "data/todos.db"), secret: "data/todos.db"},
		{name: "secret prefix", attr: slog.String("secret_key", "s3cr3t"), secret: "s3cr3t"},
		{name: "bearer value", attr: slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), secret: "eyJhbGciOiJSUzI1NiJ9"},
		{name: "postgres url", attr: slog.String("target", "postgres://todo:pgpass@db:5432/todos"), secret: "pgpass"},
		{name: "keyword dsn", attr: slog.String("target", "host=db user=todo password=pgpass dbname=todos"), secret: "pgpass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output %q leaks %q", out, tt.secret)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output %q missing [REDACTED] marker", out)
			}
		})
	}
}

func TestNew_KeepsOrdinaryFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("todo updated",
		slog.String("operation", "TodoService.UpdateTodo"),
		slog.Int64("todo_id", 42),
		slog.String("path", "/todos/42"),
	)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decoding log entry: %v", err)
	}
	if entry["operation"] != "TodoService.UpdateTodo" {
		t.Errorf("operation = %v", entry["operation"])
	}
	if entry["todo_id"] != float64(42) {
		t.Errorf("todo_id = %v, want 42", entry["todo_id"])
	}
	if entry["path"] != "/todos/42" {
		t.Errorf("path = %v", entry["path"])
	}
}
