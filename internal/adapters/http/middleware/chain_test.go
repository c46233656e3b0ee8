package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"
)

func TestChain_Order(t *testing.T) {
	t.Parallel()

	var order []string
	trace := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name+">")
				next.ServeHTTP(w, r)
				order = append(order, "<"+name)
			})
		}
	}

	tests := []struct {
		name  string
		chain []func(http.Handler) http.Handler
		want  []string
	}{
		{name: "empty", want: []string{"handler"}},
		{name: "single", chain: []func(http.Handler) http.Handler{trace("a")}, want: []string{"a>", "handler", "<a"}},
		{
			name:  "outermost first",
			chain: []func(http.Handler) http.Handler{trace("a"), trace("b"), trace("c")},
			want:  []string{"a>", "b>", "c>", "handler", "<c", "<b", "<a"},
		},
	}

	for _, tt := range tests {
		order = nil
		handler := middleware.Chain(tt.chain...)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			order = append(order, "handler")
		}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

		if !slices.Equal(order, tt.want) {
			t.Errorf("%s: order = %v, want %v", tt.name, order, tt.want)
		}
	}
}

// serverStack mirrors the production middleware order.
func serverStack(t *testing.T, buf *bytes.Buffer, timeout time.Duration) func(http.Handler) http.Handler {
	t.Helper()

	logger := jsonLogger(buf)
	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.OpenTelemetry(nil),
		middleware.Prometheus(prometheus.NewRegistry()),
		middleware.Logging(logger),
		middleware.Timeout(timeout),
	)
}

func TestChain_FullStack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := serverStack(t, &buf, 5*time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if middleware.RequestIDFromContext(r.Context()) == "" {
			t.Error("request ID not in context")
		}
		if _, ok := r.Context().Deadline(); !ok {
			t.Error("no request deadline in context")
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos", http.NoBody))

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("response = %d %q, want 200 ok", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" || rec.Header().Get("X-Correlation-ID") == "" {
		t.Error("response missing id headers")
	}
	if findEntry(logEntries(t, &buf), "request completed") == nil {
		t.Error("missing request completed log entry")
	}
}

func TestChain_FailuresBecomeServerErrorEnvelope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		timeout time.Duration
		handler http.HandlerFunc
	}{
		{
			name:    "panic under timeout",
			timeout: 5 * time.Second,
			handler: func(http.ResponseWriter, *http.Request) { panic("handler exploded") },
		},
		{
			name:    "deadline exceeded",
			timeout: 20 * time.Millisecond,
			handler: func(_ http.ResponseWriter, r *http.Request) { <-r.Context().Done() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			rec := httptest.NewRecorder()
			serverStack(t, &buf, tt.timeout)(tt.handler).
				ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/todos/1", http.NoBody))

			if rec.Code != http.StatusInternalServerError {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
			}
			if !strings.Contains(rec.Body.String(), `"message":"Internal server error"`) {
				t.Errorf("body = %q, want 500 envelope", rec.Body.String())
			}
			if rec.Header().Get("X-Request-ID") == "" {
				t.Error("failure response missing X-Request-ID")
			}
		})
	}
}
