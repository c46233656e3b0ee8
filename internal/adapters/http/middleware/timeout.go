package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

// Timeout bounds each request to d. The handler sees a context with that
// deadline, so an open transaction is rolled back when it expires. A handler
// that overruns gets the generic 500 envelope and its later writes fail with
// http.ErrHandlerTimeout.
//
// The handler runs on its own goroutine with its output buffered. Panics are
// carried back and re-raised on the serving goroutine for Recovery.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return &deadline{next: next, limit: d}
	}
}

type deadline struct {
	next  http.Handler
	limit time.Duration
}

func (h *deadline) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.limit)
	defer cancel()

	// The handler goroutine routes on its own chi context. The outer one is
	// pooled by the mux and read by the metrics middleware, so it is only
	// updated once the handler has returned.
	outer := chi.RouteContext(r.Context())
	var inner *chi.Context
	if outer != nil {
		inner = chi.NewRouteContext()
		inner.Routes = outer.Routes
		ctx = context.WithValue(ctx, chi.RouteCtxKey, inner)
	}

	buf := &bufferedResponse{header: make(http.Header)}
	finished := make(chan any, 1)

	go func() {
		var v any
		defer func() {
			if p := recover(); p != nil {
				v = capturePanic(p)
			}
			finished <- v
		}()
		h.next.ServeHTTP(buf, r.WithContext(ctx))
	}()

	select {
	case v := <-finished:
		h.complete(w, outer, inner, buf, v)
		return
	case <-ctx.Done():
	}

	// A client that goes away cancels the context early. The handler still
	// owns the response until the deadline.
	if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		if dl, ok := ctx.Deadline(); ok {
			timer := time.NewTimer(time.Until(dl))
			defer timer.Stop()
			select {
			case v := <-finished:
				h.complete(w, outer, inner, buf, v)
				return
			case <-timer.C:
			}
		}
	}

	buf.expire()
	logging.FromContext(r.Context()).WarnContext(r.Context(), "request timed out",
		slog.Duration("timeout", h.limit),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
	dto.WriteJSON(w, r, http.StatusInternalServerError, dto.Failure(dto.MsgServerError))
}

// complete publishes the handler's route and response once it has returned.
func (h *deadline) complete(w http.ResponseWriter, outer, inner *chi.Context, buf *bufferedResponse, v any) {
	if inner != nil {
		outer.URLParams = inner.URLParams
		outer.RoutePatterns = inner.RoutePatterns
	}
	if v != nil {
		panic(v)
	}
	buf.copyTo(w)
}

// capturePanic keeps the handler goroutine's stack with the panic value.
// http.ErrAbortHandler stays bare so net/http still recognises it.
func capturePanic(p any) any {
	if p == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity, as net/http does
		return p
	}
	return panicValue{value: p, stack: debug.Stack()}
}

// panicValue carries a handler panic and its original stack across goroutines.
type panicValue struct {
	value any
	stack []byte
}

func (p panicValue) String() string {
	return fmt.Sprintf("%v\n\n%s", p.value, p.stack)
}

// bufferedResponse holds the handler's response until the handler returns.
// Once expired it rejects further output.
type bufferedResponse struct {
	mu      sync.Mutex
	header  http.Header
	status  int
	body    []byte
	expired bool
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == 0 && !b.expired {
		b.status = code
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.expired {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	b.body = append(b.body, p...)
	return len(p), nil
}

func (b *bufferedResponse) expire() {
	b.mu.Lock()
	b.expired = true
	b.mu.Unlock()
}

// copyTo writes the buffered response. Only called after the handler has
// returned, so the header map is no longer shared.
func (b *bufferedResponse) copyTo(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}
