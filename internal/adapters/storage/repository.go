// Package storage is the outbound adapter that persists todos in a relational
// database through gorm.
//
// Every service operation runs inside one explicit transaction opened by
// [Repository.Transact]. The transaction is committed only when the callback
// returns nil; any error or panic rolls it back. A circuit breaker guards the
// transaction so a failing database is rejected quickly instead of piling up
// blocked requests.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TodoRepository = (*Repository)(nil)
	_ ports.HealthChecker  = (*Repository)(nil)
)

const tracerName = "github.com/jsamuelsen11/todo-service/internal/adapters/storage"

// Metric result labels.
const (
	resultSuccess     = "success"
	resultNotFound    = "not_found"
	resultError       = "error"
	resultCircuitOpen = "circuit_open"
)

// Repository implements [ports.TodoRepository] on top of a *gorm.DB.
type Repository struct {
	db      *gorm.DB
	system  string
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewRepository creates a Repository. If metrics is nil, metric recording
// is skipped.
func NewRepository(db *gorm.DB, cfg config.CircuitBreakerConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Repository {
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "database",
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		// Not-found and validation outcomes are answers, not outages.
		IsSuccessful: func(err error) bool {
			return err == nil || !errors.Is(err, domain.ErrStorage)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Repository{
		db:      db,
		system:  db.Dialector.Name(),
		breaker: cb,
		metrics: metrics,
		logger:  logger,
	}
}

// Transact runs fn inside a single database transaction.
//
// Errors returned by fn are passed through unchanged after rollback. Failures
// to begin or commit, and rejections by an open circuit breaker, are returned
// as *domain.StorageError.
func (r *Repository) Transact(ctx context.Context, fn func(tx ports.TodoTx) error) error {
	_, err := r.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, r.transact(ctx, fn)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		r.metrics.RecordDBOperation(ctx, "transaction", r.system, resultCircuitOpen, time.Now())
		return domain.NewStorageError("begin transaction", err)
	}
	return err
}

func (r *Repository) transact(ctx context.Context, fn func(tx ports.TodoTx) error) error {
	ctx, span := otel.GetTracerProvider().Tracer(tracerName).Start(ctx, "db.transaction",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("db.system", r.system)),
	)
	defer span.End()

	db := r.db.WithContext(ctx).Begin()
	if db.Error != nil {
		err := domain.NewStorageError("begin transaction", db.Error)
		finishSpan(span, err)
		return err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if err := db.Rollback().Error; err != nil && !errors.Is(err, sql.ErrTxDone) {
			logging.FromContextOr(ctx, r.logger).ErrorContext(ctx, "failed to roll back transaction",
				slog.String("operation", "Repository.Transact"),
				slog.Any("error", err),
			)
		}
	}()

	if err := fn(&todoTx{repo: r, db: db}); err != nil {
		finishSpan(span, err)
		return err
	}

	if err := db.Commit().Error; err != nil {
		err = domain.NewStorageError("commit transaction", err)
		finishSpan(span, err)
		return err
	}
	committed = true

	return nil
}

// Name identifies this component in the health registry.
func (r *Repository) Name() string {
	return "database"
}

// HealthCheck pings the database. Unlike a downstream HTTP dependency, the
// service cannot answer any request without its database, so readiness
// follows the ping result.
func (r *Repository) HealthCheck(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database: ping failed: %w", err)
	}
	if state := r.breaker.State(); state == gobreaker.StateOpen {
		return fmt.Errorf("database: failing (circuit breaker %s)", state)
	}
	return nil
}

// todoTx implements [ports.TodoTx] on an open gorm transaction.
type todoTx struct {
	repo *Repository
	db   *gorm.DB
}

func (tx *todoTx) List(ctx context.Context) ([]todo.Todo, error) {
	start := time.Now()

	var recs []todoRecord
	err := tx.db.WithContext(ctx).Order("id").Find(&recs).Error
	if err != nil {
		err = domain.NewStorageError("list todos", err)
	}
	tx.repo.observe(ctx, "todo.list", start, err)
	if err != nil {
		return nil, err
	}

	return toDomainTodoList(recs), nil
}

func (tx *todoTx) Get(ctx context.Context, id int64) (*todo.Todo, error) {
	start := time.Now()

	var rec todoRecord
	err := tx.db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		err = fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
	case err != nil:
		err = domain.NewStorageError("get todo", err)
	}
	tx.repo.observe(ctx, "todo.get", start, err)
	if err != nil {
		return nil, err
	}

	t := toDomainTodo(&rec)
	return &t, nil
}

func (tx *todoTx) Create(ctx context.Context, t *todo.Todo) error {
	start := time.Now()

	rec := toRecord(t)
	rec.ID = 0
	err := tx.db.WithContext(ctx).Create(&rec).Error
	if err != nil {
		err = domain.NewStorageError("create todo", err)
	}
	tx.repo.observe(ctx, "todo.create", start, err)
	if err != nil {
		return err
	}

	t.ID = rec.ID
	return nil
}

func (tx *todoTx) Save(ctx context.Context, t *todo.Todo) error {
	start := time.Now()

	rec := toRecord(t)
	res := tx.db.WithContext(ctx).
		Model(&todoRecord{ID: t.ID}).
		Select("title", "description", "completed").
		Updates(&rec)
	err := res.Error
	switch {
	case err != nil:
		err = domain.NewStorageError("save todo", err)
	case res.RowsAffected == 0:
		err = fmt.Errorf("todo %d: %w", t.ID, domain.ErrNotFound)
	}
	tx.repo.observe(ctx, "todo.save", start, err)

	return err
}

func (tx *todoTx) Delete(ctx context.Context, id int64) error {
	start := time.Now()

	res := tx.db.WithContext(ctx).Where("id = ?", id).Delete(&todoRecord{})
	err := res.Error
	switch {
	case err != nil:
		err = domain.NewStorageError("delete todo", err)
	case res.RowsAffected == 0:
		err = fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
	}
	tx.repo.observe(ctx, "todo.delete", start, err)

	return err
}

// observe records statement metrics. Safe to call with nil metrics.
func (r *Repository) observe(ctx context.Context, operation string, start time.Time, err error) {
	result := resultSuccess
	switch {
	case errors.Is(err, domain.ErrNotFound):
		result = resultNotFound
	case err != nil:
		result = resultError
	}
	r.metrics.RecordDBOperation(ctx, operation, r.system, result, start)
}

// finishSpan records a failed transaction on the span. Not-found is a normal
// outcome and leaves the span status unset.
func finishSpan(span trace.Span, err error) {
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
