package database_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/database"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

func sqliteConfig(dsn string) config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:             config.DriverSQLite,
		DSN:                dsn,
		MaxOpenConns:       1,
		MaxIdleConns:       1,
		SlowQueryThreshold: time.Second,
	}
}

func TestOpen_SQLiteCreatesParentDir(t *testing.T) {
	t.Parallel()

	dsn := filepath.Join(t.TempDir(), "nested", "dir", "todos.db")

	db, err := database.Open(sqliteConfig(dsn), slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if _, err := os.Stat(filepath.Dir(dsn)); err != nil {
		t.Errorf("parent dir stat error = %v, want created", err)
	}

	var one int
	if err := db.Raw("SELECT 1").Scan(&one).Error; err != nil {
		t.Fatalf("SELECT 1 error = %v", err)
	}
	if one != 1 {
		t.Errorf("SELECT 1 = %d, want 1", one)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	cfg := sqliteConfig("ignored")
	cfg.Driver = "mysql"

	_, err := database.Open(cfg, slog.New(slog.DiscardHandler))
	if !errors.Is(err, database.ErrUnsupportedDriver) {
		t.Errorf("Open() error = %v, want ErrUnsupportedDriver", err)
	}
}

func TestClose_ReleasesPool(t *testing.T) {
	t.Parallel()

	db, err := database.Open(sqliteConfig(filepath.Join(t.TempDir(), "todos.db")), slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if err := database.Close(db); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("DB() error = %v", err)
	}
	if err := sqlDB.Ping(); err == nil {
		t.Error("Ping() after Close() error = nil, want error")
	}
}

func TestGormLogger_Trace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		elapsed time.Duration
		err     error
		want    string
		notWant string
	}{
		{
			name: "statement logs at debug",
			want: `level=DEBUG msg="sql query"`,
		},
		{
			name:    "slow statement logs at warn",
			elapsed: 2 * time.Second,
			want:    `level=WARN msg="slow sql query"`,
		},
		{
			name: "failure logs at error",
			err:  errors.New("disk I/O error"),
			want: `level=ERROR msg="sql query failed"`,
		},
		{
			name:    "record not found is not an error",
			err:     gorm.ErrRecordNotFound,
			want:    `level=DEBUG msg="sql query"`,
			notWant: "level=ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			gl := database.NewGormLogger(logger, time.Second)

			begin := time.Now().Add(-tt.elapsed)
			gl.Trace(context.Background(), begin, func() (string, int64) {
				return "SELECT * FROM todos", 1
			}, tt.err)

			out := buf.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("log output = %q, want substring %q", out, tt.want)
			}
			if tt.notWant != "" && strings.Contains(out, tt.notWant) {
				t.Errorf("log output = %q, must not contain %q", out, tt.notWant)
			}
		})
	}
}

func TestGormLogger_PrefersContextLogger(t *testing.T) {
	t.Parallel()

	var fallback, scoped bytes.Buffer
	gl := database.NewGormLogger(slog.New(slog.NewTextHandler(&fallback, nil)), 0)

	ctx := logging.WithLogger(context.Background(),
		slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-1")))

	gl.Trace(ctx, time.Now(), func() (string, int64) { return "DELETE FROM todos", 0 }, errors.New("locked"))

	if fallback.Len() != 0 {
		t.Errorf("fallback logger output = %q, want empty", fallback.String())
	}
	if !strings.Contains(scoped.String(), "request_id=req-1") {
		t.Errorf("scoped logger output = %q, want request_id=req-1", scoped.String())
	}
}
