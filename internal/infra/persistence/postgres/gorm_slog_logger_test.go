package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"storefront/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestQueryLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg), &buf
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestKVQueryLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("record not found is silent", func(t *testing.T) {
		l, buf := newTestQueryLogger(false)
		l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("failure is logged", func(t *testing.T) {
		l, buf := newTestQueryLogger(false)
		l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), errors.New("boom"))
		assert.Contains(t, buf.String(), "KV query failed")
		assert.Contains(t, buf.String(), "component=kv_store")
	})

	t.Run("slow query warns", func(t *testing.T) {
		l, buf := newTestQueryLogger(false)
		l.Trace(ctx, time.Now().Add(-time.Second), sqlFn("SELECT 1"), nil)
		assert.Contains(t, buf.String(), "KV query slow")
	})

	t.Run("fast query only in debug", func(t *testing.T) {
		l, buf := newTestQueryLogger(false)
		l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), nil)
		assert.Empty(t, buf.String())

		l, buf = newTestQueryLogger(true)
		l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), nil)
		assert.Contains(t, buf.String(), "KV query")
	})

	t.Run("long statements are truncated", func(t *testing.T) {
		l, buf := newTestQueryLogger(false)
		l.Trace(ctx, time.Now(), sqlFn(strings.Repeat("x", 1000)), errors.New("boom"))
		assert.Contains(t, buf.String(), "...")
		assert.NotContains(t, buf.String(), strings.Repeat("x", maxLoggedSQL+1))
	})

	t.Run("silent mode", func(t *testing.T) {
		l, buf := newTestQueryLogger(true)
		l.LogMode(logger.Silent).Trace(ctx, time.Now(), sqlFn("SELECT 1"), errors.New("boom"))
		assert.Empty(t, buf.String())
	})
}
