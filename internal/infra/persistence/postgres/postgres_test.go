package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"medlocator/config"
	deliverycontext "medlocator/internal/delivery/context"
	domainerrors "medlocator/internal/domain/errors"
	"medlocator/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestTranslateWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, target: domainerrors.ErrClinicNotFound},
		{name: "raw foreign key", err: errors.New(`ERROR: insert violates foreign key constraint (SQLSTATE 23503)`), target: domainerrors.ErrClinicNotFound},
		{name: "duplicate", err: gorm.ErrDuplicatedKey, target: domainerrors.ErrValidationFailed},
		{name: "not null", err: errors.New(`null value in column "name" violates not-null constraint`), target: domainerrors.ErrValidationFailed},
		{name: "check", err: errors.New(`new row violates check constraint (SQLSTATE 23514)`), target: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateWriteError(tt.err, "write failed"), tt.target)
		})
	}
}

func TestTranslateWriteError_Other(t *testing.T) {
	cause := errors.New("connection refused")

	err := translateWriteError(cause, "failed to create clinic")

	appErr, ok := errors.Find[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.ErrorIs(t, err, cause)
}

func TestPoolWaitAttrs(t *testing.T) {
	_, waited := poolWaitAttrs(sql.DBStats{WaitCount: 3}, sql.DBStats{WaitCount: 3})
	assert.False(t, waited)

	attrs, waited := poolWaitAttrs(
		sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond},
		sql.DBStats{WaitCount: 3, WaitDuration: 21 * time.Millisecond},
	)
	require.True(t, waited)
	assert.Equal(t, "avg_wait", attrs[2].Key)
	assert.Equal(t, 10*time.Millisecond, attrs[2].Value.Duration())
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = true
	gormLogger := newGormSlogLogger(base, cfg)

	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	gormLogger.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.NotContains(t, buf.String(), "GORM query failed")

	gormLogger.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")

	buf.Reset()
	reqLogger := base.With(slog.String("request_id", "req-9"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)
	gormLogger.Trace(ctx, time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), "request_id=req-9")
	assert.Contains(t, buf.String(), "SELECT 1")

	buf.Reset()
	gormLogger.LogMode(logger.Silent).Trace(ctx, time.Now(), sqlFn, errors.New("boom"))
	assert.Empty(t, buf.String())
}
