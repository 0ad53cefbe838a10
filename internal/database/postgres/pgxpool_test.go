package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"mentor-match/internal/config"
	"mentor-match/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDSN(t *testing.T) {
	got := DSN(config.DatabaseConfig{
		DBHost: " db ", DBPort: "5432", DBUser: "app", DBPassword: "p w", DBName: "mentors", DBSSLMode: "disable",
	})
	assert.Equal(t, "host=db port=5432 user=app password=p w dbname=mentors sslmode=disable", got)
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(pgx.ErrNoRows), database.ErrNoRows)
	assert.ErrorIs(t, translate(joinErr(pgx.ErrNoRows)), database.ErrNoRows)

	conflict := translate(&pgconn.PgError{Code: "23505", ConstraintName: "applications_student_user_id_opportunity_id_key"})
	assert.ErrorIs(t, conflict, database.ErrConflict)
	assert.Contains(t, conflict.Error(), "applications_student_user_id_opportunity_id_key")

	other := &pgconn.PgError{Code: "23503"}
	assert.Same(t, error(other), translate(other))
}

func joinErr(err error) error { return errors.Join(errors.New("scan"), err) }

func TestPoolConfig_AppliesTuning(t *testing.T) {
	pcfg, err := poolConfig(config.DatabaseConfig{
		DBHost: "localhost", DBPort: "5432", DBUser: "u", DBPassword: "secret", DBName: "d", DBSSLMode: "disable",
		ConnectTimeout:     3 * time.Second,
		PoolMaxConns:       7,
		SlowQueryThreshold: time.Second,
	}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, int32(7), pcfg.MaxConns)
	assert.Equal(t, 3*time.Second, pcfg.ConnConfig.ConnectTimeout)
	assert.IsType(t, &slowQueryTracer{}, pcfg.ConnConfig.Tracer)
}

func TestNilPool(t *testing.T) {
	var p *Pool
	ctx := context.Background()
	assert.Error(t, p.Ping(ctx))
	assert.NoError(t, p.Close())
	assert.Error(t, p.QueryRow(ctx, "SELECT 1").Scan())
	_, err := p.Exec(ctx, "SELECT 1")
	assert.Error(t, err)
}

func TestSlowQueryTracer(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := &slowQueryTracer{log: zap.New(core), threshold: 100 * time.Millisecond, now: func() time.Time { return clock }}

	ctx := tr.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT\n  1"})
	clock = clock.Add(50 * time.Millisecond)
	tr.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})
	assert.Zero(t, logs.Len())

	ctx = tr.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT\n  2"})
	clock = clock.Add(300 * time.Millisecond)
	tr.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "SELECT 2", logs.All()[0].ContextMap()["sql"])
}
