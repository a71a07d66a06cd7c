package database

import (
	"context"
	"testing"
	"time"

	"github.com/skill-swap/backend/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLiteInMemory(t *testing.T) {
	logger.InitNop()

	db, err := Open(context.Background(), Options{Driver: DriverSQLite, DSN: "file:dbtest?mode=memory&cache=shared", AppEnv: "test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Ping(context.Background(), db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	logger.InitNop()
	_, err := Open(context.Background(), Options{Driver: "oracle", DSN: "x"})
	require.Error(t, err)
}

func TestBackoffCapsDelay(t *testing.T) {
	b := backoff{maxRetries: 5, delay: 500 * time.Millisecond, maxDelay: 5 * time.Second}
	require.Equal(t, 500*time.Millisecond, b.nextDelay(0))
	require.Equal(t, time.Second, b.nextDelay(1))
	require.Equal(t, 4*time.Second, b.nextDelay(3))
	require.Equal(t, 5*time.Second, b.nextDelay(4))
}
