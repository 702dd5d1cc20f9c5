package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLiteInMemory(t *testing.T) {
	db, err := Open(context.Background(), DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Ping(context.Background(), db))
}

func TestOpen_EmptyDSN(t *testing.T) {
	_, err := Open(context.Background(), DriverPostgres, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "root@/cart")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported db driver")
}
