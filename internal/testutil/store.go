package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Lucas-Aron/Retail/internal/config"
	"github.com/Lucas-Aron/Retail/internal/ident"
	"github.com/Lucas-Aron/Retail/internal/pkg/clock"
	"github.com/Lucas-Aron/Retail/internal/store"
)

// BaseTime is the default instant for mock clocks in tests.
var BaseTime = time.Date(2024, 5, 17, 9, 30, 0, 0, time.Local)

// DBPath returns a fresh sqlite file path inside the test's temp dir.
func DBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "store_management.db")
}

// OpenStore opens a sqlite store at path with the schema in place and closes
// it when the test ends.
func OpenStore(t *testing.T, path string) *store.Store {
	t.Helper()

	db, err := config.NewDB(config.DBConfig{
		Driver:   config.DriverSQLite,
		Path:     path,
		LogLevel: "silent",
	})
	require.NoError(t, err)

	st := store.New(db)
	require.NoError(t, st.EnsureSchema(context.Background()))
	t.Cleanup(func() { _ = st.Close() })
	return st
}

// NewStore is OpenStore on a fresh temp file.
func NewStore(t *testing.T) *store.Store {
	t.Helper()
	return OpenStore(t, DBPath(t))
}

// NewAllocator returns a timestamp allocator on a mock clock at BaseTime.
func NewAllocator() (*ident.Allocator, *clock.MockClock) {
	clk := clock.NewMockClock(BaseTime)
	return ident.NewAllocator(clk, ident.PolicyTimestamp), clk
}
