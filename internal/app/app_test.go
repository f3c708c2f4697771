package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lucas-Aron/Retail/internal/config"
	"github.com/Lucas-Aron/Retail/internal/dto"
	"github.com/Lucas-Aron/Retail/internal/pkg/clock"
	"github.com/Lucas-Aron/Retail/internal/store"
	"github.com/Lucas-Aron/Retail/internal/testutil"
)

func sqliteConfig(t *testing.T) config.Config {
	return config.Config{
		IDPolicy: "timestamp",
		DB: config.DBConfig{
			Driver:   config.DriverSQLite,
			Path:     filepath.Join(t.TempDir(), "store_management.db"),
			LogLevel: "silent",
		},
	}
}

func TestNew_WiresServices(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, sqliteConfig(t), clock.NewMockClock(testutil.BaseTime))
	require.NoError(t, err)
	defer a.Close()

	sup, err := a.Suppliers.Create(ctx, dto.CreateSupplierDto{Name: "Acme", Address: "a", Email: "e", Phone: "p"})
	require.NoError(t, err)
	assert.Equal(t, "SUP-20240517093000", sup.ID)

	require.NoError(t, a.Close())
	_, err = a.Products.List(ctx)
	assert.ErrorIs(t, err, store.ErrStoreClosed)
}

func TestNew_RejectsBadPolicy(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.IDPolicy = "random"
	_, err := New(context.Background(), cfg, clock.NewRealClock())
	assert.Error(t, err)
}

func TestNew_UnwritablePathFails(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.DB.Path = filepath.Join(t.TempDir(), "missing", "dir", "store.db")
	_, err := New(context.Background(), cfg, clock.NewRealClock())
	assert.Error(t, err)
}
