package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Rows written without merchant, description, or category must still scan.
// The schema defaults those columns to '' so the read path never sees NULL.
func TestListMovements_OmittedOptionalColumns(t *testing.T) {
	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))

	_, err = store.db.ExecContext(ctx,
		`INSERT INTO movimientos (id, fecha, monto, moneda, intent)
		 VALUES ('m-bare', '2026-03-10 12:00:00', 2500, 'ARS', 'add_expense')`)
	require.NoError(t, err)

	movements, err := store.ListMovements(ctx)
	require.NoError(t, err)
	require.Len(t, movements, 1)

	got := movements[0]
	assert.Equal(t, "m-bare", got.ID)
	assert.Empty(t, got.Merchant)
	assert.Empty(t, got.Description)
	assert.Empty(t, got.CategoryID)
}
