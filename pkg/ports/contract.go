package ports

import (
	"context"
	"testing"

	"github.com/aretw0/orderbot/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunMenuServiceContract runs a suite of tests to verify that a MenuService implementation
// adheres to the defined interface contract. want is the menu the service was seeded with.
func RunMenuServiceContract(t *testing.T, svc MenuService, want []domain.MenuItem) {
	t.Helper()
	ctx := context.Background()

	t.Run("List Preserves Service Order", func(t *testing.T) {
		items, err := svc.ListItems(ctx)
		require.NoError(t, err, "ListItems should not return error")
		assert.Equal(t, domain.MenuNames(want), domain.MenuNames(items))
	})

	t.Run("List Is Repeatable", func(t *testing.T) {
		first, err := svc.ListItems(ctx)
		require.NoError(t, err)
		second, err := svc.ListItems(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := svc.ListItems(cctx)
		assert.Error(t, err, "a cancelled context must not yield a menu")
	})
}
