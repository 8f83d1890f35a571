package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/alexanderramin/cabquote/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_MaterialLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	m := &domain.Material{Name: "Birch Plywood", Category: "plywood", CostPerSqm: 32}
	require.NoError(t, env.Catalog.CreateMaterial(ctx, m))
	assert.NotEmpty(t, m.ID)
	assert.False(t, m.CreatedAt.IsZero())

	got, err := env.Catalog.GetMaterial(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Birch Plywood", got.Name)
	assert.Equal(t, 32.0, got.CostPerSqm)

	got.CostPerSqm = 35
	require.NoError(t, env.Catalog.UpdateMaterial(ctx, got))
	updated, err := env.Catalog.GetMaterial(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 35.0, updated.CostPerSqm)

	require.NoError(t, env.Catalog.DeleteMaterial(ctx, m.ID))
	_, err = env.Catalog.GetMaterial(ctx, m.ID)
	assert.Error(t, err)
}

func TestCatalogService_ProductLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := testutil.NewTestProduct("Soft-close hinge", 3.50)
	p.ID = ""
	require.NoError(t, env.Catalog.CreateProduct(ctx, p))
	assert.NotEmpty(t, p.ID)

	list, err := env.Catalog.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 3.50, list[0].UnitPrice)

	require.NoError(t, env.Catalog.DeleteProduct(ctx, p.ID))
	list, err = env.Catalog.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
