package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/cabquote/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMaterialRepo(db)
	ctx := context.Background()

	mat := testutil.NewTestMaterial("White Melamine", testutil.WithCostPerSqm(14.5), testutil.WithWasteFactor(1.15))
	require.NoError(t, repo.Create(ctx, mat))

	fetched, err := repo.GetByID(ctx, mat.ID)
	require.NoError(t, err)
	assert.Equal(t, "White Melamine", fetched.Name)
	assert.Equal(t, 14.5, fetched.CostPerSqm)
	require.NotNil(t, fetched.WasteFactor)
	assert.Equal(t, 1.15, *fetched.WasteFactor)
}

func TestMaterialRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMaterialRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMaterialRepo_GetByIDs_OmitsMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMaterialRepo(db)
	ctx := context.Background()

	body := testutil.NewTestMaterial("Melamine")
	door := testutil.NewTestMaterial("Oak MDF")
	require.NoError(t, repo.Create(ctx, body))
	require.NoError(t, repo.Create(ctx, door))

	found, err := repo.GetByIDs(ctx, []string{body.ID, "missing", door.ID})
	require.NoError(t, err)
	assert.Len(t, found, 2)
	assert.Equal(t, "Melamine", found[body.ID].Name)
	assert.Equal(t, "Oak MDF", found[door.ID].Name)
}

func TestMaterialRepo_GetByIDs_EmptyInput(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMaterialRepo(db)

	found, err := repo.GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestMaterialRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMaterialRepo(db)
	ctx := context.Background()

	mat := testutil.NewTestMaterial("Melamine")
	require.NoError(t, repo.Create(ctx, mat))

	mat.CostPerSqm = 18
	mat.WasteFactor = nil
	require.NoError(t, repo.Update(ctx, mat))

	fetched, err := repo.GetByID(ctx, mat.ID)
	require.NoError(t, err)
	assert.Equal(t, 18.0, fetched.CostPerSqm)
	assert.Nil(t, fetched.WasteFactor)
}

func TestMaterialRepo_ListOrderedByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMaterialRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestMaterial("Walnut Veneer")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestMaterial("Birch Ply")))

	materials, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, materials, 2)
	assert.Equal(t, "Birch Ply", materials[0].Name)
	assert.Equal(t, "Walnut Veneer", materials[1].Name)
}

func TestProductRepo_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProductRepo(db)
	ctx := context.Background()

	hinge := testutil.NewTestProduct("Soft-Close Hinge", 3.25)
	require.NoError(t, repo.Create(ctx, hinge))

	fetched, err := repo.GetByID(ctx, hinge.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.25, fetched.UnitPrice)

	found, err := repo.GetByIDs(ctx, []string{hinge.ID, "missing"})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	require.NoError(t, repo.Delete(ctx, hinge.ID))
	_, err = repo.GetByID(ctx, hinge.ID)
	assert.Error(t, err)
}
