package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/cabquote/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelService_CreateAndGetByName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	model := testutil.NewTestModel("wall-cabinet")
	model.ID = ""
	require.NoError(t, env.Models.Create(ctx, model))
	assert.NotEmpty(t, model.ID)

	got, err := env.Models.GetByName(ctx, "wall-cabinet")
	require.NoError(t, err)
	assert.Equal(t, model.ID, got.ID)
	assert.Len(t, got.Parameters.Panels, 4)
}

func TestModelService_ImportModel(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	definition := `{
		"model": {"name": "imported-base", "description": "one door base unit"},
		"panels": [
			{"name": "side_left", "length": "height", "width": "depth"},
			{"name": "side_right", "length": "height", "width": "depth"}
		],
		"fronts": [
			{"front_type": "hinged_door", "width": "width - 4", "height": "height - 4"}
		],
		"hardware": [
			{"name": "Handle", "quantity": 1, "unit_price": 4.5}
		],
		"labor": {"base_minutes": 30, "per_panel_minutes": 5, "per_front_minutes": 10, "per_compartment_item_minutes": 5, "hourly_rate": 40}
	}`
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(definition), 0o644))

	model, err := env.Models.ImportModel(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "imported-base", model.Name)

	stored, err := env.Models.GetByName(ctx, "imported-base")
	require.NoError(t, err)
	assert.Len(t, stored.Parameters.Panels, 2)
	require.Len(t, stored.Parameters.Fronts, 1)
	assert.Equal(t, 1, stored.Parameters.Fronts[0].Quantity)
	assert.True(t, stored.Parameters.Fronts[0].Visible)
}

func TestModelService_ImportModelRejectsInvalidDefinition(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	definition := `{
		"model": {"name": ""},
		"panels": [{"name": "side", "length": "height +", "width": "depth"}]
	}`
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(definition), 0o644))

	_, err := env.Models.ImportModel(ctx, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation error")

	models, err := env.Models.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, models)
}
