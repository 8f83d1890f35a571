package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/cabquote/internal/costing"
	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/alexanderramin/cabquote/internal/repository"
	"github.com/alexanderramin/cabquote/internal/service"
	"github.com/alexanderramin/cabquote/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	materials := repository.NewSQLiteMaterialRepo(db)
	products := repository.NewSQLiteProductRepo(db)
	models := repository.NewSQLiteModelRepo(db)
	configurations := repository.NewSQLiteConfigurationRepo(db)
	quotes := repository.NewSQLiteQuoteRepo(db)

	return &App{
		Catalog:        service.NewCatalogService(materials, products),
		Models:         service.NewModelService(models),
		Configurations: service.NewConfigurationService(configurations, models),
		Quotes:         service.NewQuoteService(quotes, configurations, models, materials, products, costing.StandardDefaults()),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// seedCatalogAndModel stores a material, a model, and a configuration so the
// quote commands have something to price.
func seedCatalogAndModel(t *testing.T, app *App) *domain.CabinetConfiguration {
	t.Helper()
	ctx := context.Background()

	body := testutil.NewTestMaterial("White Melamine")
	require.NoError(t, app.Catalog.CreateMaterial(ctx, body))

	model := testutil.NewTestModel("base-two-door")
	require.NoError(t, app.Models.Create(ctx, model))

	cfg := testutil.NewTestConfiguration(model.ID)
	cfg.Materials.BodyMaterialID = body.ID
	require.NoError(t, app.Configurations.Create(ctx, cfg))

	return cfg
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "cabquote")
}

func TestMaterialAddAndList(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "material", "add",
		"--name", "Birch Plywood", "--category", "plywood", "--cost", "32.5", "--waste", "1.08")
	require.NoError(t, err)

	materials, err := app.Catalog.ListMaterials(context.Background())
	require.NoError(t, err)
	require.Len(t, materials, 1)
	assert.Equal(t, "Birch Plywood", materials[0].Name)
	require.NotNil(t, materials[0].WasteFactor)
	assert.Equal(t, 1.08, *materials[0].WasteFactor)
}

func TestMaterialAdd_RequiresName(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "material", "add", "--cost", "10")
	assert.Error(t, err)
}

func TestMaterialUpdateByName(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	m := testutil.NewTestMaterial("MDF")
	require.NoError(t, app.Catalog.CreateMaterial(ctx, m))

	_, err := executeCmd(t, app, "material", "update", "MDF", "--cost", "19.5")
	require.NoError(t, err)

	got, err := app.Catalog.GetMaterial(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 19.5, got.CostPerSqm)
}

func TestProductAddRemove(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	_, err := executeCmd(t, app, "product", "add", "--name", "Hinge", "--price", "3.2")
	require.NoError(t, err)

	products, err := app.Catalog.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)

	_, err = executeCmd(t, app, "product", "remove", "Hinge")
	require.NoError(t, err)

	products, err = app.Catalog.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestModelImportCmd(t *testing.T) {
	app := testApp(t)

	definition := `{
		"model": {"name": "tall-unit"},
		"panels": [{"name": "side", "length": "height", "width": "depth"}]
	}`
	path := filepath.Join(t.TempDir(), "tall.json")
	require.NoError(t, os.WriteFile(path, []byte(definition), 0o644))

	_, err := executeCmd(t, app, "model", "import", path)
	require.NoError(t, err)

	model, err := app.Models.GetByName(context.Background(), "tall-unit")
	require.NoError(t, err)
	assert.Len(t, model.Parameters.Panels, 1)
}

func TestConfigAddByModelName(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	model := testutil.NewTestModel("base")
	require.NoError(t, app.Models.Create(ctx, model))

	_, err := executeCmd(t, app, "config", "add",
		"--model", "base", "--name", "base-900",
		"--width", "900", "--height", "720", "--depth", "560",
		"--body-thickness", "16")
	require.NoError(t, err)

	configs, err := app.Configurations.List(ctx)
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, 900.0, configs[0].WidthMM)
	assert.Equal(t, 16.0, configs[0].Materials.BodyThickness())
}

func TestConfigAdd_RejectsZeroDimension(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	model := testutil.NewTestModel("base")
	require.NoError(t, app.Models.Create(ctx, model))

	_, err := executeCmd(t, app, "config", "add",
		"--model", "base", "--width", "0", "--height", "720", "--depth", "560")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestQuoteGenerateAndFinalize(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	cfg := seedCatalogAndModel(t, app)

	_, err := executeCmd(t, app, "quote", "generate", cfg.Name, "--label", "customer A")
	require.NoError(t, err)

	quotes, err := app.Quotes.ListByConfiguration(ctx, cfg.ID)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "customer A", quotes[0].Label)
	assert.Greater(t, quotes[0].TotalCost, 0.0)

	_, err = executeCmd(t, app, "quote", "finalize", quotes[0].ID)
	require.NoError(t, err)

	stored, err := app.Quotes.GetByID(ctx, quotes[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.QuoteFinalized, stored.Status)
}

func TestQuotePreview_PersistsNothing(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	cfg := seedCatalogAndModel(t, app)

	_, err := executeCmd(t, app, "quote", "preview", cfg.ID[:8])
	require.NoError(t, err)

	quotes, err := app.Quotes.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestResolvePrefix_Ambiguous(t *testing.T) {
	_, err := resolvePrefix("ab", []string{"abc1", "abc2"}, "quote")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestResolvePrefix_NotFound(t *testing.T) {
	_, err := resolvePrefix("zz", []string{"abc1"}, "quote")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestBrowseCmd_RequiresTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "browse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

func TestConfigureCmd_RequiresTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "config", "new")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}
