package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/cabquote/internal/costing"
	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/alexanderramin/cabquote/internal/repository"
	"github.com/alexanderramin/cabquote/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testEnv wires the full service stack over an in-memory database.
type testEnv struct {
	Catalog        CatalogService
	Models         ModelService
	Configurations ConfigurationService
	Quotes         QuoteService

	MaterialRepo repository.MaterialRepo
	ProductRepo  repository.ProductRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)

	materials := repository.NewSQLiteMaterialRepo(database)
	products := repository.NewSQLiteProductRepo(database)
	models := repository.NewSQLiteModelRepo(database)
	configurations := repository.NewSQLiteConfigurationRepo(database)
	quotes := repository.NewSQLiteQuoteRepo(database)

	return &testEnv{
		Catalog:        NewCatalogService(materials, products),
		Models:         NewModelService(models),
		Configurations: NewConfigurationService(configurations, models),
		Quotes:         NewQuoteService(quotes, configurations, models, materials, products, costing.StandardDefaults()),
		MaterialRepo:   materials,
		ProductRepo:    products,
	}
}

// seedConfiguration stores a test model, its materials, and a configuration
// referencing all three material roles. Returns the configuration and the
// body material for assertions.
func seedConfiguration(t *testing.T, env *testEnv) (*domain.CabinetConfiguration, *domain.Material) {
	t.Helper()
	ctx := context.Background()

	body := testutil.NewTestMaterial("White Melamine 18mm", testutil.WithCostPerSqm(10))
	door := testutil.NewTestMaterial("Oak Veneer MDF", testutil.WithCostPerSqm(25))
	shelf := testutil.NewTestMaterial("White Melamine 18mm shelf", testutil.WithCostPerSqm(10))
	for _, m := range []*domain.Material{body, door, shelf} {
		require.NoError(t, env.Catalog.CreateMaterial(ctx, m))
	}

	model := testutil.NewTestModel("base-two-door")
	require.NoError(t, env.Models.Create(ctx, model))

	cfg := testutil.NewTestConfiguration(model.ID)
	cfg.Materials = domain.MaterialConfig{
		BodyMaterialID:  body.ID,
		DoorMaterialID:  door.ID,
		ShelfMaterialID: shelf.ID,
	}
	require.NoError(t, env.Configurations.Create(ctx, cfg))

	return cfg, body
}
