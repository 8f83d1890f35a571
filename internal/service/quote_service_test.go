package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/alexanderramin/cabquote/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteService_PreviewDoesNotPersist(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cfg, _ := seedConfiguration(t, env)

	result, err := env.Quotes.Preview(ctx, cfg.ID)
	require.NoError(t, err)
	assert.Greater(t, result.Quote.TotalCost, 0.0)
	assert.Empty(t, result.Warnings)

	quotes, err := env.Quotes.ListByConfiguration(ctx, cfg.ID)
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestQuoteService_GenerateStoresDraft(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cfg, _ := seedConfiguration(t, env)

	result, err := env.Quotes.Generate(ctx, cfg.ID, "customer A")
	require.NoError(t, err)
	require.NotNil(t, result.Quote)
	assert.Equal(t, domain.QuoteDraft, result.Quote.Status)
	assert.Equal(t, "customer A", result.Quote.Label)

	stored, err := env.Quotes.GetByID(ctx, result.Quote.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Quote.TotalCost, stored.TotalCost)
	assert.Equal(t, result.Quote.Breakdown.MaterialsCost, stored.Breakdown.MaterialsCost)
	assert.Equal(t, result.Quote.Breakdown.LaborMinutes, stored.Breakdown.LaborMinutes)
}

func TestQuoteService_GenerateMatchesPreview(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cfg, _ := seedConfiguration(t, env)

	preview, err := env.Quotes.Preview(ctx, cfg.ID)
	require.NoError(t, err)
	generated, err := env.Quotes.Generate(ctx, cfg.ID, "")
	require.NoError(t, err)

	assert.Equal(t, preview.Quote.TotalCost, generated.Quote.TotalCost)
	assert.Equal(t, preview.Quote.Breakdown, generated.Quote.Breakdown)
}

func TestQuoteService_MissingMaterialDegradesWithWarning(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cfg, body := seedConfiguration(t, env)

	baseline, err := env.Quotes.Preview(ctx, cfg.ID)
	require.NoError(t, err)

	require.NoError(t, env.MaterialRepo.Delete(ctx, body.ID))

	degraded, err := env.Quotes.Preview(ctx, cfg.ID)
	require.NoError(t, err)
	assert.Less(t, degraded.Quote.TotalCost, baseline.Quote.TotalCost)

	require.NotEmpty(t, degraded.Warnings)
	assert.Contains(t, degraded.Warnings[0].Location, "materials.body")
}

func TestQuoteService_MalformedFormulaStillQuotes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	model := testutil.NewTestModel("broken")
	model.Parameters.Panels[0].Length = domain.Expr("height %% 2")
	require.NoError(t, env.Models.Create(ctx, model))

	body := testutil.NewTestMaterial("melamine")
	require.NoError(t, env.Catalog.CreateMaterial(ctx, body))

	cfg := testutil.NewTestConfiguration(model.ID)
	cfg.Materials.BodyMaterialID = body.ID
	require.NoError(t, env.Configurations.Create(ctx, cfg))

	result, err := env.Quotes.Preview(ctx, cfg.ID)
	require.NoError(t, err)
	require.NotEmpty(t, result.Warnings)
	assert.Greater(t, result.Quote.TotalCost, 0.0)
}

func TestQuoteService_FinalizeLocksQuote(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cfg, _ := seedConfiguration(t, env)

	result, err := env.Quotes.Generate(ctx, cfg.ID, "")
	require.NoError(t, err)

	require.NoError(t, env.Quotes.Finalize(ctx, result.Quote.ID))

	stored, err := env.Quotes.GetByID(ctx, result.Quote.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.QuoteFinalized, stored.Status)

	err = env.Quotes.Finalize(ctx, result.Quote.ID)
	require.Error(t, err)
}

func TestQuoteService_UnknownConfiguration(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Quotes.Preview(ctx, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolving configuration")
}
