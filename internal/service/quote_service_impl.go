package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/cabquote/internal/costing"
	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/alexanderramin/cabquote/internal/repository"
	"github.com/google/uuid"
)

type quoteService struct {
	quotes         repository.QuoteRepo
	configurations repository.ConfigurationRepo
	models         repository.ModelRepo
	materials      repository.MaterialRepo
	products       repository.ProductRepo
	defaults       costing.Defaults
}

func NewQuoteService(
	quotes repository.QuoteRepo,
	configurations repository.ConfigurationRepo,
	models repository.ModelRepo,
	materials repository.MaterialRepo,
	products repository.ProductRepo,
	defaults costing.Defaults,
) QuoteService {
	return &quoteService{
		quotes:         quotes,
		configurations: configurations,
		models:         models,
		materials:      materials,
		products:       products,
		defaults:       defaults,
	}
}

func (s *quoteService) Preview(ctx context.Context, configurationID string) (*QuoteResult, error) {
	return s.compute(ctx, configurationID, "")
}

func (s *quoteService) Generate(ctx context.Context, configurationID string, label string) (*QuoteResult, error) {
	result, err := s.compute(ctx, configurationID, label)
	if err != nil {
		return nil, err
	}
	if err := s.quotes.Create(ctx, result.Quote); err != nil {
		return nil, fmt.Errorf("storing quote: %w", err)
	}
	return result, nil
}

// compute loads the configuration and its model, batch-resolves the catalog
// records the engine needs, and runs the pricing pipeline. The quote is
// built but not persisted.
func (s *quoteService) compute(ctx context.Context, configurationID string, label string) (*QuoteResult, error) {
	cfg, err := s.configurations.GetByID(ctx, configurationID)
	if err != nil {
		return nil, fmt.Errorf("resolving configuration: %w", err)
	}
	model, err := s.models.GetByID(ctx, cfg.ModelID)
	if err != nil {
		return nil, fmt.Errorf("resolving model: %w", err)
	}

	resolved, warnings, err := s.resolveMaterials(ctx, cfg.Materials)
	if err != nil {
		return nil, err
	}
	prices, err := s.resolvePrices(ctx, model.Parameters)
	if err != nil {
		return nil, err
	}

	result, err := costing.Compute(costing.Input{
		Config:        cfg,
		Params:        model.Parameters,
		BodyMaterial:  resolved[domain.RoleBody],
		DoorMaterial:  resolved[domain.RoleDoor],
		ShelfMaterial: resolved[domain.RoleShelf],
		Prices:        prices,
		Defaults:      s.defaults,
	})
	if err != nil {
		return nil, err
	}

	quote := &domain.Quote{
		ID:              uuid.New().String(),
		ConfigurationID: cfg.ID,
		ModelID:         model.ID,
		Label:           label,
		Status:          domain.QuoteDraft,
		Breakdown:       result.Breakdown,
		TotalCost:       result.Breakdown.TotalCost,
		CreatedAt:       time.Now().UTC(),
	}

	return &QuoteResult{
		Quote:    quote,
		Warnings: append(warnings, result.Warnings...),
	}, nil
}

// resolveMaterials batch-fetches the three role materials. A configured ID
// that is absent from the catalog does not fail the quote: the role prices
// at zero and a warning records the miss.
func (s *quoteService) resolveMaterials(ctx context.Context, mc domain.MaterialConfig) (map[domain.MaterialRole]*domain.Material, []domain.Diagnostic, error) {
	roleIDs := map[domain.MaterialRole]string{
		domain.RoleBody:  mc.BodyMaterialID,
		domain.RoleDoor:  mc.DoorMaterialID,
		domain.RoleShelf: mc.ShelfMaterialID,
	}

	var ids []string
	for _, id := range roleIDs {
		if id != "" {
			ids = append(ids, id)
		}
	}

	resolved := make(map[domain.MaterialRole]*domain.Material, 3)
	if len(ids) == 0 {
		return resolved, nil, nil
	}

	found, err := s.materials.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving materials: %w", err)
	}

	var warnings []domain.Diagnostic
	for role, id := range roleIDs {
		if id == "" {
			continue
		}
		if m, ok := found[id]; ok {
			mat := m
			resolved[role] = &mat
		} else {
			warnings = append(warnings, domain.Diagnostic{
				Location: fmt.Sprintf("materials.%s", role),
				Reason:   fmt.Sprintf("material %q not found, role priced at zero", id),
			})
		}
	}
	return resolved, warnings, nil
}

// resolvePrices batch-fetches the products referenced by front-level
// hardware. Missing IDs are simply absent from the map; the engine skips
// those lines with its own diagnostic.
func (s *quoteService) resolvePrices(ctx context.Context, params domain.ModelParameters) (map[string]domain.Product, error) {
	seen := make(map[string]bool)
	var ids []string
	for _, f := range params.Fronts {
		for _, hw := range f.Hardware {
			if hw.ProductID != "" && !seen[hw.ProductID] {
				seen[hw.ProductID] = true
				ids = append(ids, hw.ProductID)
			}
		}
	}
	if len(ids) == 0 {
		return map[string]domain.Product{}, nil
	}
	prices, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolving hardware products: %w", err)
	}
	return prices, nil
}

func (s *quoteService) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	return s.quotes.GetByID(ctx, id)
}

func (s *quoteService) ListByConfiguration(ctx context.Context, configurationID string) ([]*domain.Quote, error) {
	return s.quotes.ListByConfiguration(ctx, configurationID)
}

func (s *quoteService) List(ctx context.Context) ([]*domain.Quote, error) {
	return s.quotes.List(ctx)
}

func (s *quoteService) Finalize(ctx context.Context, id string) error {
	return s.quotes.Finalize(ctx, id)
}

func (s *quoteService) Delete(ctx context.Context, id string) error {
	return s.quotes.Delete(ctx, id)
}
