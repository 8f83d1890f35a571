package service

import (
	"context"

	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/alexanderramin/cabquote/internal/importer"
)

type CatalogService interface {
	CreateMaterial(ctx context.Context, m *domain.Material) error
	GetMaterial(ctx context.Context, id string) (*domain.Material, error)
	ListMaterials(ctx context.Context) ([]*domain.Material, error)
	UpdateMaterial(ctx context.Context, m *domain.Material) error
	DeleteMaterial(ctx context.Context, id string) error

	CreateProduct(ctx context.Context, p *domain.Product) error
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, p *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

type ModelService interface {
	Create(ctx context.Context, m *domain.CabinetModel) error
	GetByID(ctx context.Context, id string) (*domain.CabinetModel, error)
	GetByName(ctx context.Context, name string) (*domain.CabinetModel, error)
	List(ctx context.Context) ([]*domain.CabinetModel, error)
	Update(ctx context.Context, m *domain.CabinetModel) error
	Delete(ctx context.Context, id string) error
	ImportModel(ctx context.Context, filePath string) (*domain.CabinetModel, error)
	ImportModelFromSchema(ctx context.Context, schema *importer.ModelSchema) (*domain.CabinetModel, error)
}

type ConfigurationService interface {
	Create(ctx context.Context, c *domain.CabinetConfiguration) error
	GetByID(ctx context.Context, id string) (*domain.CabinetConfiguration, error)
	ListByModel(ctx context.Context, modelID string) ([]*domain.CabinetConfiguration, error)
	List(ctx context.Context) ([]*domain.CabinetConfiguration, error)
	Update(ctx context.Context, c *domain.CabinetConfiguration) error
	Delete(ctx context.Context, id string) error
}

// QuoteResult pairs a computed quote with the evaluation warnings produced
// while pricing it. Warnings never block the quote.
type QuoteResult struct {
	Quote    *domain.Quote
	Warnings []domain.Diagnostic
}

type QuoteService interface {
	// Preview prices a configuration without persisting anything.
	Preview(ctx context.Context, configurationID string) (*QuoteResult, error)
	// Generate prices a configuration and stores the result as a draft quote.
	Generate(ctx context.Context, configurationID string, label string) (*QuoteResult, error)
	GetByID(ctx context.Context, id string) (*domain.Quote, error)
	ListByConfiguration(ctx context.Context, configurationID string) ([]*domain.Quote, error)
	List(ctx context.Context) ([]*domain.Quote, error)
	Finalize(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
