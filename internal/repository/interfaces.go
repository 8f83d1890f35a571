package repository

import (
	"context"

	"github.com/alexanderramin/cabquote/internal/domain"
)

type MaterialRepo interface {
	Create(ctx context.Context, m *domain.Material) error
	GetByID(ctx context.Context, id string) (*domain.Material, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]domain.Material, error)
	List(ctx context.Context) ([]*domain.Material, error)
	Update(ctx context.Context, m *domain.Material) error
	Delete(ctx context.Context, id string) error
}

type ProductRepo interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}

type ModelRepo interface {
	Create(ctx context.Context, m *domain.CabinetModel) error
	GetByID(ctx context.Context, id string) (*domain.CabinetModel, error)
	GetByName(ctx context.Context, name string) (*domain.CabinetModel, error)
	List(ctx context.Context) ([]*domain.CabinetModel, error)
	Update(ctx context.Context, m *domain.CabinetModel) error
	Delete(ctx context.Context, id string) error
}

type ConfigurationRepo interface {
	Create(ctx context.Context, c *domain.CabinetConfiguration) error
	GetByID(ctx context.Context, id string) (*domain.CabinetConfiguration, error)
	ListByModel(ctx context.Context, modelID string) ([]*domain.CabinetConfiguration, error)
	List(ctx context.Context) ([]*domain.CabinetConfiguration, error)
	Update(ctx context.Context, c *domain.CabinetConfiguration) error
	Delete(ctx context.Context, id string) error
}

type QuoteRepo interface {
	Create(ctx context.Context, q *domain.Quote) error
	GetByID(ctx context.Context, id string) (*domain.Quote, error)
	ListByConfiguration(ctx context.Context, configurationID string) ([]*domain.Quote, error)
	List(ctx context.Context) ([]*domain.Quote, error)
	Finalize(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
