package service

import (
	"context"
	"time"

	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/alexanderramin/cabquote/internal/repository"
	"github.com/google/uuid"
)

type catalogService struct {
	materials repository.MaterialRepo
	products  repository.ProductRepo
}

func NewCatalogService(materials repository.MaterialRepo, products repository.ProductRepo) CatalogService {
	return &catalogService{materials: materials, products: products}
}

func (s *catalogService) CreateMaterial(ctx context.Context, m *domain.Material) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	return s.materials.Create(ctx, m)
}

func (s *catalogService) GetMaterial(ctx context.Context, id string) (*domain.Material, error) {
	return s.materials.GetByID(ctx, id)
}

func (s *catalogService) ListMaterials(ctx context.Context) ([]*domain.Material, error) {
	return s.materials.List(ctx)
}

func (s *catalogService) UpdateMaterial(ctx context.Context, m *domain.Material) error {
	m.UpdatedAt = time.Now().UTC()
	return s.materials.Update(ctx, m)
}

func (s *catalogService) DeleteMaterial(ctx context.Context, id string) error {
	return s.materials.Delete(ctx, id)
}

func (s *catalogService) CreateProduct(ctx context.Context, p *domain.Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.products.Create(ctx, p)
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *catalogService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.products.List(ctx)
}

func (s *catalogService) UpdateProduct(ctx context.Context, p *domain.Product) error {
	p.UpdatedAt = time.Now().UTC()
	return s.products.Update(ctx, p)
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}
