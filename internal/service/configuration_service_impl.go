package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/alexanderramin/cabquote/internal/repository"
	"github.com/google/uuid"
)

type configurationService struct {
	configurations repository.ConfigurationRepo
	models         repository.ModelRepo
}

func NewConfigurationService(configurations repository.ConfigurationRepo, models repository.ModelRepo) ConfigurationService {
	return &configurationService{configurations: configurations, models: models}
}

func (s *configurationService) Create(ctx context.Context, c *domain.CabinetConfiguration) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if _, err := s.models.GetByID(ctx, c.ModelID); err != nil {
		return fmt.Errorf("resolving model: %w", err)
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.configurations.Create(ctx, c)
}

func (s *configurationService) GetByID(ctx context.Context, id string) (*domain.CabinetConfiguration, error) {
	return s.configurations.GetByID(ctx, id)
}

func (s *configurationService) ListByModel(ctx context.Context, modelID string) ([]*domain.CabinetConfiguration, error) {
	return s.configurations.ListByModel(ctx, modelID)
}

func (s *configurationService) List(ctx context.Context) ([]*domain.CabinetConfiguration, error) {
	return s.configurations.List(ctx)
}

func (s *configurationService) Update(ctx context.Context, c *domain.CabinetConfiguration) error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.UpdatedAt = time.Now().UTC()
	return s.configurations.Update(ctx, c)
}

func (s *configurationService) Delete(ctx context.Context, id string) error {
	return s.configurations.Delete(ctx, id)
}
