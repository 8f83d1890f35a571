package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/alexanderramin/cabquote/internal/importer"
	"github.com/alexanderramin/cabquote/internal/repository"
	"github.com/google/uuid"
)

type modelService struct {
	models repository.ModelRepo
}

func NewModelService(models repository.ModelRepo) ModelService {
	return &modelService{models: models}
}

func (s *modelService) Create(ctx context.Context, m *domain.CabinetModel) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	return s.models.Create(ctx, m)
}

func (s *modelService) GetByID(ctx context.Context, id string) (*domain.CabinetModel, error) {
	return s.models.GetByID(ctx, id)
}

func (s *modelService) GetByName(ctx context.Context, name string) (*domain.CabinetModel, error) {
	return s.models.GetByName(ctx, name)
}

func (s *modelService) List(ctx context.Context) ([]*domain.CabinetModel, error) {
	return s.models.List(ctx)
}

func (s *modelService) Update(ctx context.Context, m *domain.CabinetModel) error {
	m.UpdatedAt = time.Now().UTC()
	return s.models.Update(ctx, m)
}

func (s *modelService) Delete(ctx context.Context, id string) error {
	return s.models.Delete(ctx, id)
}

func (s *modelService) ImportModel(ctx context.Context, filePath string) (*domain.CabinetModel, error) {
	schema, err := importer.LoadModelSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading model definition: %w", err)
	}
	return s.ImportModelFromSchema(ctx, schema)
}

func (s *modelService) ImportModelFromSchema(ctx context.Context, schema *importer.ModelSchema) (*domain.CabinetModel, error) {
	if errs := importer.ValidateModelSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	model := importer.Convert(schema)
	if err := s.models.Create(ctx, model); err != nil {
		return nil, fmt.Errorf("creating model %q: %w", model.Name, err)
	}
	return model, nil
}

func formatValidationErrors(errs []error) error {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = "  - " + e.Error()
	}
	return fmt.Errorf("model definition has %d validation error(s):\n%s", len(errs), strings.Join(msgs, "\n"))
}
