package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/cabquote/internal/domain"
)

// resolvePrefix matches input against a set of IDs: exact match first, then
// unique prefix.
func resolvePrefix(input string, ids []string, kind string) (string, error) {
	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

// resolveModelID accepts a model name, full ID, or ID prefix.
func resolveModelID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("model is required")
	}
	if m, err := app.Models.GetByName(ctx, input); err == nil {
		return m.ID, nil
	}
	models, err := app.Models.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(models))
	for i, m := range models {
		ids[i] = m.ID
	}
	return resolvePrefix(input, ids, "model")
}

// resolveConfigurationID accepts a configuration name, full ID, or ID prefix.
func resolveConfigurationID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("configuration is required")
	}
	configs, err := app.Configurations.List(ctx)
	if err != nil {
		return "", err
	}
	for _, c := range configs {
		if strings.EqualFold(c.Name, input) {
			return c.ID, nil
		}
	}
	ids := make([]string, len(configs))
	for i, c := range configs {
		ids[i] = c.ID
	}
	return resolvePrefix(input, ids, "configuration")
}

// resolveQuoteID accepts a full quote ID or ID prefix.
func resolveQuoteID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("quote is required")
	}
	quotes, err := app.Quotes.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(quotes))
	for i, q := range quotes {
		ids[i] = q.ID
	}
	return resolvePrefix(input, ids, "quote")
}

// resolveMaterialID accepts a material name, full ID, or ID prefix.
func resolveMaterialID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("material is required")
	}
	materials, err := app.Catalog.ListMaterials(ctx)
	if err != nil {
		return "", err
	}
	for _, m := range materials {
		if strings.EqualFold(m.Name, input) {
			return m.ID, nil
		}
	}
	ids := make([]string, len(materials))
	for i, m := range materials {
		ids[i] = m.ID
	}
	return resolvePrefix(input, ids, "material")
}

// resolveProductID accepts a product name, full ID, or ID prefix.
func resolveProductID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("product is required")
	}
	products, err := app.Catalog.ListProducts(ctx)
	if err != nil {
		return "", err
	}
	for _, p := range products {
		if strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return resolvePrefix(input, ids, "product")
}

// materialsByID loads all materials into a lookup map for display.
func materialsByID(ctx context.Context, app *App) (map[string]domain.Material, error) {
	materials, err := app.Catalog.ListMaterials(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.Material, len(materials))
	for _, m := range materials {
		out[m.ID] = *m
	}
	return out, nil
}
