package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/cabquote/internal/cli/formatter"
	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// cabquoteHuhTheme returns a custom huh theme using the existing palette.
func cabquoteHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateMM rejects anything but a positive number of millimeters.
func validateMM(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func newConfigureCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Create a configuration interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Interactive {
				return fmt.Errorf("interactive configuration requires a terminal (use 'config add' instead)")
			}
			ctx := context.Background()

			cfg, err := runConfigureWizard(ctx, app)
			if err != nil {
				return err
			}
			if cfg == nil {
				fmt.Println("Cancelled.")
				return nil
			}
			if err := app.Configurations.Create(ctx, cfg); err != nil {
				return err
			}
			fmt.Printf("Created configuration %s [%s]\n", cfg.DisplayID(), formatter.ShortID(cfg.ID))
			return nil
		},
	}
}

// runConfigureWizard walks through model selection, dimensions, and material
// choices. Returns nil without error when the user aborts the form.
func runConfigureWizard(ctx context.Context, app *App) (*domain.CabinetConfiguration, error) {
	models, err := app.Models.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, fmt.Errorf("no models available, import one first")
	}

	modelOptions := make([]huh.Option[string], 0, len(models))
	for _, m := range models {
		label := m.Name
		if m.Description != "" {
			label = fmt.Sprintf("%s — %s", m.Name, m.Description)
		}
		modelOptions = append(modelOptions, huh.NewOption(label, m.ID))
	}

	materials, err := app.Catalog.ListMaterials(ctx)
	if err != nil {
		return nil, err
	}
	materialOptions := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, m := range materials {
		materialOptions = append(materialOptions,
			huh.NewOption(fmt.Sprintf("%s (%s)", m.Name, formatter.Money(m.CostPerSqm)), m.ID))
	}

	var modelID, name, widthStr, heightStr, depthStr string
	var bodyID, doorID, shelfID string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which model?").
				Options(modelOptions...).
				Value(&modelID),
			huh.NewInput().
				Title("Configuration name").
				Placeholder("base-600").
				Value(&name),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Width (mm)").
				Validate(validateMM).
				Value(&widthStr),
			huh.NewInput().
				Title("Height (mm)").
				Validate(validateMM).
				Value(&heightStr),
			huh.NewInput().
				Title("Depth (mm)").
				Validate(validateMM).
				Value(&depthStr),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Body material").
				Options(materialOptions...).
				Value(&bodyID),
			huh.NewSelect[string]().
				Title("Door material").
				Options(materialOptions...).
				Value(&doorID),
			huh.NewSelect[string]().
				Title("Shelf material").
				Options(materialOptions...).
				Value(&shelfID),
		),
	).WithTheme(cabquoteHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		if err == huh.ErrUserAborted {
			return nil, nil
		}
		return nil, err
	}

	width, _ := strconv.ParseFloat(widthStr, 64)
	height, _ := strconv.ParseFloat(heightStr, 64)
	depth, _ := strconv.ParseFloat(depthStr, 64)

	return &domain.CabinetConfiguration{
		ModelID:  modelID,
		Name:     name,
		WidthMM:  width,
		HeightMM: height,
		DepthMM:  depth,
		Materials: domain.MaterialConfig{
			BodyMaterialID:  bodyID,
			DoorMaterialID:  doorID,
			ShelfMaterialID: shelfID,
		},
	}, nil
}
