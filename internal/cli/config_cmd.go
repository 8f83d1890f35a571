package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cabquote/internal/cli/formatter"
	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// thicknessOverride returns a pointer only when the flag was set, so an
// untouched flag falls through to the default panel thickness.
func thicknessOverride(flags *pflag.FlagSet, name string, value float64) *float64 {
	if !flags.Changed(name) {
		return nil
	}
	return &value
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage cabinet configurations",
	}

	cmd.AddCommand(
		newConfigAddCmd(app),
		newConfigureCmd(app),
		newConfigListCmd(app),
		newConfigInspectCmd(app),
		newConfigRemoveCmd(app),
	)

	return cmd
}

func newConfigAddCmd(app *App) *cobra.Command {
	var modelRef, name string
	var width, height, depth float64
	var bodyMat, doorMat, shelfMat string
	var bodyThick, doorThick, shelfThick float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a configuration of a cabinet model",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			modelID, err := resolveModelID(ctx, app, modelRef)
			if err != nil {
				return err
			}

			cfg := &domain.CabinetConfiguration{
				ModelID:  modelID,
				Name:     name,
				WidthMM:  width,
				HeightMM: height,
				DepthMM:  depth,
			}

			if cfg.Materials.BodyMaterialID, err = optionalMaterial(ctx, app, bodyMat); err != nil {
				return err
			}
			if cfg.Materials.DoorMaterialID, err = optionalMaterial(ctx, app, doorMat); err != nil {
				return err
			}
			if cfg.Materials.ShelfMaterialID, err = optionalMaterial(ctx, app, shelfMat); err != nil {
				return err
			}
			cfg.Materials.BodyThicknessMM = thicknessOverride(cmd.Flags(), "body-thickness", bodyThick)
			cfg.Materials.DoorThicknessMM = thicknessOverride(cmd.Flags(), "door-thickness", doorThick)
			cfg.Materials.ShelfThicknessMM = thicknessOverride(cmd.Flags(), "shelf-thickness", shelfThick)

			if err := app.Configurations.Create(ctx, cfg); err != nil {
				return err
			}
			fmt.Printf("Created configuration %s [%s]\n", cfg.DisplayID(), formatter.ShortID(cfg.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&modelRef, "model", "", "Model name or ID")
	cmd.Flags().StringVar(&name, "name", "", "Configuration name")
	cmd.Flags().Float64Var(&width, "width", 0, "Width in millimeters")
	cmd.Flags().Float64Var(&height, "height", 0, "Height in millimeters")
	cmd.Flags().Float64Var(&depth, "depth", 0, "Depth in millimeters")
	cmd.Flags().StringVar(&bodyMat, "body-material", "", "Body material name or ID")
	cmd.Flags().StringVar(&doorMat, "door-material", "", "Door material name or ID")
	cmd.Flags().StringVar(&shelfMat, "shelf-material", "", "Shelf material name or ID")
	cmd.Flags().Float64Var(&bodyThick, "body-thickness", 0, "Body panel thickness override (mm)")
	cmd.Flags().Float64Var(&doorThick, "door-thickness", 0, "Door thickness override (mm)")
	cmd.Flags().Float64Var(&shelfThick, "shelf-thickness", 0, "Shelf thickness override (mm)")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("depth")

	return cmd
}

func optionalMaterial(ctx context.Context, app *App, ref string) (string, error) {
	if ref == "" {
		return "", nil
	}
	return resolveMaterialID(ctx, app, ref)
}

func newConfigListCmd(app *App) *cobra.Command {
	var modelRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var configs []*domain.CabinetConfiguration
			var err error
			if modelRef != "" {
				var modelID string
				modelID, err = resolveModelID(ctx, app, modelRef)
				if err != nil {
					return err
				}
				configs, err = app.Configurations.ListByModel(ctx, modelID)
			} else {
				configs, err = app.Configurations.List(ctx)
			}
			if err != nil {
				return err
			}
			if len(configs) == 0 {
				fmt.Println("No configurations found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatConfigurationList(configs))
			return nil
		},
	}

	cmd.Flags().StringVar(&modelRef, "model", "", "Only configurations of this model")

	return cmd
}

func newConfigInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <config>",
		Short: "Show a configuration's dimensions and materials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveConfigurationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			cfg, err := app.Configurations.GetByID(ctx, id)
			if err != nil {
				return err
			}
			materials, err := materialsByID(ctx, app)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatConfigurationDetail(cfg, materials))
			return nil
		},
	}
}

func newConfigRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <config>",
		Short: "Remove a configuration and its quotes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveConfigurationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Configurations.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed configuration %s\n", formatter.ShortID(id))
			return nil
		},
	}
}
