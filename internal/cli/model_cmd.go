package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cabquote/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newModelCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Manage cabinet models",
	}

	cmd.AddCommand(
		newModelImportCmd(app),
		newModelListCmd(app),
		newModelInspectCmd(app),
		newModelRemoveCmd(app),
	)

	return cmd
}

func newModelImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a cabinet model definition from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := app.Models.ImportModel(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported model %s [%s]: %d panels, %d fronts, %d compartments\n",
				model.Name, formatter.ShortID(model.ID),
				len(model.Parameters.Panels), len(model.Parameters.Fronts), len(model.Parameters.Compartments))
			return nil
		},
	}
}

func newModelListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cabinet models",
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := app.Models.List(context.Background())
			if err != nil {
				return err
			}
			if len(models) == 0 {
				fmt.Println("No models found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatModelList(models))
			return nil
		},
	}
}

func newModelInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <model>",
		Short: "Show a model's panels, fronts, and compartments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveModelID(ctx, app, args[0])
			if err != nil {
				return err
			}
			model, err := app.Models.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatModelDetail(model))
			return nil
		},
	}
}

func newModelRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <model>",
		Short: "Remove a cabinet model and its configurations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveModelID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Models.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed model %s\n", formatter.ShortID(id))
			return nil
		},
	}
}
